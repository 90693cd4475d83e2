package main

import (
	"os"

	"github.com/spf13/cobra"

	"vless2json/internal/engine"
	"vless2json/internal/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check <config.json>",
	Short: "Verify a generated config is accepted by the Xray engine",
	Long: `Feeds the document's outbounds through Xray's own config loader.
Nothing is started; this only proves the engine would accept the file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("failed to read %s: %v", args[0], err)
		}
		if err := engine.Check(data); err != nil {
			fatal("%s: %v", args[0], err)
		}
		logger.Log.Infof("%s: ok", args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
