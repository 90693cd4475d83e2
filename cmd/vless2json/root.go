package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vless2json/internal/compiler"
	"vless2json/internal/logger"
)

var (
	cfgFile    string
	verbose    bool
	logFile    string
	httpPort   int
	socksPort  int
	outputPath string
	strictMode bool
)

var rootCmd = &cobra.Command{
	Use:   "vless2json [flags] <vless-link>",
	Short: "Compile a VLESS link into an Xray client config",
	Long: `Parses a vless://<uuid>@host:port?[query...] link and writes an Xray
client configuration with local HTTP and SOCKS5 inbounds on loopback.
The document is built entirely in memory and only written once every
field has validated, so a failed run never leaves a partial file.`,
	Example: `  vless2json 'vless://<UUID>@example.com:443?security=reality&encryption=none'
  vless2json --http-proxy 2080 --socks5-proxy 2090 'vless://...'
  vless2json -o - 'vless://...' > config.json`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose, logFile)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(args[0]); err != nil {
			fatal("%v", err)
		}
	},
	PostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var exitFunc = os.Exit

// fatal logs the diagnostic and exits non-zero. Unlike zap's Fatalf it
// syncs the logger first, so the message survives a --log-file sink.
func fatal(format string, args ...interface{}) {
	logger.Log.Errorf(format, args...)
	logger.Sync()
	exitFunc(1)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is ./vless2json.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr (overwrites file)")

	rootCmd.Flags().IntVar(&httpPort, "http-proxy", compiler.UnsetPort, "Local HTTP-proxy port (1080 by default)")
	rootCmd.Flags().IntVar(&socksPort, "socks5-proxy", compiler.UnsetPort, "Local SOCKS5-proxy port (1090 by default)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path, '-' for stdout (config.json by default)")
	rootCmd.Flags().BoolVar(&strictMode, "strict", false, "Reject query parameters without a recognized mapping")
}
