package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xtls/xray-core/infra/conf"

	// Import distro to register all protocols/transports
	_ "github.com/xtls/xray-core/main/distro/all"
)

type document struct {
	Outbounds []conf.OutboundDetourConfig `json:"outbounds"`
}

// Check feeds a generated document's outbounds through Xray's own config
// layer to confirm the engine will accept them. No instance is started;
// this is a pure build check.
func Check(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("document is not valid JSON: %w", err)
	}
	if len(doc.Outbounds) == 0 {
		return fmt.Errorf("document has no outbounds")
	}

	for i := range doc.Outbounds {
		out := &doc.Outbounds[i]

		var buildErr error
		func() {
			restore := muteLogs()
			defer restore()
			_, buildErr = out.Build()
		}()

		if buildErr != nil {
			return fmt.Errorf("outbound %q rejected by engine: %w", out.Tag, buildErr)
		}
	}

	return nil
}

func muteLogs() func() {
	origStdout := os.Stdout
	origStderr := os.Stderr

	devNull, _ := os.Open(os.DevNull)
	if devNull != nil {
		os.Stdout = devNull
		os.Stderr = devNull
	}

	return func() {
		os.Stdout = origStdout
		os.Stderr = origStderr
		if devNull != nil {
			devNull.Close()
		}
	}
}
