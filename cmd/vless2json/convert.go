package main

import (
	"fmt"
	"os"
	"sort"

	"vless2json/internal/compiler"
	"vless2json/internal/config"
	"vless2json/internal/link"
	"vless2json/internal/logger"
)

// runConvert is the whole pipeline: parse -> resolve bindings -> build ->
// encode -> single write. Any error aborts before the output file is
// touched.
func runConvert(raw string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	l, err := link.Parse(raw)
	if err != nil {
		return err
	}

	// A flag left at the sentinel falls back to the settings file; an
	// explicit value, zero included, goes to validation as-is.
	httpP := httpPort
	if httpP == compiler.UnsetPort {
		httpP = cfg.Proxies.HTTPPort
	}
	socksP := socksPort
	if socksP == compiler.UnsetPort {
		socksP = cfg.Proxies.SocksPort
	}
	bindings, err := compiler.ResolveBindings(httpP, socksP)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if strictMode {
		opts.Strict = true
	}

	if !opts.Strict && len(l.Extra) > 0 {
		keys := make([]string, 0, len(l.Extra))
		for k := range l.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			logger.Log.Debugf("dropping unrecognized parameter %q", k)
		}
	}

	doc, err := compiler.Build(l, bindings, opts)
	if err != nil {
		return err
	}

	data, err := doc.Encode()
	if err != nil {
		return err
	}

	out := outputPath
	if out == "" {
		out = cfg.Output
	}
	if out == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	logger.Log.Infof("wrote %s: %s:%d via http :%d / socks :%d",
		out, l.Address, l.Port, bindings.HTTPPort, bindings.SocksPort)
	return nil
}
