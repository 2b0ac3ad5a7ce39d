package main

import (
	"fmt"
	"os"

	"github.com/gg582/hanfe/internal/cli"
	"github.com/gg582/hanfe/internal/config"
	"github.com/gg582/hanfe/internal/layout"
	"github.com/gg582/hanfe/internal/logging"
	"github.com/gg582/hanfe/internal/session"
	"github.com/gg582/hanfe/internal/tty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hanfe-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		return err
	}
	if opts.ShowHelp {
		fmt.Println(cli.TTYUsage())
		return nil
	}
	if opts.ListLayouts {
		for _, name := range layout.AvailableLayouts() {
			fmt.Println(name)
		}
		return nil
	}

	cfg, _, err := config.ResolveConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if cfg, err = opts.Apply(cfg); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Component = "hanfe-tty"
	if logCfg.Format, err = logging.ParseFormat(cfg.Log.Format); err != nil {
		return err
	}
	logger := logging.New(logCfg)

	pairs, err := cfg.CustomPairs()
	if err != nil {
		return err
	}

	sessCfg := session.DefaultConfig()
	sessCfg.Layout = cfg.Layout.Name
	sessCfg.CustomPairs = pairs
	sessCfg.Mode = cfg.Toggle.DefaultMode
	sessCfg.ToggleChords = cfg.Toggle.Chords
	sessCfg.Logger = logger

	return tty.NewTranslator(sessCfg, opts.Jamo).Copy(os.Stdout, os.Stdin)
}
