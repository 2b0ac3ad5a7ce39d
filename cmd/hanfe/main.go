package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gg582/hanfe/internal/cli"
	"github.com/gg582/hanfe/internal/config"
	"github.com/gg582/hanfe/internal/document"
	"github.com/gg582/hanfe/internal/layout"
	"github.com/gg582/hanfe/internal/logging"
	"github.com/gg582/hanfe/internal/session"
	"github.com/gg582/hanfe/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hanfe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		return err
	}
	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return nil
	}
	if opts.ListLayouts {
		for _, name := range layout.AvailableLayouts() {
			fmt.Println(name)
		}
		return nil
	}

	cfg, cfgPath, err := config.ResolveConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	cfg, err = opts.Apply(cfg)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	if logCfg.Format, err = logging.ParseFormat(cfg.Log.Format); err != nil {
		return err
	}
	logger := logging.Setup(logCfg)

	pairs, err := cfg.CustomPairs()
	if err != nil {
		return err
	}

	doc := document.New(document.DefaultLimit)
	sessCfg := session.DefaultConfig()
	sessCfg.Layout = cfg.Layout.Name
	sessCfg.CustomPairs = pairs
	sessCfg.Mode = cfg.Toggle.DefaultMode
	sessCfg.ToggleChords = cfg.Toggle.Chords
	sessCfg.AutoCapitalize = cfg.Convenience.AutoCapitalize
	sessCfg.DoubleSpacePeriod = cfg.Convenience.DoubleSpacePeriod
	sessCfg.Logger = logger
	sess := session.New(doc, sessCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wake := make(chan struct{}, 1)
	if cfgPath != "" && !opts.NoWatch {
		err := config.Watch(ctx, cfgPath, func(next config.Config, err error) {
			if err != nil {
				logger.Warn("config reload failed", "path", cfgPath, "error", err)
				return
			}
			nextPairs, err := next.CustomPairs()
			if err != nil {
				logger.Warn("custom pairs reload failed", "path", next.Layout.PairsPath, "error", err)
				return
			}
			logger.Info("config reloaded", "path", cfgPath, "layout", next.Layout.Name)
			sess.Post(session.ReloadLayout(next.Layout.Name, nextPairs))
			select {
			case wake <- struct{}{}:
			default:
			}
		})
		if err != nil {
			logger.Warn("config watch disabled", "path", cfgPath, "error", err)
		}
	}

	return terminal.Run(ctx, sess, doc, wake, logger)
}
