package main

import (
	"fmt"
	"os"

	"github.com/Garsondee/campus-flu/internal/config"
	"github.com/Garsondee/campus-flu/internal/flu"
	"github.com/Garsondee/campus-flu/internal/logging"
	"github.com/Garsondee/campus-flu/internal/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "flu-tui",
		Short:        "Campus flu risk grid in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().String("config", "", "path to a YAML config file")
	cmd.Flags().String("variant", "", "risk variant: window or lifetime")
	cmd.Flags().Int64("seed", 0, "RNG seed for infection checks (0 = clock)")
	cmd.Flags().String("log-file", "", "append logs to this file")
	cmd.Flags().Bool("mute", false, "disable the alarm tone")
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("variant"); v != "" {
		cfg.Variant = v
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Logging.File = v
	}
	if mute, _ := cmd.Flags().GetBool("mute"); mute {
		cfg.Audio = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	// The terminal belongs to tcell, so logs only go to a file.
	log, closeLog, err := logging.OpenFile(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer closeLog()

	var alarm tui.Alarm = tui.Silent{}
	if cfg.Audio {
		if a, err := tui.NewToneAlarm(); err != nil {
			log.Warn("audio initialization failed", "err", err)
		} else {
			alarm = a
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	opts := append(cfg.SessionOptions(), flu.WithLogger(log))
	session := flu.NewSession(cfg.SessionVariant(), opts...)
	app := tui.New(screen, session, tui.WithLogger(log), tui.WithAlarm(alarm))
	log.Info("starting", "variant", cfg.Variant, "seed", cfg.Seed)
	return app.Run()
}
