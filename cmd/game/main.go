package main

import (
	"fmt"
	"os"

	"github.com/Garsondee/campus-flu/internal/config"
	"github.com/Garsondee/campus-flu/internal/flu"
	"github.com/Garsondee/campus-flu/internal/game"
	"github.com/Garsondee/campus-flu/internal/logging"
	"github.com/hajimehoshi/ebiten/v2"
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
		Use:          "game",
		Short:        "Campus flu risk grid in a desktop window",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := logging.NewLogger(cfg.Logging.Level, os.Stderr)

			opts := append(cfg.SessionOptions(), flu.WithLogger(log))
			session := flu.NewSession(cfg.SessionVariant(), opts...)
			g := game.New(session, game.WithCellSize(cfg.CellSize), game.WithLogger(log))

			w, h := g.Size()
			ebiten.SetWindowTitle("Campus Flu")
			ebiten.SetWindowSize(w, h)
			log.Info("starting", "variant", cfg.Variant, "seed", cfg.Seed)
			return ebiten.RunGame(g)
		},
	}
	addConfigFlags(cmd)
	cmd.Flags().Int("cell-size", 0, "tile size in pixels (overrides config)")
	return cmd
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to a YAML config file")
	cmd.Flags().String("variant", "", "risk variant: window or lifetime")
	cmd.Flags().Int64("seed", 0, "RNG seed for infection checks (0 = clock)")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
}

// loadConfig layers CLI flags over the config file and environment.
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
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v, _ := cmd.Flags().GetInt("cell-size"); v > 0 {
		cfg.CellSize = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
