// Package main is the entry point for Reckoning.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/samdwyer/reckoning/internal/game"
	"github.com/samdwyer/reckoning/internal/telemetry"
	"github.com/samdwyer/reckoning/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := newCommand().Run(ctx, os.Args); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	defaults := game.DefaultConfig()

	return &cli.Command{
		Name:  "reckoning",
		Usage: "explore a small wraparound map, one step at a time",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed for terrain, movement and spawning (0 picks one)",
				Sources: cli.EnvVars("RECKONING_SEED"),
			},
			&cli.IntFlag{
				Name:    "size",
				Usage:   "side length of the square map",
				Value:   defaults.Size,
				Sources: cli.EnvVars("RECKONING_SIZE"),
			},
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "map generation mode: fixed or procedural",
				Value:   defaults.Mode.String(),
				Sources: cli.EnvVars("RECKONING_MODE"),
			},
			&cli.StringFlag{
				Name:    "terrain",
				Usage:   "YAML file overriding terrain weights and blocked tiles",
				Sources: cli.EnvVars("RECKONING_TERRAIN"),
			},
			&cli.IntFlag{
				Name:    "enemies",
				Usage:   "number of creatures roaming the map",
				Value:   defaults.Enemies,
				Sources: cli.EnvVars("RECKONING_ENEMIES"),
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "print the generated map and its statistics, then exit",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("summary") {
		session, err := game.NewSession(ctx, cfg)
		if err != nil {
			return err
		}
		printSummary(os.Stdout, session)
		return nil
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	return g.Run(ctx)
}

// configFrom builds the session config from parsed flags.
func configFrom(cmd *cli.Command) (game.Config, error) {
	mode, err := world.ParseMode(cmd.String("mode"))
	if err != nil {
		return game.Config{}, err
	}

	cfg := game.Config{
		Seed:        cmd.Int64("seed"),
		Size:        cmd.Int("size"),
		Mode:        mode,
		TerrainFile: cmd.String("terrain"),
		Enemies:     cmd.Int("enemies"),
	}
	return cfg, cfg.Validate()
}

// printSummary writes the map and its tile statistics.
func printSummary(w io.Writer, s *game.Session) {
	sum := world.Summarize(s.Grid)

	fmt.Fprintf(w, "seed %d, %s, %dx%d\n\n", s.Seed(), sum.Mode, sum.Size, sum.Size)
	fmt.Fprintln(w, s.Grid.String())
	for _, k := range world.Kinds() {
		fmt.Fprintf(w, "%c %-6s %4d\n", k.Rune(), k, sum.Counts[k])
	}
	fmt.Fprintf(w, "\nwalkable  %d (%.0f%%)\n", sum.Walkable, sum.WalkableRatio()*100)
	fmt.Fprintf(w, "reachable %d\n", sum.Reachable)
	for _, e := range s.Enemies {
		fmt.Fprintf(w, "%c %s at (%d,%d)\n", e.Symbol, e.Name, e.X, e.Y)
	}
}
