package main

import (
	"context"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avezina/kinetic/internal/config"
	"github.com/avezina/kinetic/internal/scenario"
	"github.com/avezina/kinetic/pkg/domain"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Run an animation scenario and print the resolved timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if trail, _ := cmd.Flags().GetString("trail"); trail != "" {
			cfg.Recorder.Trail = trail
		}

		sc, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		a, store, _ := buildEngine(cfg)
		if err := scenario.Run(a, sc); err != nil {
			return fmt.Errorf("scenario %q failed: %w", sc.Name, err)
		}

		records, err := store.List(context.Background(), cfg.Recorder.Trail)
		if err != nil {
			return err
		}
		printTimeline(sc.Name, records)
		return nil
	},
}

func printTimeline(name string, records []domain.Record) {
	out := termenv.NewOutput(os.Stdout)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		out = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	}

	fmt.Fprintf(out, "timeline %s (%d mutations)\n", name, len(records))
	for _, rec := range records {
		outcome := out.String(fmt.Sprintf("%-8s", rec.Outcome))
		switch rec.Outcome {
		case domain.OutcomeResolved:
			outcome = outcome.Foreground(out.Color("2")) // green
		case domain.OutcomeVetoed:
			outcome = outcome.Foreground(out.Color("1")) // red
		default:
			outcome = outcome.Faint()
		}

		line := fmt.Sprintf("  %s %s.%s", outcome, rec.Node, rec.Key)
		if rec.Animation != nil {
			line += fmt.Sprintf("  %.2fs +%.2fs %s", rec.Animation.Duration, rec.Animation.Delay, rec.Animation.Curve)
		}
		fmt.Fprintln(out, line)
	}
}

func init() {
	runCmd.Flags().String("trail", "", "Timeline trail name (overrides config)")
	rootCmd.AddCommand(runCmd)
}
