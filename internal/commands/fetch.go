package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/caesbrissa/visual-poker/internal/metrics"
	"github.com/caesbrissa/visual-poker/internal/pipeline"
	"github.com/caesbrissa/visual-poker/internal/sheets"
)

func newFetchCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one fetch cycle and print the snapshot as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			builder := pipeline.Builder{
				Schema: cfg.Sheet,
				Player: cfg.Player,
				Engine: metrics.Engine{MonthlyGoal: decimal.NewFromFloat(cfg.MonthlyGoal)},
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
			defer cancel()

			client, err := sheets.New(ctx, cfg, builder)
			if err != nil {
				return err
			}

			snap, err := client.Snapshot(ctx, time.Now())
			if err != nil {
				var srcErr *sheets.SourceError
				if errors.As(err, &srcErr) {
					fmt.Fprintln(os.Stderr, "fetch failed:", srcErr.Err)
					for _, hint := range srcErr.Hints {
						fmt.Fprintln(os.Stderr, "  -", hint)
					}
				}
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			if !compact {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(snap)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print unindented JSON")
	return cmd
}
