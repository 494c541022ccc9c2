package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPairsCmd(app *app) *cobra.Command {
	var (
		asJSON bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Rank every pair of employees by days worked together",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("limit must not be negative: %d", limit)
			}

			session, err := app.open(cmd)
			if err != nil {
				return err
			}

			var ranked []domain.ResultPair
			err = runWithProgress(cmd.Context(), cmd.ErrOrStderr(), app.showProgress(asJSON), session.cfg.Input.Path, func(ctx context.Context, loaded loadedFunc) error {
				var rankErr error
				ranked, rankErr = session.service.RankPairs(ctx, session.analyzeOptions(loaded, limit))
				return rankErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ranked)
			}

			rendered, err := app.renderRanking(ranked)
			if err != nil {
				return fmt.Errorf("render ranking: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the first N pairs (0 shows all)")

	return cmd
}
