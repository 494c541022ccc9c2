package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	resultadapter "github.com/bnema/employee-pairs-cli/internal/adapters/render/result"
	"github.com/bnema/employee-pairs-cli/internal/application"
	"github.com/spf13/cobra"
)

func newLongestCmd(app *app) *cobra.Command {
	var (
		asJSON    bool
		breakdown bool
		summary   bool
	)

	cmd := &cobra.Command{
		Use:   "longest",
		Short: "Show the pair of employees who worked together the longest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.open(cmd)
			if err != nil {
				return err
			}

			var report application.Report
			err = runWithProgress(cmd.Context(), cmd.ErrOrStderr(), app.showProgress(asJSON), session.cfg.Input.Path, func(ctx context.Context, loaded loadedFunc) error {
				var findErr error
				report, findErr = session.service.FindLongestPair(ctx, session.analyzeOptions(loaded, 0))
				return findErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			rendered, err := app.renderReport(report, resultadapter.RenderOptions{
				ShowBreakdown: breakdown,
				ShowSummary:   summary,
			})
			if err != nil {
				return fmt.Errorf("render result: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "List the days per common project")
	cmd.Flags().BoolVar(&summary, "summary", false, "Show record, project and pair counts")

	return cmd
}
