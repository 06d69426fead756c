package cli

import (
	"github.com/spf13/cobra"

	"quiz-cli/internal/config"
	"quiz-cli/internal/transport/console"
)

// NewRankingCmd prints the top results and exits.
func NewRankingCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Show the top results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMenu(cmd, opts, func(m *console.Menu, cfg config.Config) error {
				n := limit
				if n <= 0 {
					n = cfg.Ranking.Limit
				}
				m.ShowRanking(cmd.Context(), n)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of results to show (defaults to ranking.limit)")
	return cmd
}
