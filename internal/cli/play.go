package cli

import (
	"github.com/spf13/cobra"

	"quiz-cli/internal/config"
	"quiz-cli/internal/transport/console"
)

// NewPlayCmd runs a single quiz session without the menu.
func NewPlayCmd(opts *options) *cobra.Command {
	var name, difficulty string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one quiz session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMenu(cmd, opts, func(m *console.Menu, _ config.Config) error {
				if difficulty == "" {
					return m.StartQuiz(cmd.Context(), name)
				}
				if name == "" {
					var err error
					if name, err = m.AskName(); err != nil {
						return err
					}
				}
				return m.PlaySession(cmd.Context(), name, difficulty)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "player name (asked when empty)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "difficulty key, e.g. facil (asked when empty)")
	return cmd
}
