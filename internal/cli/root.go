package cli

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"quiz-cli/internal/config"
	"quiz-cli/internal/transport/console"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath     string
	questionsPath  string
	rankingPath    string
	rankingBackend string
	logLevel       string
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("QUIZ_CONFIG")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	opts := &options{}
	cmd := &cobra.Command{
		Use:          "quiz",
		Short:        "Interactive multiple-choice quiz with a persistent ranking",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMenu(cmd, opts, func(m *console.Menu, _ config.Config) error {
				return m.Run(cmd.Context())
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&opts.questionsPath, "questions", "", "question bank file (.json or .yaml)")
	cmd.PersistentFlags().StringVar(&opts.rankingPath, "ranking", "", "ranking file for the file backend")
	cmd.PersistentFlags().StringVar(&opts.rankingBackend, "ranking-backend", "", "ranking storage: file, memory, redis, postgres or sqlite")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.AddCommand(NewPlayCmd(opts))
	cmd.AddCommand(NewRankingCmd(opts))
	cmd.AddCommand(NewMigrateCmd(opts))
	return cmd
}

// load reads the config file, falling back to defaults when it does not exist,
// and applies flag overrides.
func (o *options) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if o.questionsPath != "" {
		cfg.Questions.Path = o.questionsPath
	}
	if o.rankingPath != "" {
		cfg.Ranking.Path = o.rankingPath
	}
	if o.rankingBackend != "" {
		cfg.Ranking.Backend = o.rankingBackend
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

// withMenu wires services from config and hands a console menu over the command's streams to fn.
func withMenu(cmd *cobra.Command, opts *options, fn func(*console.Menu, config.Config) error) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	svc, err := buildServices(cmd.Context(), cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer svc.Close()

	term := console.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	menu := console.NewMenu(term, svc.quizzes, svc.ranking, cfg.Quiz.Difficulties, cfg.Ranking.Limit)
	// Running out of input ends the session like an explicit exit.
	if err := fn(menu, cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
