package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds a text logger writing to out at the given level ("debug", "info", "warn", ...).
func New(level string, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	return log, nil
}
