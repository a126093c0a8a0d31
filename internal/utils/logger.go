// internal/utils/logger.go
package utils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// ConfigureLogger sets the level and formatter of the standard logrus logger.
func ConfigureLogger(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)

	switch format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}
