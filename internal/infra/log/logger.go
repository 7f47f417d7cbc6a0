// Package logs builds the process-wide slog.Logger from config.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"scout/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the logger. JSON output is the default; env.log.pretty
// switches to the text handler for local development.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if params.Config.Env.Log.Pretty {
		return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, opts)), nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
