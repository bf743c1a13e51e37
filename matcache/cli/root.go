// Package cli implements the matcache command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	internal "github.com/ZanzyTHEbar/matcache/matcache"
	"github.com/ZanzyTHEbar/matcache/matcache/config"
)

// NewRootCmd creates the matcache root command.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   internal.DefaultAppName,
		Short: "Invert matrices through a memoizing cache",
		Long: `matcache wraps a numeric matrix in a container that lazily computes and
memoizes its inverse. Repeated solves against an unchanged matrix are served
from the cache; replacing the matrix invalidates it.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override configured log level")

	cmd.AddCommand(NewInvertCmd(&configPath, &logLevel))

	return cmd
}

// newLogger builds the diagnostic logger from config, honoring a CLI
// override of the level.
func newLogger(cfg *config.Config, levelOverride string) (zerolog.Logger, error) {
	levelStr := cfg.Logging.Level
	if levelOverride != "" {
		levelStr = levelOverride
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}

	var w io.Writer = os.Stderr
	if cfg.Logging.Format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
