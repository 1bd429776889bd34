package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andersquist/aoc2021/pkg/config"
)

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	// ConfigFile overrides the default configuration path.
	ConfigFile string

	// Verbose enables debug logging and detailed output.
	Verbose bool

	// Logger is built by the root command before any command runs.
	Logger *zap.Logger
}

func (g *GlobalOptions) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// configPath returns the configuration file in use.
func (g *GlobalOptions) configPath() (string, error) {
	if g.ConfigFile != "" {
		return g.ConfigFile, nil
	}
	return config.Path()
}

// loadConfig loads the configuration, falling back to defaults when no file exists.
func (g *GlobalOptions) loadConfig(ctx context.Context) (*config.Config, error) {
	if g.ConfigFile != "" {
		return config.LoadOrDefault(ctx, g.ConfigFile)
	}
	return config.LoadDefault(ctx)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func validateDay(day int) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("invalid day %d (must be 1-25)", day)
	}
	return nil
}

// lockedWriter serializes writes from concurrently running solvers.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
