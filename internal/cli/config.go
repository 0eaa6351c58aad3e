// Package cli holds the plumbing shared by the console programs under cmd/:
// flag-backed configuration, its validation, and logger construction.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-classics/graphio"
)

// ErrInvalidConfig wraps every flag validation failure.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Config is the flag set common to both programs.
type Config struct {
	Format   string `validate:"required,oneof=table json yaml"`
	LogLevel string `validate:"required,oneof=debug info warn error"`
	NoPrompt bool
}

// DefaultConfig returns the defaults used when no flag is given.
func DefaultConfig() Config {
	return Config{
		Format:   string(graphio.FormatTable),
		LogLevel: "warn",
	}
}

// BindFlags registers the shared flags on cmd, backed by c.
func (c *Config) BindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.Format, "format", "f", c.Format, "output format: table, json or yaml")
	cmd.Flags().StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level on stderr: debug, info, warn or error")
	cmd.Flags().BoolVar(&c.NoPrompt, "no-prompt", c.NoPrompt, "do not print input prompts")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate normalises and checks the configuration.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Tag() == "required" {
				return fmt.Errorf("%w: %s is required", ErrInvalidConfig, strings.ToLower(fe.Field()))
			}

			return fmt.Errorf("%w: %s=%q must be one of [%s]",
				ErrInvalidConfig, strings.ToLower(fe.Field()), fe.Value(), fe.Param())
		}

		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() graphio.Format {
	return graphio.Format(c.Format)
}

// Level maps LogLevel to a slog.Level.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger returns a text logger writing to w at the configured level,
// tagged with the program name.
func (c *Config) NewLogger(w io.Writer, program string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()})

	return slog.New(h).With("program", program)
}

// PromptWriter returns w, or nil when prompts are disabled.
func (c *Config) PromptWriter(w io.Writer) io.Writer {
	if c.NoPrompt {
		return nil
	}

	return w
}
