// Package cli implements the freebusy reference command line consumer.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/felixgeelhaar/freebusy/pkg/config"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	schedulePath string
	zoneName     string
	verbose      bool
	logger       *slog.Logger
	cfg          *config.Config
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "freebusy",
	Short: "freebusy - timezone-correct availability computation",
	Long: `freebusy computes concrete availability intervals for a resource from
its recurring weekly schedule and date-specific overrides, and carves
existing bookings out of them.

	All computed intervals are timezone-aware absolute instants; wall-clock
	times stay correct across DST transitions and day-boundary shifts.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		ctx := cmd.Context()
		info := commandContext{
			correlationID: uuid.New(),
			startedAt:     time.Now(),
		}
		cmd.SetContext(context.WithValue(ctx, commandContextKey{}, info))
		logger.Info("command start",
			"command", cmd.CommandPath(),
			"correlation_id", info.correlationID.String(),
		)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		logger.Info("command end",
			"command", cmd.CommandPath(),
			"correlation_id", info.correlationID.String(),
			"duration_ms", time.Since(info.startedAt).Milliseconds(),
		)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&schedulePath, "schedule", "s", "", "schedule document path")
	rootCmd.PersistentFlags().StringVarP(&zoneName, "zone", "z", "", "IANA time zone of the query")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// SetConfig sets the loaded configuration the commands fall back to when a
// flag is not given.
func SetConfig(c *config.Config) {
	cfg = c
}

func effectiveSchedulePath() string {
	if schedulePath != "" {
		return schedulePath
	}
	if cfg != nil {
		return cfg.SchedulePath
	}
	return "schedule.json"
}

func effectiveZone() string {
	if zoneName != "" {
		return zoneName
	}
	if cfg != nil {
		return cfg.DefaultTimeZone
	}
	return "UTC"
}
