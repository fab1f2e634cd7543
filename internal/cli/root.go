// Package cli provides the Cobra command structure for inferus.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/inferus/internal/config"
	"github.com/yaklabco/inferus/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// session carries the resolved configuration and logger to subcommands.
type session struct {
	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand creates the root inferus command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}
	sess := &session{cfg: config.Default(), logger: logging.Default()}

	rootCmd := &cobra.Command{
		Use:   "inferus",
		Short: "Inspect the lossless syntax tree of Markdown documents",
		Long: `inferus parses Markdown into a lossless concrete syntax tree.

Every byte of the input, whitespace and newlines included, is kept in the
tree, so the original text can always be reproduced exactly. Malformed input
never fails: unexpected tokens are wrapped in Error nodes and parsing goes on.

Use "tree" to print the tree and "check" to verify round-tripping and list
recovered errors.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return sess.load(cmd, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging, including parser traces")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newTreeCommand(sess))
	rootCmd.AddCommand(newCheckCommand(sess))
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(flags.color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// load resolves configuration for cmd. Flags set on the command line win
// over the environment and the config file.
func (s *session) load(cmd *cobra.Command, flags *globalFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	overrides := &config.Config{}
	if cmd.Flags().Changed("color") {
		overrides.Color = config.ColorMode(flags.color)
	}
	if flags.debug {
		overrides.LogLevel = "debug"
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		overrides.Format = config.OutputFormat(f.Value.String())
	}

	result, err := config.Load(ctx, config.LoadOptions{
		ExplicitPath: flags.configPath,
		Flags:        overrides,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	s.cfg = result.Config
	s.logger = logging.NewWithWriter(cmd.ErrOrStderr(), s.cfg.LogLevel)

	s.logger.Debug("configuration loaded",
		logging.FieldConfig, result.LoadedFrom,
		"env", result.EnvApplied,
		logging.FieldFormat, s.cfg.Format,
		"color", s.cfg.Color,
	)
	return nil
}
