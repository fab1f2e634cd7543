package cli

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/inferus/internal/logging"
	"github.com/yaklabco/inferus/internal/ui/pretty"
	"github.com/yaklabco/inferus/pkg/ast"
	"github.com/yaklabco/inferus/pkg/syntax"
)

// ErrParseAnomalies is returned when a checked document does not round-trip
// or contains recovered parse errors.
var ErrParseAnomalies = errors.New("parse anomalies found")

func newCheckCommand(sess *session) *cobra.Command {
	var noContext bool

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Verify round-tripping and list recovered parse errors",
		Long: `Parse each document, verify the tree reproduces the input byte for byte,
and list every token the parser had to wrap in an Error node.

Reads standard input when no files are given. Exits with status 1 when any
document has anomalies.

Examples:
  inferus check README.md docs/*.md
  inferus check --no-context < notes.md`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinPath}
			}
			return runCheck(cmd, sess, args, !noContext)
		},
	}

	cmd.Flags().BoolVar(&noContext, "no-context", false, "hide source line context in output")

	return cmd
}

func runCheck(cmd *cobra.Command, sess *session, paths []string, showContext bool) error {
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(sess.cfg.Color), out))

	failed := 0
	for _, path := range paths {
		content, err := readInput(cmd, path)
		if err != nil {
			return err
		}

		tree, err := parseDocument(cmd.Context(), sess.logger, path, content)
		if err != nil {
			return err
		}

		lossless := bytes.Equal(syntax.Reassemble(tree.Root().Tokens()), content)
		anomalies := ast.Errors(tree.Root())

		for _, anomaly := range anomalies {
			fmt.Fprint(out, styles.FormatAnomaly(path, tree, anomaly, showContext))
		}
		fmt.Fprint(out, styles.FormatCheckSummary(pretty.CheckStats{
			Path:      path,
			Bytes:     len(content),
			Tokens:    tree.TokenCount(),
			Nodes:     tree.NodeCount(),
			Anomalies: len(anomalies),
			Lossless:  lossless,
		}))

		if !lossless {
			sess.logger.Warn("tree does not reproduce input", logging.FieldPath, path)
		}
		if !lossless || len(anomalies) > 0 {
			failed++
		}
	}

	sess.logger.Debug("check finished", "files", len(paths), "failed", failed)

	if failed > 0 {
		return ErrParseAnomalies
	}
	return nil
}
