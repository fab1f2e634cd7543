package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/inferus/internal/config"
	"github.com/yaklabco/inferus/internal/ui/pretty"
	"github.com/yaklabco/inferus/pkg/syntax"
)

func newTreeCommand(sess *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the syntax tree of a Markdown document",
		Long: `Print the syntax tree of a Markdown document.

Reads the named file, or standard input when the file is "-" or omitted.

Examples:
  inferus tree README.md
  inferus tree --format json README.md
  echo '# Title' | inferus tree`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stdinPath
			if len(args) == 1 {
				path = args[0]
			}
			return runTree(cmd, sess, path)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatText), "output format: text, json, yaml")

	return cmd
}

func runTree(cmd *cobra.Command, sess *session, path string) error {
	content, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	tree, err := parseDocument(cmd.Context(), sess.logger, path, content)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch sess.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(exportTree(path, tree)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(exportTree(path, tree)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return renderText(out, sess, tree)
	}
	return nil
}

func renderText(out io.Writer, sess *session, tree *syntax.Tree) error {
	colorEnabled := pretty.IsColorEnabled(string(sess.cfg.Color), out)
	renderer := pretty.NewTreeRenderer(pretty.NewStyles(colorEnabled), pretty.TerminalWidth(out))

	if _, err := io.WriteString(out, renderer.Render(tree.Root())); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}
