package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/inferus/internal/logging"
	"github.com/yaklabco/inferus/pkg/parser"
	"github.com/yaklabco/inferus/pkg/syntax"
)

// stdinPath names standard input on the command line.
const stdinPath = "-"

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdinPath {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}

func parseDocument(ctx context.Context, logger *log.Logger, path string, content []byte) (*syntax.Tree, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	tree, err := parser.New(parser.WithLogger(logger)).Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	logger.Debug("parsed",
		logging.FieldPath, path,
		logging.FieldBytes, len(content),
		logging.FieldTokens, tree.TokenCount(),
		logging.FieldNodes, tree.NodeCount(),
		logging.FieldLines, tree.LineCount(),
	)
	return tree, nil
}
