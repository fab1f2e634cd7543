package syntax

import "strconv"

// SyntaxKind tags every element of a syntax tree. Token kinds and node kinds
// share one enumeration so that any element, leaf or interior, carries exactly
// one tag.
type SyntaxKind uint16

// Token kinds classify the terminal leaves produced by the tokenizer.
const (
	TokHash       SyntaxKind = iota // '#'
	TokDash                         // '-'
	TokStar                         // '*'
	TokBacktick                     // '`'
	TokLBracket                     // '['
	TokRBracket                     // ']'
	TokLParen                       // '('
	TokRParen                       // ')'
	TokText                         // maximal run of non-special characters
	TokWhitespace                   // maximal run of spaces and tabs
	TokNewLine                      // '\n'

	// Node kinds classify interior nodes built by the parser.
	NodeDocument
	NodeHeading
	NodeParagraph
	NodeList
	NodeListItem
	NodeCodeBlock
	NodeError

	kindCount
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [kindCount]string{
	TokHash:       "Hash",
	TokDash:       "Dash",
	TokStar:       "Star",
	TokBacktick:   "Backtick",
	TokLBracket:   "LBracket",
	TokRBracket:   "RBracket",
	TokLParen:     "LParen",
	TokRParen:     "RParen",
	TokText:       "Text",
	TokWhitespace: "Whitespace",
	TokNewLine:    "NewLine",
	NodeDocument:  "Document",
	NodeHeading:   "Heading",
	NodeParagraph: "Paragraph",
	NodeList:      "List",
	NodeListItem:  "ListItem",
	NodeCodeBlock: "CodeBlock",
	NodeError:     "Error",
}

// String returns the kind name without its Tok/Node prefix.
func (k SyntaxKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "SyntaxKind(" + strconv.Itoa(int(k)) + ")"
}

// IsToken reports whether k tags a terminal token.
func (k SyntaxKind) IsToken() bool {
	return k <= TokNewLine
}

// IsNode reports whether k tags an interior node.
func (k SyntaxKind) IsNode() bool {
	return k >= NodeDocument && k < kindCount
}

// IsTrivia reports whether k carries no semantic content.
func (k SyntaxKind) IsTrivia() bool {
	return k == TokWhitespace
}

// MarshalText encodes the kind by name for JSON and YAML output.
func (k SyntaxKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
