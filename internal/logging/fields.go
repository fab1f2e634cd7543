package logging

// Field names for structured logging.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldConfig = "config"
	FieldFormat = "format"

	// Tree statistics.
	FieldBytes  = "bytes"
	FieldTokens = "tokens"
	FieldNodes  = "nodes"
	FieldErrors = "errors"
	FieldLines  = "lines"

	// Parser tracing.
	FieldOffset = "offset"
	FieldKind   = "kind"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
