// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldFormat = "format"

	// Highlighter fields.
	FieldSet        = "set"
	FieldQuery      = "query"
	FieldQueries    = "queries"
	FieldReserve    = "reserve"
	FieldHighlights = "highlights"
	FieldID         = "id"

	// Configuration fields.
	FieldConfig       = "config"
	FieldMaxHighlight = "max_highlight"
	FieldNormalise    = "normalise"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
