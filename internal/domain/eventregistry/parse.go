package eventregistry

import (
	"context"
	"errors"
	"fmt"
)

// Parse errors
var (
	ErrDefinitionKeyMissing = errors.New("event definition key is missing")
	ErrMalformedDefinition  = errors.New("malformed event definition")
)

// ParseError reports a failure to parse one resource.
type ParseError struct {
	SourceSystemID string // resource name the failure refers to
	Index          int    // position of the offending definition within the resource, -1 if unknown
	Err            error
}

func (e *ParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("parse %s (definition %d): %v", e.SourceSystemID, e.Index, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.SourceSystemID, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Settings is the registry configuration a parser may consult.
type Settings struct {
	// KnownPayloadTypes lists payload types accepted without a warning.
	// Empty means KnownPayloadTypes from this package.
	KnownPayloadTypes []string
}

// IsKnownPayloadType reports whether t is an accepted payload type.
func (s Settings) IsKnownPayloadType(t string) bool {
	known := s.KnownPayloadTypes
	if len(known) == 0 {
		known = KnownPayloadTypes
	}
	for _, k := range known {
		if k == t {
			return true
		}
	}
	return false
}

// ParseSource configures a single parse.
type ParseSource struct {
	Bytes          []byte      // resource content
	SourceSystemID string      // identifier used in diagnostics
	Name           string      // display name
	Deployment     *Deployment // owning deployment, for deployment-scoped settings
}

// DefinitionParser turns one resource's bytes into a ParseResult.
type DefinitionParser interface {
	Parse(ctx context.Context, src ParseSource, settings Settings) (*ParseResult, error)
}

// ParseResult holds every definition produced from one resource plus diagnostics.
type ParseResult struct {
	name           string
	sourceSystemID string
	deployment     *Deployment
	definitions    []*EventDefinition
	warnings       []string
}

// NewParseResult creates an empty result for a parse source.
func NewParseResult(src ParseSource) *ParseResult {
	return &ParseResult{
		name:           src.Name,
		sourceSystemID: src.SourceSystemID,
		deployment:     src.Deployment,
	}
}

// AddDefinition appends a parsed definition.
func (p *ParseResult) AddDefinition(def *EventDefinition) {
	p.definitions = append(p.definitions, def)
}

// AddWarning records a non-fatal diagnostic.
func (p *ParseResult) AddWarning(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

// Name returns the display name of the parsed resource.
func (p *ParseResult) Name() string {
	return p.name
}

// SourceSystemID returns the diagnostic identifier of the parsed resource.
func (p *ParseResult) SourceSystemID() string {
	return p.sourceSystemID
}

// Deployment returns the owning deployment.
func (p *ParseResult) Deployment() *Deployment {
	return p.deployment
}

// Definitions returns the parsed definitions in source order.
func (p *ParseResult) Definitions() []*EventDefinition {
	return p.definitions
}

// Warnings returns the diagnostics collected during parsing.
func (p *ParseResult) Warnings() []string {
	return p.warnings
}
