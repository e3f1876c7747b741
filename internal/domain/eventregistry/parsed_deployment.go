package eventregistry

import (
	"errors"
	"slices"
)

// ParsedDeployment errors
var (
	ErrParsedDeploymentBuilt  = errors.New("parsed deployment already built")
	ErrDefinitionAlreadyAdded = errors.New("event definition already added to this deployment")
)

// DefinitionRef identifies a definition within one ParsedDeployment. Refs start
// at 1 in definition order; the zero value is never assigned.
type DefinitionRef int

// parsedEntry is what a ParsedDeployment records for one definition.
type parsedEntry struct {
	definition *EventDefinition
	parse      *ParseResult
	resource   *Resource
}

// ParsedDeployment relates every definition of a deployment to the parse result
// and the resource it came from. It is immutable after construction.
//
// Each definition gets a DefinitionRef when it is added; the parse and resource
// lookups go through that ref, so they cannot disagree with the definition
// sequence. Refs are private to the aggregate: a definition that was not added
// to this ParsedDeployment, including a copy of one that was, is not found.
type ParsedDeployment struct {
	deployment *Deployment
	entries    []parsedEntry // entries[ref-1]
	refs       map[*EventDefinition]DefinitionRef
}

// Deployment returns the deployment that was parsed.
func (p *ParsedDeployment) Deployment() *Deployment {
	return p.deployment
}

// Definitions returns all definitions in resource order, then in-resource order.
// The returned slice is a copy.
func (p *ParsedDeployment) Definitions() []*EventDefinition {
	defs := make([]*EventDefinition, len(p.entries))
	for i, e := range p.entries {
		defs[i] = e.definition
	}
	return defs
}

// Len returns the number of definitions.
func (p *ParsedDeployment) Len() int {
	return len(p.entries)
}

// RefOf returns the ref def was given when it was added.
func (p *ParsedDeployment) RefOf(def *EventDefinition) (DefinitionRef, bool) {
	if def == nil {
		return 0, false
	}
	ref, ok := p.refs[def]
	return ref, ok
}

// Definition returns the definition added under ref.
func (p *ParsedDeployment) Definition(ref DefinitionRef) (*EventDefinition, bool) {
	e, ok := p.entry(ref)
	return e.definition, ok
}

// ParseOf returns the parse result that produced def.
func (p *ParsedDeployment) ParseOf(def *EventDefinition) (*ParseResult, bool) {
	ref, ok := p.RefOf(def)
	if !ok {
		return nil, false
	}
	e, _ := p.entry(ref)
	return e.parse, true
}

// ResourceOf returns the resource def was parsed from.
func (p *ParsedDeployment) ResourceOf(def *EventDefinition) (*Resource, bool) {
	ref, ok := p.RefOf(def)
	if !ok {
		return nil, false
	}
	e, _ := p.entry(ref)
	return e.resource, true
}

// ModelOf returns the event model parsed for def.
func (p *ParsedDeployment) ModelOf(def *EventDefinition) (*EventModel, bool) {
	if _, ok := p.RefOf(def); !ok {
		return nil, false
	}
	return def.Model(), def.Model() != nil
}

func (p *ParsedDeployment) entry(ref DefinitionRef) (parsedEntry, bool) {
	if ref < 1 || int(ref) > len(p.entries) {
		return parsedEntry{}, false
	}
	return p.entries[ref-1], true
}

// ParsedDeploymentBuilder accumulates definitions into a ParsedDeployment.
type ParsedDeploymentBuilder struct {
	parsed *ParsedDeployment
}

// NewParsedDeploymentBuilder starts a ParsedDeployment for dep.
func NewParsedDeploymentBuilder(dep *Deployment) *ParsedDeploymentBuilder {
	return &ParsedDeploymentBuilder{
		parsed: &ParsedDeployment{
			deployment: dep,
			entries:    make([]parsedEntry, 0),
			refs:       make(map[*EventDefinition]DefinitionRef),
		},
	}
}

// Add appends def with its parse result and resource and returns the ref it was
// given. Adding the same definition twice fails with ErrDefinitionAlreadyAdded.
func (b *ParsedDeploymentBuilder) Add(res *Resource, parse *ParseResult, def *EventDefinition) (DefinitionRef, error) {
	if b.parsed == nil {
		return 0, ErrParsedDeploymentBuilt
	}
	if def == nil {
		return 0, errors.New("event definition is nil")
	}
	p := b.parsed
	if _, dup := p.refs[def]; dup {
		return 0, ErrDefinitionAlreadyAdded
	}

	p.entries = append(p.entries, parsedEntry{definition: def, parse: parse, resource: res})
	ref := DefinitionRef(len(p.entries))
	p.refs[def] = ref
	return ref, nil
}

// Build returns the ParsedDeployment. The builder cannot be used afterwards.
func (b *ParsedDeploymentBuilder) Build() *ParsedDeployment {
	p := b.parsed
	b.parsed = nil
	p.entries = slices.Clip(p.entries)
	return p
}
