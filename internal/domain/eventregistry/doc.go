// Package eventregistry implements the domain layer of the event-definition registry.
//
// The package contains only pure Go code with standard library imports. It knows
// nothing about file I/O, YAML/JSON decoding, SQL or tracing; those concerns live in
// internal/application/eventregistry and internal/infrastructure/sqlite.
//
// # Core Types
//
// Resource and Deployment describe a raw bundle of named byte blobs submitted together.
//
// ResourceClassifier decides which resources are event-definition artifacts. The
// default SuffixClassifier matches names against a configurable set of suffixes.
//
// EventDefinition is the entity produced by parsing a resource. A single resource may
// yield several definitions. ParseResult holds every definition produced from one
// resource together with parser diagnostics.
//
// ParsedDeployment is the immutable aggregate relating every definition to the parse
// result and the resource it came from. Each definition is given a DefinitionRef
// when it is added; the ref lives in the aggregate, not on the definition, so a
// definition only resolves in the ParsedDeployment it was added to.
//
// # Event Models
//
// EventModel is the structural description of an event: key, channel keys,
// correlation parameters and payload fields. EventModelBuilder accumulates model
// fields through a fluent API and validates them only when a terminal operation
// (CreateEventModel or Deploy) runs.
//
// # Import Aliasing
//
// The application package has the same name. When importing both, alias the domain:
//
//	import (
//	    domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
//	    "github.com/zjrosen/eventregistry/internal/application/eventregistry"
//	)
package eventregistry
