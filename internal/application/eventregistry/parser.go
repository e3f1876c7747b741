package eventregistry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
	"github.com/zjrosen/eventregistry/internal/log"
)

// eventFile is the serialized form of one event definition, shared by JSON and
// YAML resources.
type eventFile struct {
	Key                   string     `json:"key" yaml:"key"`
	Name                  string     `json:"name" yaml:"name"`
	InboundChannelKeys    []string   `json:"inboundChannelKeys" yaml:"inboundChannelKeys"`
	OutboundChannelKeys   []string   `json:"outboundChannelKeys" yaml:"outboundChannelKeys"`
	CorrelationParameters []fieldDef `json:"correlationParameters" yaml:"correlationParameters"`
	Payload               []fieldDef `json:"payload" yaml:"payload"`
}

// fieldDef is a payload or correlation entry. A payload entry flagged with
// correlationParameter is registered as a correlation parameter too.
type fieldDef struct {
	Name                 string `json:"name" yaml:"name"`
	Type                 string `json:"type" yaml:"type"`
	CorrelationParameter bool   `json:"correlationParameter" yaml:"correlationParameter"`
}

// YAMLDefinitionParser parses event-definition resources.
//
// A resource holds a single definition object, a list of definitions, or
// (YAML only) several documents each holding either form. JSON is read with
// encoding/json; YAML, including flow style such as {key: orderCreated}, with
// yaml.v3.
type YAMLDefinitionParser struct{}

// NewYAMLDefinitionParser creates a parser.
func NewYAMLDefinitionParser() *YAMLDefinitionParser {
	return &YAMLDefinitionParser{}
}

var _ domain.DefinitionParser = (*YAMLDefinitionParser)(nil)

// Parse decodes src into event definitions. Malformed content and definitions
// without a key fail with a *domain.ParseError; unknown payload types only add
// warnings.
func (p *YAMLDefinitionParser) Parse(ctx context.Context, src domain.ParseSource, settings domain.Settings) (*domain.ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := decodeEventFiles(src.Bytes)
	if err != nil {
		return nil, &domain.ParseError{
			SourceSystemID: src.SourceSystemID,
			Index:          -1,
			Err:            fmt.Errorf("%w: %v", domain.ErrMalformedDefinition, err),
		}
	}
	if len(files) == 0 {
		return nil, &domain.ParseError{
			SourceSystemID: src.SourceSystemID,
			Index:          -1,
			Err:            fmt.Errorf("%w: resource contains no event definitions", domain.ErrMalformedDefinition),
		}
	}

	result := domain.NewParseResult(src)
	for i, file := range files {
		model, err := file.toModel()
		if err != nil {
			if errors.Is(err, domain.ErrMissingKey) {
				err = domain.ErrDefinitionKeyMissing
			}
			return nil, &domain.ParseError{SourceSystemID: src.SourceSystemID, Index: i, Err: err}
		}

		for _, field := range model.Payload {
			if !settings.IsKnownPayloadType(field.Type) {
				result.AddWarning("event %s: payload field %s has unknown type %q", model.Key, field.Name, field.Type)
			}
		}
		result.AddDefinition(domain.NewEventDefinition(model, src.Name))
	}

	log.Debug(log.CatParse, "parsed event definition resource",
		"resource", src.SourceSystemID,
		"definitions", len(files),
		"warnings", len(result.Warnings()))
	return result, nil
}

// decodeEventFiles reads every definition in data. Content starting with '{'
// or '[' is tried as JSON first and then as YAML flow style; anything else is
// read as one or more YAML documents.
func decodeEventFiles(data []byte) ([]eventFile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return decodeYAMLEventFiles(data)
	}

	files, jsonErr := decodeJSONEventFiles(trimmed)
	if jsonErr == nil {
		return files, nil
	}
	files, err := decodeYAMLEventFiles(data)
	if err != nil {
		// Report the JSON error; the content looked like JSON.
		return nil, jsonErr
	}
	return files, nil
}

func decodeYAMLEventFiles(data []byte) ([]eventFile, error) {
	var files []eventFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(doc.Content) == 0 {
			continue
		}

		node := doc.Content[0]
		switch node.Kind {
		case yaml.MappingNode:
			var file eventFile
			if err := node.Decode(&file); err != nil {
				return nil, err
			}
			files = append(files, file)
		case yaml.SequenceNode:
			var batch []eventFile
			if err := node.Decode(&batch); err != nil {
				return nil, err
			}
			files = append(files, batch...)
		case yaml.ScalarNode:
			if node.Tag == "!!null" {
				continue
			}
			return nil, fmt.Errorf("line %d: expected an object or a list, got a scalar", node.Line)
		default:
			return nil, fmt.Errorf("line %d: expected an object or a list", node.Line)
		}
	}
	return files, nil
}

func decodeJSONEventFiles(data []byte) ([]eventFile, error) {
	if data[0] == '[' {
		var files []eventFile
		if err := json.Unmarshal(data, &files); err != nil {
			return nil, err
		}
		return files, nil
	}

	var file eventFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return []eventFile{file}, nil
}

// toModel builds the model through EventModelBuilder so parsed and built
// models obey the same rules.
func (f eventFile) toModel() (*domain.EventModel, error) {
	b := domain.NewEventModelBuilder(nil, nil).
		Key(f.Key).
		Name(f.Name).
		InboundChannelKeys(f.InboundChannelKeys...).
		OutboundChannelKeys(f.OutboundChannelKeys...)

	// Payload first, so field order follows the payload list and a model
	// written by JSONConverter parses back unchanged.
	for _, field := range f.Payload {
		if field.CorrelationParameter {
			b.CorrelationParameter(field.Name, field.Type)
			continue
		}
		b.Payload(field.Name, field.Type)
	}
	for _, c := range f.CorrelationParameters {
		b.CorrelationParameter(c.Name, c.Type)
	}

	model, err := b.CreateEventModel()
	if err != nil {
		return nil, err
	}

	// An explicit empty list stays distinguishable from an absent one.
	if f.InboundChannelKeys != nil && model.InboundChannelKeys == nil {
		model.InboundChannelKeys = []string{}
	}
	if f.OutboundChannelKeys != nil && model.OutboundChannelKeys == nil {
		model.OutboundChannelKeys = []string{}
	}
	return model, nil
}
