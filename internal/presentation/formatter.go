package presentation

import (
	"encoding/json"
	"io"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatDefinitions formats a list of event definitions as JSON
func (f *Formatter) FormatDefinitions(definitions []DefinitionDTO) error {
	return f.encode(definitions)
}

// FormatDeployment formats a deployment as JSON
func (f *Formatter) FormatDeployment(deployment DeploymentDTO) error {
	return f.encode(deployment)
}

// FormatEventModel formats an event model in its canonical JSON form
func (f *Formatter) FormatEventModel(model *domain.EventModel) error {
	return f.encode(model)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
