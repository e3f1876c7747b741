package eventregistry

import (
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
)

// ErrNilModel is returned when converting a nil model.
var ErrNilModel = errors.New("event model is nil")

// JSONConverter writes event models as indented JSON, the form stored as a
// deployment resource by EventModelBuilder.Deploy.
type JSONConverter struct{}

// NewJSONConverter creates a converter.
func NewJSONConverter() *JSONConverter {
	return &JSONConverter{}
}

var _ domain.ModelConverter = (*JSONConverter)(nil)

// ConvertToJSON serializes model. Unset channel keys are omitted; explicitly
// empty ones are written as [].
func (c *JSONConverter) ConvertToJSON(model *domain.EventModel) ([]byte, error) {
	if model == nil {
		return nil, ErrNilModel
	}

	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal event model %s: %w", model.Key, err)
	}
	return data, nil
}
