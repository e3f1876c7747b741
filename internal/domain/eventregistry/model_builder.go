package eventregistry

import (
	"context"
	"errors"
)

// EventModelBuilder errors
var (
	ErrMissingKey          = errors.New("an event definition key is mandatory")
	ErrMissingResourceName = errors.New("a resource name is mandatory")
	ErrNoDeploymentCreator = errors.New("event model builder has no deployment creator")
	ErrNoModelConverter    = errors.New("event model builder has no model converter")
)

// EventModelBuilder provides a fluent API for creating event models.
//
// Setters never fail; validation happens when CreateEventModel or Deploy runs.
// A builder is meant for a single construction and is not safe for concurrent use.
type EventModelBuilder struct {
	creator   DeploymentCreator
	converter ModelConverter

	deploymentName     string
	resourceName       string
	category           string
	parentDeploymentID string
	tenantID           string

	key                   string
	name                  string
	inboundChannelKeys    *orderedMap[struct{}] // nil until a key is added
	outboundChannelKeys   *orderedMap[struct{}] // nil until a key is added
	correlationParameters *orderedMap[CorrelationParameterDefinition]
	payload               *orderedMap[PayloadDefinition]
	declared              *orderedMap[struct{}] // field names in first-declaration order
}

// NewEventModelBuilder creates a builder. creator and converter are only needed by Deploy.
func NewEventModelBuilder(creator DeploymentCreator, converter ModelConverter) *EventModelBuilder {
	return &EventModelBuilder{
		creator:               creator,
		converter:             converter,
		correlationParameters: newOrderedMap[CorrelationParameterDefinition](),
		payload:               newOrderedMap[PayloadDefinition](),
		declared:              newOrderedMap[struct{}](),
	}
}

// Key sets the event definition key.
func (b *EventModelBuilder) Key(key string) *EventModelBuilder {
	b.key = key
	return b
}

// Name sets the human-readable event name.
func (b *EventModelBuilder) Name(name string) *EventModelBuilder {
	b.name = name
	return b
}

// DeploymentName sets the name of the deployment created by Deploy.
func (b *EventModelBuilder) DeploymentName(name string) *EventModelBuilder {
	b.deploymentName = name
	return b
}

// ResourceName sets the name of the resource holding the serialized model.
func (b *EventModelBuilder) ResourceName(name string) *EventModelBuilder {
	b.resourceName = name
	return b
}

// Category sets the deployment category.
func (b *EventModelBuilder) Category(category string) *EventModelBuilder {
	b.category = category
	return b
}

// ParentDeploymentID sets the parent deployment id.
func (b *EventModelBuilder) ParentDeploymentID(id string) *EventModelBuilder {
	b.parentDeploymentID = id
	return b
}

// TenantID sets the deployment tenant.
func (b *EventModelBuilder) TenantID(tenantID string) *EventModelBuilder {
	b.tenantID = tenantID
	return b
}

// InboundChannelKey adds an inbound channel key. Duplicates are ignored.
func (b *EventModelBuilder) InboundChannelKey(key string) *EventModelBuilder {
	if b.inboundChannelKeys == nil {
		b.inboundChannelKeys = newOrderedMap[struct{}]()
	}
	b.inboundChannelKeys.set(key, struct{}{})
	return b
}

// InboundChannelKeys adds each key as with InboundChannelKey.
func (b *EventModelBuilder) InboundChannelKeys(keys ...string) *EventModelBuilder {
	for _, k := range keys {
		b.InboundChannelKey(k)
	}
	return b
}

// OutboundChannelKey adds an outbound channel key. Duplicates are ignored.
func (b *EventModelBuilder) OutboundChannelKey(key string) *EventModelBuilder {
	if b.outboundChannelKeys == nil {
		b.outboundChannelKeys = newOrderedMap[struct{}]()
	}
	b.outboundChannelKeys.set(key, struct{}{})
	return b
}

// OutboundChannelKeys adds each key as with OutboundChannelKey.
func (b *EventModelBuilder) OutboundChannelKeys(keys ...string) *EventModelBuilder {
	for _, k := range keys {
		b.OutboundChannelKey(k)
	}
	return b
}

// CorrelationParameter declares a correlation parameter. The parameter also
// becomes a payload field of the same type when the model is built.
// Redeclaring a name overwrites it in place.
func (b *EventModelBuilder) CorrelationParameter(name, fieldType string) *EventModelBuilder {
	b.correlationParameters.set(name, CorrelationParameterDefinition{Name: name, Type: fieldType})
	b.declared.set(name, struct{}{})
	return b
}

// Payload declares a payload field. Redeclaring a name overwrites it in place.
func (b *EventModelBuilder) Payload(name, fieldType string) *EventModelBuilder {
	b.payload.set(name, PayloadDefinition{Name: name, Type: fieldType})
	b.declared.set(name, struct{}{})
	return b
}

// CreateEventModel validates the accumulated fields and returns the model.
func (b *EventModelBuilder) CreateEventModel() (*EventModel, error) {
	return b.buildEventModel()
}

// Deploy builds the model, serializes it and creates a new deployment holding it
// as a single resource. Each call creates a new deployment.
func (b *EventModelBuilder) Deploy(ctx context.Context) (*Deployment, error) {
	if b.resourceName == "" {
		return nil, ErrMissingResourceName
	}

	model, err := b.buildEventModel()
	if err != nil {
		return nil, err
	}

	if b.converter == nil {
		return nil, ErrNoModelConverter
	}
	if b.creator == nil {
		return nil, ErrNoDeploymentCreator
	}

	data, err := b.converter.ConvertToJSON(model)
	if err != nil {
		return nil, err
	}

	return b.creator.CreateDeployment(ctx, DeploymentRequest{
		Name:               b.deploymentName,
		Category:           b.category,
		ParentDeploymentID: b.parentDeploymentID,
		TenantID:           b.tenantID,
		Resources:          []*Resource{NewResource(b.resourceName, data)},
	})
}

// buildEventModel is the finalize step shared by both terminal operations.
func (b *EventModelBuilder) buildEventModel() (*EventModel, error) {
	if b.key == "" {
		return nil, ErrMissingKey
	}

	model := &EventModel{
		Key:                   b.key,
		Name:                  b.name,
		CorrelationParameters: b.correlationParameters.orderedValues(),
		Payload:               materializePayload(b.declared.orderedKeys(), b.correlationParameters, b.payload),
	}
	if b.inboundChannelKeys != nil {
		model.InboundChannelKeys = b.inboundChannelKeys.orderedKeys()
	}
	if b.outboundChannelKeys != nil {
		model.OutboundChannelKeys = b.outboundChannelKeys.orderedKeys()
	}

	return model, nil
}

// materializePayload returns the payload fields in first-declaration order with every
// correlation parameter present as a payload field of the correlation type.
func materializePayload(declared []string, correlation *orderedMap[CorrelationParameterDefinition], payload *orderedMap[PayloadDefinition]) []PayloadDefinition {
	fields := make([]PayloadDefinition, 0, len(declared))
	for _, name := range declared {
		if c, ok := correlation.get(name); ok {
			fields = append(fields, PayloadDefinition{Name: c.Name, Type: c.Type})
			continue
		}
		if p, ok := payload.get(name); ok {
			fields = append(fields, p)
		}
	}
	return fields
}
