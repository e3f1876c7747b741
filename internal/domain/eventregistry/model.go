package eventregistry

// Payload types understood by the registry. Definitions may use other types;
// parsers report them as warnings.
const (
	PayloadTypeString  = "string"
	PayloadTypeInteger = "integer"
	PayloadTypeLong    = "long"
	PayloadTypeDouble  = "double"
	PayloadTypeBoolean = "boolean"
	PayloadTypeJSON    = "json"
)

// KnownPayloadTypes lists the built-in payload types.
var KnownPayloadTypes = []string{
	PayloadTypeString,
	PayloadTypeInteger,
	PayloadTypeLong,
	PayloadTypeDouble,
	PayloadTypeBoolean,
	PayloadTypeJSON,
}

// CorrelationParameterDefinition is a named, typed field used to match incoming
// events to waiting instances.
type CorrelationParameterDefinition struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// PayloadDefinition is a named, typed field carried by an event instance.
type PayloadDefinition struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// EventModel is the structural description of an event.
//
// A nil channel-key slice means the keys were never set; a non-nil empty slice
// means they were set to nothing. Every correlation parameter also appears in
// Payload with the same type.
type EventModel struct {
	Key                   string                           `json:"key" yaml:"key"`
	Name                  string                           `json:"name,omitempty" yaml:"name,omitempty"`
	InboundChannelKeys    []string                         `json:"inboundChannelKeys,omitzero" yaml:"inboundChannelKeys,omitempty"`
	OutboundChannelKeys   []string                         `json:"outboundChannelKeys,omitzero" yaml:"outboundChannelKeys,omitempty"`
	CorrelationParameters []CorrelationParameterDefinition `json:"correlationParameters" yaml:"correlationParameters"`
	Payload               []PayloadDefinition              `json:"payload" yaml:"payload"`
}

// PayloadField returns the payload definition with the given name.
func (m *EventModel) PayloadField(name string) (PayloadDefinition, bool) {
	for _, p := range m.Payload {
		if p.Name == name {
			return p, true
		}
	}
	return PayloadDefinition{}, false
}

// CorrelationParameter returns the correlation parameter with the given name.
func (m *EventModel) CorrelationParameter(name string) (CorrelationParameterDefinition, bool) {
	for _, c := range m.CorrelationParameters {
		if c.Name == name {
			return c, true
		}
	}
	return CorrelationParameterDefinition{}, false
}
