package testutil

import "encoding/json"

// FieldData is a payload or correlation entry of an event fixture.
type FieldData struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// eventData is the JSON shape of one event definition fixture.
type eventData struct {
	Key                   string      `json:"key"`
	Name                  string      `json:"name,omitempty"`
	InboundChannelKeys    []string    `json:"inboundChannelKeys,omitempty"`
	OutboundChannelKeys   []string    `json:"outboundChannelKeys,omitempty"`
	CorrelationParameters []FieldData `json:"correlationParameters,omitempty"`
	Payload               []FieldData `json:"payload,omitempty"`
}

// EventOption configures an event definition fixture.
type EventOption func(*eventData)

// EventFixture is a single event definition fixture. Build one with Event.
type EventFixture struct {
	data eventData
}

// Event creates an event definition fixture with the given key.
func Event(key string, opts ...EventOption) EventFixture {
	data := eventData{Key: key}
	for _, opt := range opts {
		opt(&data)
	}
	return EventFixture{data: data}
}

// Key returns the fixture's definition key.
func (e EventFixture) Key() string {
	return e.data.Key
}

// EventJSON renders one or more fixtures as resource content. A single fixture
// is rendered as an object, several as a list.
func EventJSON(events ...EventFixture) []byte {
	var v any
	if len(events) == 1 {
		v = events[0].data
	} else {
		list := make([]eventData, len(events))
		for i, e := range events {
			list[i] = e.data
		}
		v = list
	}
	out, err := json.Marshal(v)
	if err != nil {
		panic(err) // fixtures only hold strings
	}
	return out
}

func Name(name string) EventOption {
	return func(e *eventData) { e.Name = name }
}

func InboundChannels(keys ...string) EventOption {
	return func(e *eventData) { e.InboundChannelKeys = append(e.InboundChannelKeys, keys...) }
}

func OutboundChannels(keys ...string) EventOption {
	return func(e *eventData) { e.OutboundChannelKeys = append(e.OutboundChannelKeys, keys...) }
}

// Correlation adds a correlation parameter.
func Correlation(name, fieldType string) EventOption {
	return func(e *eventData) {
		e.CorrelationParameters = append(e.CorrelationParameters, FieldData{Name: name, Type: fieldType})
	}
}

// Payload adds a payload field.
func Payload(name, fieldType string) EventOption {
	return func(e *eventData) {
		e.Payload = append(e.Payload, FieldData{Name: name, Type: fieldType})
	}
}
