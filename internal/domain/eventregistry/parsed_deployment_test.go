package eventregistry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testDefinition(key string) *EventDefinition {
	return NewEventDefinition(&EventModel{Key: key}, "")
}

func mustAdd(t *testing.T, b *ParsedDeploymentBuilder, res *Resource, parse *ParseResult, def *EventDefinition) DefinitionRef {
	t.Helper()
	ref, err := b.Add(res, parse, def)
	require.NoError(t, err)
	return ref
}

func TestParsedDeploymentBuilder_AssignsRefsInOrder(t *testing.T) {
	resA := NewResource("a.event", []byte("a"))
	resC := NewResource("c.event", []byte("c"))
	dep := NewDeployment("dep-1", DeploymentRequest{Resources: []*Resource{resA, resC}}, time.Now())

	parseA := NewParseResult(ParseSource{Name: "a.event", SourceSystemID: "a.event", Deployment: dep})
	parseC := NewParseResult(ParseSource{Name: "c.event", SourceSystemID: "c.event", Deployment: dep})

	d1, d2, d3 := testDefinition("one"), testDefinition("two"), testDefinition("three")

	builder := NewParsedDeploymentBuilder(dep)
	mustAdd(t, builder, resA, parseA, d1)
	mustAdd(t, builder, resA, parseA, d2)
	ref3 := mustAdd(t, builder, resC, parseC, d3)
	parsed := builder.Build()

	require.Same(t, dep, parsed.Deployment())
	require.Equal(t, 3, parsed.Len())
	require.Equal(t, []*EventDefinition{d1, d2, d3}, parsed.Definitions())
	for i, def := range []*EventDefinition{d1, d2, d3} {
		ref, ok := parsed.RefOf(def)
		require.True(t, ok)
		require.Equal(t, DefinitionRef(i+1), ref)
	}
	got, ok := parsed.Definition(ref3)
	require.True(t, ok)
	require.Same(t, d3, got)

	p1, ok := parsed.ParseOf(d1)
	require.True(t, ok)
	p2, ok := parsed.ParseOf(d2)
	require.True(t, ok)
	require.Same(t, p1, p2, "definitions from one resource share the parse")
	require.Same(t, parseA, p1)

	r3, ok := parsed.ResourceOf(d3)
	require.True(t, ok)
	require.Same(t, resC, r3)
}

func TestParsedDeployment_IdenticalContentStaysDistinct(t *testing.T) {
	resA := NewResource("a.event", []byte("same"))
	resB := NewResource("b.event", []byte("same"))
	dep := NewDeployment("dep-1", DeploymentRequest{Resources: []*Resource{resA, resB}}, time.Now())
	parseA := NewParseResult(ParseSource{Name: "a.event"})
	parseB := NewParseResult(ParseSource{Name: "b.event"})

	defA := testDefinition("same")
	defB := testDefinition("same")

	builder := NewParsedDeploymentBuilder(dep)
	mustAdd(t, builder, resA, parseA, defA)
	mustAdd(t, builder, resB, parseB, defB)
	parsed := builder.Build()

	ra, _ := parsed.ResourceOf(defA)
	rb, _ := parsed.ResourceOf(defB)
	require.Equal(t, "a.event", ra.Name())
	require.Equal(t, "b.event", rb.Name())
}

func TestParsedDeployment_CopiedDefinitionIsNotFound(t *testing.T) {
	res := NewResource("a.event", nil)
	dep := NewDeployment("dep-1", DeploymentRequest{Resources: []*Resource{res}}, time.Now())
	parse := NewParseResult(ParseSource{Name: "a.event"})
	def := testDefinition("k")

	builder := NewParsedDeploymentBuilder(dep)
	mustAdd(t, builder, res, parse, def)
	parsed := builder.Build()

	copied := *def
	_, ok := parsed.ResourceOf(&copied)
	require.False(t, ok)
	_, ok = parsed.ModelOf(&copied)
	require.False(t, ok)

	got, ok := parsed.ResourceOf(def)
	require.True(t, ok)
	require.Same(t, res, got)
}

func TestParsedDeployment_DefinitionFromAnotherDeployment(t *testing.T) {
	resX := NewResource("x.event", nil)
	resY := NewResource("y.event", nil)
	defX, defY := testDefinition("x"), testDefinition("y")

	bx := NewParsedDeploymentBuilder(nil)
	mustAdd(t, bx, resX, NewParseResult(ParseSource{Name: "x.event"}), defX)
	parsedX := bx.Build()

	by := NewParsedDeploymentBuilder(nil)
	mustAdd(t, by, resY, NewParseResult(ParseSource{Name: "y.event"}), defY)
	parsedY := by.Build()

	_, ok := parsedY.ResourceOf(defX)
	require.False(t, ok)
	_, ok = parsedY.ParseOf(defX)
	require.False(t, ok)
	_, ok = parsedX.RefOf(defY)
	require.False(t, ok)
}

func TestParsedDeployment_SharedDefinitionKeepsEachLookup(t *testing.T) {
	resA := NewResource("a.event", nil)
	resB := NewResource("b.event", nil)
	resC := NewResource("c.event", nil)
	d1, d2 := testDefinition("one"), testDefinition("two")

	first := NewParsedDeploymentBuilder(nil)
	mustAdd(t, first, resA, NewParseResult(ParseSource{Name: "a.event"}), d1)
	mustAdd(t, first, resB, NewParseResult(ParseSource{Name: "b.event"}), d2)
	p1 := first.Build()

	second := NewParsedDeploymentBuilder(nil)
	mustAdd(t, second, resC, NewParseResult(ParseSource{Name: "c.event"}), d2)
	p2 := second.Build()

	r1, ok := p1.ResourceOf(d2)
	require.True(t, ok)
	require.Same(t, resB, r1, "adding d2 elsewhere must not change this lookup")

	r2, ok := p2.ResourceOf(d2)
	require.True(t, ok)
	require.Same(t, resC, r2)
}

func TestParsedDeploymentBuilder_RejectsDuplicateDefinition(t *testing.T) {
	res := NewResource("a.event", nil)
	parse := NewParseResult(ParseSource{Name: "a.event"})
	def := testDefinition("k")

	builder := NewParsedDeploymentBuilder(nil)
	mustAdd(t, builder, res, parse, def)

	_, err := builder.Add(res, parse, def)
	require.ErrorIs(t, err, ErrDefinitionAlreadyAdded)

	_, err = builder.Add(res, parse, nil)
	require.Error(t, err)
	require.Equal(t, 1, builder.Build().Len())
}

func TestParsedDeployment_DefinitionsReturnsCopy(t *testing.T) {
	res := NewResource("a.event", nil)
	parse := NewParseResult(ParseSource{Name: "a.event"})
	def := testDefinition("k")

	builder := NewParsedDeploymentBuilder(nil)
	mustAdd(t, builder, res, parse, def)
	parsed := builder.Build()

	defs := parsed.Definitions()
	defs[0] = testDefinition("intruder")

	require.Equal(t, "k", parsed.Definitions()[0].Key())
	_, ok := parsed.ParseOf(parsed.Definitions()[0])
	require.True(t, ok)
}

func TestParsedDeployment_UnknownDefinition(t *testing.T) {
	parsed := NewParsedDeploymentBuilder(nil).Build()

	_, ok := parsed.ParseOf(testDefinition("stranger"))
	require.False(t, ok)
	_, ok = parsed.ResourceOf(nil)
	require.False(t, ok)
	_, ok = parsed.ModelOf(testDefinition("stranger"))
	require.False(t, ok)
	_, ok = parsed.Definition(1)
	require.False(t, ok)
	_, ok = parsed.Definition(0)
	require.False(t, ok)
	require.Equal(t, 0, parsed.Len())
	require.NotNil(t, parsed.Definitions())
}

func TestParsedDeploymentBuilder_AddAfterBuild(t *testing.T) {
	builder := NewParsedDeploymentBuilder(nil)
	_ = builder.Build()

	_, err := builder.Add(NewResource("a.event", nil), NewParseResult(ParseSource{}), testDefinition("k"))
	require.ErrorIs(t, err, ErrParsedDeploymentBuilt)
}

func TestParseError(t *testing.T) {
	err := &ParseError{SourceSystemID: "a.event", Index: 1, Err: ErrDefinitionKeyMissing}
	require.ErrorIs(t, err, ErrDefinitionKeyMissing)
	require.Equal(t, "parse a.event (definition 1): event definition key is missing", err.Error())

	err = &ParseError{SourceSystemID: "a.event", Index: -1, Err: ErrMalformedDefinition}
	require.Equal(t, "parse a.event: malformed event definition", err.Error())
}

func TestSettings_IsKnownPayloadType(t *testing.T) {
	require.True(t, Settings{}.IsKnownPayloadType(PayloadTypeString))
	require.False(t, Settings{}.IsKnownPayloadType("uuid"))

	custom := Settings{KnownPayloadTypes: []string{"uuid"}}
	require.True(t, custom.IsKnownPayloadType("uuid"))
	require.False(t, custom.IsKnownPayloadType(PayloadTypeString))
}
