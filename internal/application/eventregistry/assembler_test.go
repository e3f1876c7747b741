package eventregistry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"pgregory.net/rapid"

	app "github.com/zjrosen/eventregistry/internal/application/eventregistry"
	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
	"github.com/zjrosen/eventregistry/internal/mocks"
	"github.com/zjrosen/eventregistry/internal/testutil"
	"github.com/zjrosen/eventregistry/internal/tracing"
)

func newAssembler(parser domain.DefinitionParser, opts ...app.AssemblerOption) *app.DeploymentAssembler {
	return app.NewDeploymentAssembler(domain.DefaultClassifier(), parser, domain.Settings{}, opts...)
}

// fakeResult returns a parse result holding one definition per key.
func fakeResult(src domain.ParseSource, keys ...string) *domain.ParseResult {
	result := domain.NewParseResult(src)
	for _, key := range keys {
		result.AddDefinition(domain.NewEventDefinition(&domain.EventModel{Key: key}, src.Name))
	}
	return result
}

func TestDeploymentAssembler_Build(t *testing.T) {
	dep := testutil.NewDeploymentBuilder("mixed").
		WithEvent("a.event", "a").
		WithResource("b.bpmn", []byte("<definitions/>")).
		WithEvents("c.event", testutil.Event("c1"), testutil.Event("c2")).
		Deployment("dep-1")

	parsed, err := newAssembler(app.NewYAMLDefinitionParser()).Build(context.Background(), dep)
	require.NoError(t, err)
	require.Same(t, dep, parsed.Deployment())
	require.Equal(t, 3, parsed.Len())
	require.Equal(t, []string{"a", "c1", "c2"}, keys(parsed.Definitions()))

	wantResource := []string{"a.event", "c.event", "c.event"}
	for i, def := range parsed.Definitions() {
		res, ok := parsed.ResourceOf(def)
		require.True(t, ok)
		require.Equal(t, wantResource[i], res.Name())

		parse, ok := parsed.ParseOf(def)
		require.True(t, ok)
		require.Equal(t, wantResource[i], parse.Name())
		require.Equal(t, wantResource[i], parse.SourceSystemID())
		require.Same(t, dep, parse.Deployment())
		require.Contains(t, parse.Definitions(), def)

		model, ok := parsed.ModelOf(def)
		require.True(t, ok)
		require.Equal(t, def.Key(), model.Key)
	}

	first, _ := parsed.ParseOf(parsed.Definitions()[1])
	second, _ := parsed.ParseOf(parsed.Definitions()[2])
	require.Same(t, first, second, "definitions of one resource share a parse result")
}

func TestDeploymentAssembler_SkipsUnclassifiedWithoutParsing(t *testing.T) {
	parser := mocks.NewMockDefinitionParser(t)
	parser.EXPECT().
		Parse(mock.Anything, mock.MatchedBy(func(src domain.ParseSource) bool { return src.Name == "a.event" }), mock.Anything).
		RunAndReturn(func(_ context.Context, src domain.ParseSource, _ domain.Settings) (*domain.ParseResult, error) {
			return fakeResult(src, "a"), nil
		}).
		Once()

	dep := testutil.NewDeploymentBuilder("mixed").
		WithEvent("a.event", "a").
		WithResource("b.bpmn", []byte("<definitions/>")).
		WithResource("notes.event.txt", []byte("text")).
		Deployment("dep-1")

	parsed, err := newAssembler(parser).Build(context.Background(), dep)
	require.NoError(t, err)
	require.Equal(t, 1, parsed.Len())
}

func TestDeploymentAssembler_PassesSourceAndSettings(t *testing.T) {
	settings := domain.Settings{KnownPayloadTypes: []string{"date"}}
	dep := testutil.NewDeploymentBuilder("one").WithEvent("dir/a.event", "a").Deployment("dep-1")

	parser := mocks.NewMockDefinitionParser(t)
	parser.EXPECT().
		Parse(mock.Anything, mock.Anything, settings).
		Run(func(_ context.Context, src domain.ParseSource, _ domain.Settings) {
			require.Equal(t, "dir/a.event", src.Name)
			require.Equal(t, "dir/a.event", src.SourceSystemID)
			require.Same(t, dep, src.Deployment)
			require.JSONEq(t, `{"key":"a"}`, string(src.Bytes))
		}).
		Return(domain.NewParseResult(domain.ParseSource{Name: "dir/a.event"}), nil).
		Once()

	parsed, err := app.NewDeploymentAssembler(domain.DefaultClassifier(), parser, settings).Build(context.Background(), dep)
	require.NoError(t, err)
	require.Zero(t, parsed.Len(), "a resource may yield no definitions")
}

func TestDeploymentAssembler_FailsFast(t *testing.T) {
	parseErr := errors.New("boom")

	parser := mocks.NewMockDefinitionParser(t)
	parser.EXPECT().
		Parse(mock.Anything, mock.MatchedBy(func(src domain.ParseSource) bool { return src.Name == "a.event" }), mock.Anything).
		RunAndReturn(func(_ context.Context, src domain.ParseSource, _ domain.Settings) (*domain.ParseResult, error) {
			return fakeResult(src, "a"), nil
		}).
		Once()
	parser.EXPECT().
		Parse(mock.Anything, mock.MatchedBy(func(src domain.ParseSource) bool { return src.Name == "b.event" }), mock.Anything).
		Return(nil, parseErr).
		Once()

	dep := testutil.NewDeploymentBuilder("failing").
		WithEvent("a.event", "a").
		WithEvent("b.event", "b").
		WithEvent("c.event", "c").
		Deployment("dep-1")

	parsed, err := newAssembler(parser).Build(context.Background(), dep)
	require.Nil(t, parsed)
	require.Same(t, parseErr, err, "parse errors are returned unchanged")
}

func TestDeploymentAssembler_NoEventResources(t *testing.T) {
	parser := mocks.NewMockDefinitionParser(t)
	dep := testutil.NewDeploymentBuilder("process-only").
		WithResource("a.bpmn", []byte("<definitions/>")).
		Deployment("dep-1")

	parsed, err := newAssembler(parser).Build(context.Background(), dep)
	require.NoError(t, err)
	require.Zero(t, parsed.Len())
	require.Empty(t, parsed.Definitions())
}

func TestDeploymentAssembler_NilDeployment(t *testing.T) {
	_, err := newAssembler(mocks.NewMockDefinitionParser(t)).Build(context.Background(), nil)
	require.ErrorIs(t, err, app.ErrNilDeployment)
}

func TestDeploymentAssembler_ForeignDefinitionNotFound(t *testing.T) {
	dep := testutil.NewDeploymentBuilder("one").WithEvent("a.event", "a").Deployment("dep-1")
	parsed, err := newAssembler(app.NewYAMLDefinitionParser()).Build(context.Background(), dep)
	require.NoError(t, err)

	foreign := domain.NewEventDefinition(&domain.EventModel{Key: "a"}, "a.event")
	_, ok := parsed.ParseOf(foreign)
	require.False(t, ok)
	_, ok = parsed.ResourceOf(foreign)
	require.False(t, ok)
	_, ok = parsed.ModelOf(foreign)
	require.False(t, ok)
}

func TestDeploymentAssembler_DefinitionsStayWithTheirBuild(t *testing.T) {
	assembler := newAssembler(app.NewYAMLDefinitionParser())
	depX := testutil.NewDeploymentBuilder("x").WithEvent("x.event", "x").Deployment("dep-x")
	depY := testutil.NewDeploymentBuilder("y").WithEvent("y.event", "y").Deployment("dep-y")

	parsedX, err := assembler.Build(context.Background(), depX)
	require.NoError(t, err)
	parsedY, err := assembler.Build(context.Background(), depY)
	require.NoError(t, err)

	defX := parsedX.Definitions()[0]
	_, ok := parsedY.ResourceOf(defX)
	require.False(t, ok, "a definition only resolves in the build that produced it")

	res, ok := parsedX.ResourceOf(defX)
	require.True(t, ok)
	require.Equal(t, "x.event", res.Name())
}

func TestDeploymentAssembler_NilParseResult(t *testing.T) {
	parser := mocks.NewMockDefinitionParser(t)
	parser.EXPECT().
		Parse(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).
		Once()

	dep := testutil.NewDeploymentBuilder("nil").
		WithResource("a.event", []byte("{}")).
		Deployment("dep-1")

	parsed, err := newAssembler(parser).Build(context.Background(), dep)
	require.Nil(t, parsed)
	require.ErrorIs(t, err, app.ErrNoParseResult)
	require.Contains(t, err.Error(), "a.event")
}

func TestDeploymentAssembler_Deterministic(t *testing.T) {
	req := testutil.NewDeploymentBuilder("standard").WithStandardEvents().Request()
	assembler := newAssembler(app.NewYAMLDefinitionParser())

	first, err := assembler.Build(context.Background(), domain.NewDeployment("dep-1", req, time.Now()))
	require.NoError(t, err)
	second, err := assembler.Build(context.Background(), domain.NewDeployment("dep-2", req, time.Now()))
	require.NoError(t, err)

	require.Equal(t, testutil.StandardDefinitionKeys(), keys(first.Definitions()))
	require.Equal(t, keys(first.Definitions()), keys(second.Definitions()))
}

func TestDeploymentAssembler_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	dep := testutil.NewDeploymentBuilder("standard").WithStandardEvents().Deployment("dep-1")
	_, err := newAssembler(app.NewYAMLDefinitionParser(), app.WithAssemblerTracer(tp.Tracer("test"))).
		Build(context.Background(), dep)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, tracing.SpanAssemble, spans[0].Name())
	require.Len(t, spans[0].Events(), 1)
	require.Equal(t, tracing.EventResourceSkipped, spans[0].Events()[0].Name)

	attrs := make(map[string]any)
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	require.Equal(t, "dep-1", attrs[tracing.AttrDeploymentID])
	require.Equal(t, int64(3), attrs[tracing.AttrResourceCount])
	require.Equal(t, int64(3), attrs[tracing.AttrDefinitionCount])
}

// TestDeploymentAssembler_Properties checks the assembly invariants for random
// deployments: only classified resources are parsed, definitions keep resource
// then in-resource order, and every definition maps back to its own resource.
func TestDeploymentAssembler_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		resourceCount := rapid.IntRange(1, 8).Draw(t, "resources")

		req := domain.DeploymentRequest{Name: "prop"}
		perResource := make(map[string]int)
		var wantKeys []string
		for i := range resourceCount {
			classified := rapid.Bool().Draw(t, fmt.Sprintf("classified%d", i))
			defs := rapid.IntRange(0, 4).Draw(t, fmt.Sprintf("defs%d", i))

			name := fmt.Sprintf("r%d.bpmn", i)
			if classified {
				name = fmt.Sprintf("r%d.event", i)
				for j := range defs {
					wantKeys = append(wantKeys, fmt.Sprintf("r%d-k%d", i, j))
				}
			}
			perResource[name] = defs
			req.Resources = append(req.Resources, domain.NewResource(name, nil))
		}

		parsedNames := make(map[string]bool)
		parser := parserFunc(func(_ context.Context, src domain.ParseSource, _ domain.Settings) (*domain.ParseResult, error) {
			parsedNames[src.Name] = true
			var keys []string
			for j := range perResource[src.Name] {
				keys = append(keys, fmt.Sprintf("%s-k%d", src.Name[:len(src.Name)-len(".event")], j))
			}
			return fakeResult(src, keys...), nil
		})

		parsed, err := newAssembler(parser).Build(context.Background(), domain.NewDeployment("dep", req, time.Now()))
		if err != nil {
			t.Fatalf("build: %v", err)
		}

		for name := range parsedNames {
			if !domain.DefaultClassifier().IsEventResource(name) {
				t.Fatalf("unclassified resource %s was parsed", name)
			}
		}
		if parsed.Len() != len(wantKeys) {
			t.Fatalf("got %d definitions, want %d", parsed.Len(), len(wantKeys))
		}
		for i, def := range parsed.Definitions() {
			if def.Key() != wantKeys[i] {
				t.Fatalf("definition %d: got key %s, want %s", i, def.Key(), wantKeys[i])
			}
			res, ok := parsed.ResourceOf(def)
			if !ok || res.Name() != def.ResourceName() {
				t.Fatalf("definition %s maps to wrong resource", def.Key())
			}
			parse, ok := parsed.ParseOf(def)
			if !ok || parse.Name() != res.Name() {
				t.Fatalf("definition %s maps to wrong parse result", def.Key())
			}
		}
	})
}

// parserFunc adapts a function to domain.DefinitionParser.
type parserFunc func(context.Context, domain.ParseSource, domain.Settings) (*domain.ParseResult, error)

func (f parserFunc) Parse(ctx context.Context, src domain.ParseSource, settings domain.Settings) (*domain.ParseResult, error) {
	return f(ctx, src, settings)
}
