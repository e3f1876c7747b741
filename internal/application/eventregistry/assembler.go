package eventregistry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
	"github.com/zjrosen/eventregistry/internal/log"
	"github.com/zjrosen/eventregistry/internal/tracing"
)

// DeploymentAssembler errors
var (
	ErrNilDeployment = errors.New("deployment is nil")
	ErrNoParseResult = errors.New("definition parser returned no parse result")
)

// DeploymentAssembler parses the event-definition resources of a deployment into
// a ParsedDeployment. It holds no mutable state and may be shared.
type DeploymentAssembler struct {
	classifier domain.ResourceClassifier
	parser     domain.DefinitionParser
	settings   domain.Settings
	tracer     trace.Tracer
}

// AssemblerOption configures a DeploymentAssembler.
type AssemblerOption func(*DeploymentAssembler)

// WithAssemblerTracer records a span per Build.
func WithAssemblerTracer(tracer trace.Tracer) AssemblerOption {
	return func(a *DeploymentAssembler) {
		a.tracer = tracer
	}
}

// NewDeploymentAssembler creates an assembler.
func NewDeploymentAssembler(classifier domain.ResourceClassifier, parser domain.DefinitionParser, settings domain.Settings, opts ...AssemblerOption) *DeploymentAssembler {
	a := &DeploymentAssembler{
		classifier: classifier,
		parser:     parser,
		settings:   settings,
		tracer:     tracing.NoopProvider().Tracer(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Build parses every classified resource of dep in resource order. Resources the
// classifier rejects are skipped without being parsed. The first parse error
// aborts the build and is returned as is.
func (a *DeploymentAssembler) Build(ctx context.Context, dep *domain.Deployment) (*domain.ParsedDeployment, error) {
	if dep == nil {
		return nil, ErrNilDeployment
	}

	ctx, span := a.tracer.Start(ctx, tracing.SpanAssemble, trace.WithAttributes(
		attribute.String(tracing.AttrDeploymentID, dep.ID()),
		attribute.String(tracing.AttrDeploymentName, dep.Name()),
		attribute.Int(tracing.AttrResourceCount, len(dep.Resources())),
	))
	defer span.End()

	builder := domain.NewParsedDeploymentBuilder(dep)
	for _, res := range dep.Resources() {
		if !a.classifier.IsEventResource(res.Name()) {
			span.AddEvent(tracing.EventResourceSkipped, trace.WithAttributes(
				attribute.String(tracing.AttrResourceName, res.Name()),
			))
			continue
		}

		log.Debug(log.CatDeploy, "processing event definition resource",
			"deployment", dep.Name(),
			"resource", res.Name())

		parse, err := a.parser.Parse(ctx, domain.ParseSource{
			Bytes:          res.Bytes(),
			SourceSystemID: res.Name(),
			Name:           res.Name(),
			Deployment:     dep,
		}, a.settings)
		if err != nil {
			tracing.RecordError(span, err)
			return nil, err
		}
		if parse == nil {
			err := fmt.Errorf("%w: %s", ErrNoParseResult, res.Name())
			tracing.RecordError(span, err)
			return nil, err
		}

		for _, warning := range parse.Warnings() {
			log.Warn(log.CatParse, warning, "resource", res.Name())
		}
		for _, def := range parse.Definitions() {
			if _, err := builder.Add(res, parse, def); err != nil {
				return nil, err
			}
		}
	}

	parsed := builder.Build()
	span.SetAttributes(attribute.Int(tracing.AttrDefinitionCount, parsed.Len()))
	return parsed, nil
}
