package eventregistry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/eventregistry/internal/cachemanager"
	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
	"github.com/zjrosen/eventregistry/internal/log"
	"github.com/zjrosen/eventregistry/internal/pubsub"
	"github.com/zjrosen/eventregistry/internal/tracing"
)

// ErrDuplicateDefinitionKey is returned when one deployment defines a key twice.
var ErrDuplicateDefinitionKey = errors.New("deployment contains event definitions with the same key")

// DeploymentEvent is published after a deployment is created or deleted.
type DeploymentEvent struct {
	DeploymentID   string
	DeploymentName string
	TenantID       string
	DefinitionKeys []string

	// Duplicate is set when duplicate filtering returned an existing deployment.
	Duplicate bool
}

// ServiceConfig wires a RegistryService.
type ServiceConfig struct {
	Deployments domain.DeploymentRepository
	Definitions domain.DefinitionRepository
	Classifier  domain.ResourceClassifier
	Parser      domain.DefinitionParser
	Settings    domain.Settings

	// Cache holds the latest definition per key and tenant. Nil disables caching.
	Cache    cachemanager.CacheManager[string, *domain.EventDefinition]
	CacheTTL time.Duration

	// DuplicateFiltering returns the latest deployment of the same name instead of
	// deploying again when the resources are unchanged.
	DuplicateFiltering bool
	DefaultTenantID    string

	Tracer trace.Tracer
}

type latestLookup struct {
	key      string
	tenantID string
}

// RegistryService deploys event definitions and answers queries about them.
type RegistryService struct {
	deployments        domain.DeploymentRepository
	definitions        domain.DefinitionRepository
	assembler          *DeploymentAssembler
	parser             domain.DefinitionParser
	settings           domain.Settings
	converter          *JSONConverter
	latest             *cachemanager.ReadThroughCache[string, *domain.EventDefinition, latestLookup]
	cacheTTL           time.Duration
	duplicateFiltering bool
	defaultTenantID    string
	broker             *pubsub.Broker[DeploymentEvent]
	tracer             trace.Tracer
	now                func() time.Time
}

// NewRegistryService creates a service from cfg.
func NewRegistryService(cfg ServiceConfig) (*RegistryService, error) {
	if cfg.Deployments == nil || cfg.Definitions == nil {
		return nil, fmt.Errorf("registry service requires deployment and definition repositories")
	}
	if cfg.Parser == nil {
		return nil, fmt.Errorf("registry service requires a definition parser")
	}

	classifier := cfg.Classifier
	if classifier == nil {
		classifier = domain.DefaultClassifier()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.NoopProvider().Tracer()
	}

	s := &RegistryService{
		deployments:        cfg.Deployments,
		definitions:        cfg.Definitions,
		assembler:          NewDeploymentAssembler(classifier, cfg.Parser, cfg.Settings, WithAssemblerTracer(tracer)),
		parser:             cfg.Parser,
		settings:           cfg.Settings,
		converter:          NewJSONConverter(),
		cacheTTL:           cfg.CacheTTL,
		duplicateFiltering: cfg.DuplicateFiltering,
		defaultTenantID:    cfg.DefaultTenantID,
		broker:             pubsub.NewBroker[DeploymentEvent](),
		tracer:             tracer,
		now:                time.Now,
	}
	s.latest = cachemanager.NewReadThroughCache(cfg.Cache, s.loadLatest, cfg.Cache == nil)
	return s, nil
}

var (
	_ domain.DeploymentCreator           = (*RegistryService)(nil)
	_ pubsub.Subscriber[DeploymentEvent] = (*RegistryService)(nil)
)

// CreateEventModelBuilder returns a builder that deploys through this service.
func (s *RegistryService) CreateEventModelBuilder() *domain.EventModelBuilder {
	return domain.NewEventModelBuilder(s, s.converter)
}

// CreateDeployment parses, versions and persists a deployment.
//
// Parsing happens before anything is stored, so a parse error leaves no trace.
// If the definitions cannot be stored the deployment row is removed again.
func (s *RegistryService) CreateDeployment(ctx context.Context, req domain.DeploymentRequest) (*domain.Deployment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.TenantID == "" {
		req.TenantID = s.defaultTenantID
	}

	ctx, span := s.tracer.Start(ctx, tracing.SpanCreateDeployment, trace.WithAttributes(
		attribute.String(tracing.AttrDeploymentName, req.Name),
		attribute.String(tracing.AttrTenantID, req.TenantID),
		attribute.Int(tracing.AttrResourceCount, len(req.Resources)),
	))
	defer span.End()

	if s.duplicateFiltering {
		existing, err := s.findDuplicate(ctx, req)
		if err != nil {
			tracing.RecordError(span, err)
			return nil, err
		}
		if existing != nil {
			log.Info(log.CatDeploy, "skipping duplicate deployment",
				"name", req.Name,
				"existing", existing.ID())
			span.AddEvent(tracing.EventDuplicateDetected)
			span.SetAttributes(attribute.Bool(tracing.AttrDuplicate, true))
			s.broker.Publish(pubsub.DeployedEvent, DeploymentEvent{
				DeploymentID:   existing.ID(),
				DeploymentName: existing.Name(),
				TenantID:       existing.TenantID(),
				Duplicate:      true,
			})
			return existing, nil
		}
	}

	dep := domain.NewDeployment(uuid.NewString(), req, s.now().UTC())
	span.SetAttributes(attribute.String(tracing.AttrDeploymentID, dep.ID()))

	parsed, err := s.assembler.Build(ctx, dep)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	defs, err := s.prepareDefinitions(ctx, dep, parsed)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	if err := s.deployments.Save(ctx, dep); err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("save deployment: %w", err)
	}
	if err := s.definitions.SaveAll(ctx, defs); err != nil {
		if delErr := s.deployments.Delete(ctx, dep.ID()); delErr != nil {
			log.ErrorErr(log.CatDeploy, "failed to remove deployment after definition save error", delErr,
				"deployment", dep.ID())
		}
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("save event definitions: %w", err)
	}

	keys := make([]string, 0, len(defs))
	for _, def := range defs {
		keys = append(keys, def.Key())
	}
	s.invalidate(ctx, dep.TenantID(), keys)

	log.Info(log.CatDeploy, "deployed",
		"deployment", dep.ID(),
		"name", dep.Name(),
		"definitions", len(defs))
	s.broker.Publish(pubsub.DeployedEvent, DeploymentEvent{
		DeploymentID:   dep.ID(),
		DeploymentName: dep.Name(),
		TenantID:       dep.TenantID(),
		DefinitionKeys: keys,
	})
	return dep, nil
}

// findDuplicate returns the latest deployment named like req when its resources
// are identical, nil otherwise.
func (s *RegistryService) findDuplicate(ctx context.Context, req domain.DeploymentRequest) (*domain.Deployment, error) {
	if req.Name == "" {
		return nil, nil
	}

	latest, err := s.deployments.FindLatestByName(ctx, req.Name, req.TenantID)
	if err != nil {
		var notFound *domain.DeploymentNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find latest deployment %s: %w", req.Name, err)
	}

	if !sameResources(latest.Resources(), req.Resources) {
		return nil, nil
	}
	return latest, nil
}

// sameResources compares names and content in order.
func sameResources(a, b []*domain.Resource) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name() != b[i].Name() || !bytes.Equal(a[i].Bytes(), b[i].Bytes()) {
			return false
		}
	}
	return true
}

// prepareDefinitions assigns ids, versions and deployment data to every parsed
// definition. A key's version is one above its latest deployed version.
func (s *RegistryService) prepareDefinitions(ctx context.Context, dep *domain.Deployment, parsed *domain.ParsedDeployment) ([]*domain.EventDefinition, error) {
	defs := parsed.Definitions()
	seen := make(map[string]string, len(defs))

	for _, def := range defs {
		res, _ := parsed.ResourceOf(def)
		if other, dup := seen[def.Key()]; dup {
			return nil, fmt.Errorf("%w: %s in %s and %s", ErrDuplicateDefinitionKey, def.Key(), other, res.Name())
		}
		seen[def.Key()] = res.Name()

		latest, err := s.definitions.LatestVersion(ctx, def.Key(), dep.TenantID())
		if err != nil {
			return nil, fmt.Errorf("latest version of %s: %w", def.Key(), err)
		}

		def.SetID(uuid.NewString())
		def.SetVersion(latest + 1)
		def.SetTenantID(dep.TenantID())
		def.SetDeploymentID(dep.ID())
		if def.Category() == "" {
			def.SetCategory(dep.Category())
		}
	}
	return defs, nil
}

// GetDeployment loads a deployment with its resources.
func (s *RegistryService) GetDeployment(ctx context.Context, id string) (*domain.Deployment, error) {
	return s.deployments.FindByID(ctx, id)
}

// GetDefinition loads a definition by id.
func (s *RegistryService) GetDefinition(ctx context.Context, id string) (*domain.EventDefinition, error) {
	return s.definitions.FindByID(ctx, id)
}

// GetLatestDefinitionByKey returns the highest version of key. An empty tenant
// means the configured default tenant.
func (s *RegistryService) GetLatestDefinitionByKey(ctx context.Context, key, tenantID string) (*domain.EventDefinition, error) {
	if tenantID == "" {
		tenantID = s.defaultTenantID
	}
	return s.latest.Get(ctx, latestCacheKey(tenantID, key), latestLookup{key: key, tenantID: tenantID}, s.cacheTTL)
}

func (s *RegistryService) loadLatest(ctx context.Context, in latestLookup) (*domain.EventDefinition, error) {
	return s.definitions.FindLatestByKey(ctx, in.key, in.tenantID)
}

// ListDefinitions returns definitions matching query.
func (s *RegistryService) ListDefinitions(ctx context.Context, query domain.DefinitionQuery) ([]*domain.EventDefinition, error) {
	if query.TenantID == "" && !query.AnyTenant {
		query.TenantID = s.defaultTenantID
	}
	return s.definitions.List(ctx, query)
}

// GetEventModel parses the stored resource of a definition and returns its model.
func (s *RegistryService) GetEventModel(ctx context.Context, definitionID string) (*domain.EventModel, error) {
	def, err := s.definitions.FindByID(ctx, definitionID)
	if err != nil {
		return nil, err
	}
	dep, err := s.deployments.FindByID(ctx, def.DeploymentID())
	if err != nil {
		return nil, fmt.Errorf("load deployment of %s: %w", definitionID, err)
	}
	res, ok := dep.Resource(def.ResourceName())
	if !ok {
		return nil, fmt.Errorf("resource %s missing from deployment %s", def.ResourceName(), dep.ID())
	}

	parse, err := s.parser.Parse(ctx, domain.ParseSource{
		Bytes:          res.Bytes(),
		SourceSystemID: res.Name(),
		Name:           res.Name(),
		Deployment:     dep,
	}, s.settings)
	if err != nil {
		return nil, err
	}
	for _, parsed := range parse.Definitions() {
		if parsed.Key() == def.Key() {
			return parsed.Model(), nil
		}
	}
	return nil, fmt.Errorf("event definition %s not found in resource %s", def.Key(), res.Name())
}

// DeleteDeployment removes a deployment and its definitions.
func (s *RegistryService) DeleteDeployment(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, tracing.SpanDeleteDeployment, trace.WithAttributes(
		attribute.String(tracing.AttrDeploymentID, id),
	))
	defer span.End()

	dep, err := s.deployments.FindByID(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}
	defs, err := s.definitions.List(ctx, domain.DefinitionQuery{DeploymentID: id, AnyTenant: true})
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("list definitions of %s: %w", id, err)
	}

	if err := s.definitions.DeleteByDeployment(ctx, id); err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("delete definitions of %s: %w", id, err)
	}
	if err := s.deployments.Delete(ctx, id); err != nil {
		tracing.RecordError(span, err)
		return err
	}

	keys := make([]string, 0, len(defs))
	for _, def := range defs {
		keys = append(keys, def.Key())
	}
	s.invalidate(ctx, dep.TenantID(), keys)

	log.Info(log.CatDeploy, "deleted deployment", "deployment", id, "definitions", len(defs))
	s.broker.Publish(pubsub.DeletedEvent, DeploymentEvent{
		DeploymentID:   dep.ID(),
		DeploymentName: dep.Name(),
		TenantID:       dep.TenantID(),
		DefinitionKeys: keys,
	})
	return nil
}

// Subscribe streams deployment events until ctx is cancelled.
func (s *RegistryService) Subscribe(ctx context.Context) <-chan pubsub.Event[DeploymentEvent] {
	return s.broker.Subscribe(ctx)
}

// Close stops event delivery.
func (s *RegistryService) Close() {
	s.broker.Close()
}

func (s *RegistryService) invalidate(ctx context.Context, tenantID string, keys []string) {
	cacheKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		cacheKeys = append(cacheKeys, latestCacheKey(tenantID, key))
	}
	if err := s.latest.Invalidate(ctx, cacheKeys...); err != nil {
		log.ErrorErr(log.CatCache, "failed to invalidate definitions", err, "keys", keys)
	}
}

func latestCacheKey(tenantID, key string) string {
	return tenantID + "/" + key
}
