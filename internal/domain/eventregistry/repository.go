package eventregistry

import (
	"context"
	"fmt"
)

// DeploymentNotFoundError is returned when no deployment matches a lookup.
type DeploymentNotFoundError struct {
	ID   string
	Name string
}

func (e *DeploymentNotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("deployment not found: %s", e.ID)
	}
	return fmt.Sprintf("deployment not found: name=%s", e.Name)
}

// DefinitionNotFoundError is returned when no event definition matches a lookup.
type DefinitionNotFoundError struct {
	ID       string
	Key      string
	TenantID string
}

func (e *DefinitionNotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("event definition not found: %s", e.ID)
	}
	return fmt.Sprintf("event definition not found: key=%s tenant=%q", e.Key, e.TenantID)
}

// DefinitionQuery filters event definitions.
type DefinitionQuery struct {
	// Key restricts results to one definition key. Empty matches all keys.
	Key string

	// TenantID restricts results to one tenant. Empty means the default tenant
	// unless AnyTenant is set.
	TenantID  string
	AnyTenant bool

	// DeploymentID restricts results to one deployment.
	DeploymentID string

	// LatestOnly returns only the highest version per key and tenant.
	LatestOnly bool

	// Limit restricts the number of results. 0 means no limit.
	Limit int
}

// DeploymentRepository persists deployments and their resources.
type DeploymentRepository interface {
	// Save stores a deployment together with all of its resources.
	Save(ctx context.Context, dep *Deployment) error

	// FindByID loads a deployment and its resources.
	// Returns DeploymentNotFoundError if no deployment matches.
	FindByID(ctx context.Context, id string) (*Deployment, error)

	// FindLatestByName returns the most recent deployment with the given name and tenant.
	// Returns DeploymentNotFoundError if none exists.
	FindLatestByName(ctx context.Context, name, tenantID string) (*Deployment, error)

	// Delete removes a deployment and its resources.
	// Returns DeploymentNotFoundError if no deployment matches.
	Delete(ctx context.Context, id string) error
}

// DefinitionRepository persists deployed event definitions.
type DefinitionRepository interface {
	// SaveAll stores definitions atomically. Each definition must have an ID.
	SaveAll(ctx context.Context, defs []*EventDefinition) error

	// FindByID returns DefinitionNotFoundError if no definition matches.
	FindByID(ctx context.Context, id string) (*EventDefinition, error)

	// FindLatestByKey returns the highest version of key for a tenant.
	// Returns DefinitionNotFoundError if none exists.
	FindLatestByKey(ctx context.Context, key, tenantID string) (*EventDefinition, error)

	// LatestVersion returns the highest deployed version of key, 0 if none.
	LatestVersion(ctx context.Context, key, tenantID string) (int, error)

	// List returns definitions matching the query ordered by key, then version.
	List(ctx context.Context, query DefinitionQuery) ([]*EventDefinition, error)

	// DeleteByDeployment removes all definitions of a deployment.
	DeleteByDeployment(ctx context.Context, deploymentID string) error
}

// DeploymentCreator creates and persists a new deployment.
type DeploymentCreator interface {
	CreateDeployment(ctx context.Context, req DeploymentRequest) (*Deployment, error)
}

// ModelConverter serializes an event model to its canonical textual form.
type ModelConverter interface {
	ConvertToJSON(model *EventModel) ([]byte, error)
}
