package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
)

// DeploymentBuilder accumulates resources for a deployment fixture.
type DeploymentBuilder struct {
	req domain.DeploymentRequest
}

// NewDeploymentBuilder creates a builder for a deployment with the given name.
func NewDeploymentBuilder(name string) *DeploymentBuilder {
	return &DeploymentBuilder{req: domain.DeploymentRequest{Name: name}}
}

func (b *DeploymentBuilder) Category(category string) *DeploymentBuilder {
	b.req.Category = category
	return b
}

func (b *DeploymentBuilder) TenantID(tenantID string) *DeploymentBuilder {
	b.req.TenantID = tenantID
	return b
}

func (b *DeploymentBuilder) ParentDeploymentID(id string) *DeploymentBuilder {
	b.req.ParentDeploymentID = id
	return b
}

// WithResource appends a resource with raw content.
func (b *DeploymentBuilder) WithResource(name string, data []byte) *DeploymentBuilder {
	b.req.Resources = append(b.req.Resources, domain.NewResource(name, data))
	return b
}

// WithEvent appends a resource holding a single event definition.
func (b *DeploymentBuilder) WithEvent(resourceName, key string, opts ...EventOption) *DeploymentBuilder {
	return b.WithEvents(resourceName, Event(key, opts...))
}

// WithEvents appends a resource holding the given event definitions.
func (b *DeploymentBuilder) WithEvents(resourceName string, events ...EventFixture) *DeploymentBuilder {
	return b.WithResource(resourceName, EventJSON(events...))
}

// Request returns the accumulated deployment request.
func (b *DeploymentBuilder) Request() domain.DeploymentRequest {
	req := b.req
	req.Resources = append([]*domain.Resource(nil), b.req.Resources...)
	return req
}

// Deployment returns an unsaved domain deployment.
func (b *DeploymentBuilder) Deployment(id string) *domain.Deployment {
	return domain.NewDeployment(id, b.Request(), time.Now().UTC())
}

// Save persists the deployment with the given id through repo.
func (b *DeploymentBuilder) Save(t *testing.T, repo domain.DeploymentRepository, id string) *domain.Deployment {
	t.Helper()
	dep := b.Deployment(id)
	require.NoError(t, repo.Save(context.Background(), dep))
	return dep
}
