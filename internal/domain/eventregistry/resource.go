package eventregistry

import (
	"errors"
	"time"
)

// Deployment request errors
var (
	ErrNoResources           = errors.New("deployment must contain at least one resource")
	ErrEmptyResourceName     = errors.New("resource name cannot be empty")
	ErrDuplicateResourceName = errors.New("duplicate resource name in deployment")
)

// Resource is a named byte blob inside a deployment.
// Resources are immutable once created.
type Resource struct {
	name  string
	bytes []byte
}

// NewResource creates a resource holding a private copy of data.
func NewResource(name string, data []byte) *Resource {
	return &Resource{
		name:  name,
		bytes: append([]byte(nil), data...),
	}
}

// Name returns the resource name (e.g., "orders/order-created.event").
func (r *Resource) Name() string {
	return r.name
}

// Bytes returns a copy of the resource content.
func (r *Resource) Bytes() []byte {
	return append([]byte(nil), r.bytes...)
}

// Size returns the content length in bytes.
func (r *Resource) Size() int {
	return len(r.bytes)
}

// DeploymentRequest carries the content of a deployment that has not been persisted yet.
type DeploymentRequest struct {
	Name               string
	Category           string
	ParentDeploymentID string
	TenantID           string
	Resources          []*Resource
}

// Validate checks that the request has at least one resource and that
// resource names are present and unique.
func (r DeploymentRequest) Validate() error {
	if len(r.Resources) == 0 {
		return ErrNoResources
	}
	seen := make(map[string]bool, len(r.Resources))
	for _, res := range r.Resources {
		if res == nil || res.Name() == "" {
			return ErrEmptyResourceName
		}
		if seen[res.Name()] {
			return ErrDuplicateResourceName
		}
		seen[res.Name()] = true
	}
	return nil
}

// Deployment is a named bundle of resources submitted together.
type Deployment struct {
	id                 string
	name               string
	category           string
	parentDeploymentID string
	tenantID           string
	deployedAt         time.Time
	resources          []*Resource
}

// NewDeployment creates a deployment from a request. Resources keep the request order.
func NewDeployment(id string, req DeploymentRequest, deployedAt time.Time) *Deployment {
	resources := make([]*Resource, len(req.Resources))
	copy(resources, req.Resources)

	return &Deployment{
		id:                 id,
		name:               req.Name,
		category:           req.Category,
		parentDeploymentID: req.ParentDeploymentID,
		tenantID:           req.TenantID,
		deployedAt:         deployedAt,
		resources:          resources,
	}
}

// ID returns the deployment identifier.
func (d *Deployment) ID() string {
	return d.id
}

// Name returns the deployment name.
func (d *Deployment) Name() string {
	return d.name
}

// Category returns the deployment category.
func (d *Deployment) Category() string {
	return d.category
}

// ParentDeploymentID returns the id of the deployment this one belongs to, if any.
func (d *Deployment) ParentDeploymentID() string {
	return d.parentDeploymentID
}

// TenantID returns the owning tenant, empty for the default tenant.
func (d *Deployment) TenantID() string {
	return d.tenantID
}

// DeployedAt returns when the deployment was created.
func (d *Deployment) DeployedAt() time.Time {
	return d.deployedAt
}

// Resources returns the resources in insertion order.
func (d *Deployment) Resources() []*Resource {
	return d.resources
}

// Resource returns the resource with the given name.
func (d *Deployment) Resource(name string) (*Resource, bool) {
	for _, r := range d.resources {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}
