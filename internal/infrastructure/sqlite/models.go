package sqlite

import (
	"time"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
)

// DeploymentModel represents a row of the deployments table.
type DeploymentModel struct {
	ID                 string
	Name               string
	Category           string
	ParentDeploymentID string
	TenantID           string
	DeployedAt         int64 // Unix milliseconds
}

// ResourceModel represents a row of the deployment_resources table.
type ResourceModel struct {
	DeploymentID string
	Position     int
	Name         string
	Content      []byte
}

// DefinitionModel represents a row of the event_definitions table.
type DefinitionModel struct {
	ID           string
	Key          string
	Name         string
	Category     string
	Version      int
	TenantID     string
	DeploymentID string
	ResourceName string
}

func toDeploymentModel(d *domain.Deployment) *DeploymentModel {
	return &DeploymentModel{
		ID:                 d.ID(),
		Name:               d.Name(),
		Category:           d.Category(),
		ParentDeploymentID: d.ParentDeploymentID(),
		TenantID:           d.TenantID(),
		DeployedAt:         d.DeployedAt().UnixMilli(),
	}
}

func toResourceModels(d *domain.Deployment) []ResourceModel {
	resources := d.Resources()
	models := make([]ResourceModel, len(resources))
	for i, r := range resources {
		models[i] = ResourceModel{
			DeploymentID: d.ID(),
			Position:     i,
			Name:         r.Name(),
			Content:      r.Bytes(),
		}
	}
	return models
}

// toDomain rebuilds the deployment. resources must be in position order.
func (m *DeploymentModel) toDomain(resources []ResourceModel) *domain.Deployment {
	req := domain.DeploymentRequest{
		Name:               m.Name,
		Category:           m.Category,
		ParentDeploymentID: m.ParentDeploymentID,
		TenantID:           m.TenantID,
		Resources:          make([]*domain.Resource, len(resources)),
	}
	for i, r := range resources {
		req.Resources[i] = domain.NewResource(r.Name, r.Content)
	}
	return domain.NewDeployment(m.ID, req, time.UnixMilli(m.DeployedAt).UTC())
}

func toDefinitionModel(d *domain.EventDefinition) *DefinitionModel {
	return &DefinitionModel{
		ID:           d.ID(),
		Key:          d.Key(),
		Name:         d.Name(),
		Category:     d.Category(),
		Version:      d.Version(),
		TenantID:     d.TenantID(),
		DeploymentID: d.DeploymentID(),
		ResourceName: d.ResourceName(),
	}
}

func (m *DefinitionModel) toDomain() *domain.EventDefinition {
	return domain.RestoreEventDefinition(
		m.ID, m.Key, m.Name, m.Category, m.Version,
		m.TenantID, m.DeploymentID, m.ResourceName,
	)
}
