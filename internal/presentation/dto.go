package presentation

import (
	"time"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
)

// DefinitionDTO represents a deployed event definition for presentation
type DefinitionDTO struct {
	ID           string `json:"id"`
	Key          string `json:"key"`
	Name         string `json:"name,omitempty"`
	Category     string `json:"category,omitempty"`
	Version      int    `json:"version"`
	TenantID     string `json:"tenant_id,omitempty"`
	DeploymentID string `json:"deployment_id"`
	ResourceName string `json:"resource_name"`
}

// ResourceDTO represents a deployment resource without its content
type ResourceDTO struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Event bool   `json:"event"` // classified as an event-definition resource
}

// DeploymentDTO represents a deployment for presentation
type DeploymentDTO struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name,omitempty"`
	Category           string        `json:"category,omitempty"`
	ParentDeploymentID string        `json:"parent_deployment_id,omitempty"`
	TenantID           string        `json:"tenant_id,omitempty"`
	DeployedAt         time.Time     `json:"deployed_at"`
	Resources          []ResourceDTO `json:"resources"`
}

// FromDomainDefinition converts a domain definition to a DTO
func FromDomainDefinition(def *domain.EventDefinition) DefinitionDTO {
	return DefinitionDTO{
		ID:           def.ID(),
		Key:          def.Key(),
		Name:         def.Name(),
		Category:     def.Category(),
		Version:      def.Version(),
		TenantID:     def.TenantID(),
		DeploymentID: def.DeploymentID(),
		ResourceName: def.ResourceName(),
	}
}

// FromDomainDefinitions converts a slice of domain definitions to DTOs
func FromDomainDefinitions(defs []*domain.EventDefinition) []DefinitionDTO {
	dtos := make([]DefinitionDTO, len(defs))
	for i, def := range defs {
		dtos[i] = FromDomainDefinition(def)
	}
	return dtos
}

// FromDomainDeployment converts a deployment to a DTO. classifier marks which
// resources are event definitions; nil marks none.
func FromDomainDeployment(dep *domain.Deployment, classifier domain.ResourceClassifier) DeploymentDTO {
	resources := make([]ResourceDTO, 0, len(dep.Resources()))
	for _, res := range dep.Resources() {
		resources = append(resources, ResourceDTO{
			Name:  res.Name(),
			Size:  res.Size(),
			Event: classifier != nil && classifier.IsEventResource(res.Name()),
		})
	}

	return DeploymentDTO{
		ID:                 dep.ID(),
		Name:               dep.Name(),
		Category:           dep.Category(),
		ParentDeploymentID: dep.ParentDeploymentID(),
		TenantID:           dep.TenantID(),
		DeployedAt:         dep.DeployedAt(),
		Resources:          resources,
	}
}
