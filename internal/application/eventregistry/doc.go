// Package eventregistry implements the application layer of the event registry.
//
// It connects the pure domain (internal/domain/eventregistry) to parsing,
// persistence, caching and tracing:
//   - YAMLDefinitionParser reads event-definition resources (JSON or YAML)
//   - JSONConverter writes event models in their canonical JSON form
//   - DeploymentAssembler turns a deployment into a ParsedDeployment
//   - RegistryService deploys, versions, caches and queries definitions
//   - LoadDeploymentFromFS reads a resource directory into a deployment request
//
// # Import Aliasing
//
// This package has the same name as the domain package. Import the domain
// with an alias:
//
//	import (
//	    domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
//	    appreg "github.com/zjrosen/eventregistry/internal/application/eventregistry"
//	)
package eventregistry
