package tracing

import (
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrDeploymentID    = "deployment.id"
	AttrDeploymentName  = "deployment.name"
	AttrTenantID        = "deployment.tenant_id"
	AttrResourceCount   = "deployment.resource_count"
	AttrResourceName    = "resource.name"
	AttrDefinitionKey   = "definition.key"
	AttrDefinitionCount = "definition.count"
	AttrDuplicate       = "deployment.duplicate"

	AttrErrorMessage = "error.message"
)

// Span names.
const (
	SpanAssemble         = "registry.assemble"
	SpanParseResource    = "registry.parse_resource"
	SpanCreateDeployment = "registry.create_deployment"
	SpanDeleteDeployment = "registry.delete_deployment"
	SpanBuilderDeploy    = "registry.builder_deploy"
)

// Event names.
const (
	EventResourceSkipped   = "resource.skipped"
	EventDuplicateDetected = "deployment.duplicate_detected"
)

// RecordError marks span as failed. A nil err is ignored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
