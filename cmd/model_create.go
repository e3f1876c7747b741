package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
	"github.com/zjrosen/eventregistry/internal/log"
	"github.com/zjrosen/eventregistry/internal/presentation"
	"github.com/zjrosen/eventregistry/internal/tracing"
)

// modelFlags holds the model:create flag values.
type modelFlags struct {
	key            string
	name           string
	resourceName   string
	deploymentName string
	category       string
	parent         string
	tenant         string
	inbound        []string
	outbound       []string
	correlation    []string
	payload        []string
	deploy         bool
}

var modelOpts modelFlags

var modelCreateCmd = &cobra.Command{
	Use:   "model:create",
	Short: "Build an event model and optionally deploy it",
	Long: `Build a single event model from flags and print it as JSON.

Fields are given as name:type. Every correlation parameter also becomes a
payload field of the same type. With --deploy the model is stored as a new
deployment holding one resource named by --resource.

Examples:
  # Print a model
  eventreg model:create --key orderCreated --payload amount:double

  # Deploy it
  eventreg model:create --key orderCreated --resource orders.event \
    --correlation orderId:string --payload amount:double \
    --inbound orders --deploy`,
	Args: cobra.NoArgs,
	RunE: runModelCreate,
}

func init() {
	f := modelCreateCmd.Flags()
	f.StringVarP(&modelOpts.key, "key", "k", "", "Event definition key (required)")
	f.StringVar(&modelOpts.name, "name", "", "Event name")
	f.StringVarP(&modelOpts.resourceName, "resource", "r", "", "Resource name (required with --deploy)")
	f.StringVar(&modelOpts.deploymentName, "deployment-name", "", "Deployment name")
	f.StringVar(&modelOpts.category, "category", "", "Deployment category")
	f.StringVar(&modelOpts.parent, "parent", "", "Parent deployment id")
	f.StringVarP(&modelOpts.tenant, "tenant", "t", "", "Tenant id")
	f.StringArrayVar(&modelOpts.inbound, "inbound", nil, "Inbound channel key (repeatable)")
	f.StringArrayVar(&modelOpts.outbound, "outbound", nil, "Outbound channel key (repeatable)")
	f.StringArrayVar(&modelOpts.correlation, "correlation", nil, "Correlation parameter name:type (repeatable)")
	f.StringArrayVarP(&modelOpts.payload, "payload", "p", nil, "Payload field name:type (repeatable)")
	f.BoolVar(&modelOpts.deploy, "deploy", false, "Deploy the model")
	rootCmd.AddCommand(modelCreateCmd)
}

func runModelCreate(cmd *cobra.Command, _ []string) error {
	if !modelOpts.deploy {
		b, err := applyModelFlags(domain.NewEventModelBuilder(nil, nil), modelOpts)
		if err != nil {
			return err
		}
		model, err := b.CreateEventModel()
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatEventModel(model)
	}

	reg, err := openRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	b, err := applyModelFlags(reg.service.CreateEventModelBuilder(), modelOpts)
	if err != nil {
		return err
	}

	ctx, span := reg.tracer.Tracer().Start(commandContext(cmd), tracing.SpanBuilderDeploy, trace.WithAttributes(
		attribute.String(tracing.AttrDefinitionKey, modelOpts.key),
		attribute.String(tracing.AttrResourceName, modelOpts.resourceName),
	))
	defer span.End()

	dep, err := b.Deploy(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}
	log.Debug(log.CatModel, "deployed event model",
		"key", modelOpts.key,
		"resource", modelOpts.resourceName,
		"deployment", dep.ID())
	span.SetAttributes(attribute.String(tracing.AttrDeploymentID, dep.ID()))
	return presentation.NewFormatter(cmd.OutOrStdout()).FormatDeployment(
		presentation.FromDomainDeployment(dep, reg.classifier))
}

// applyModelFlags copies flag values onto b. Channel keys are only set when
// given so an absent flag leaves them unset.
func applyModelFlags(b *domain.EventModelBuilder, opts modelFlags) (*domain.EventModelBuilder, error) {
	b.Key(opts.key).
		Name(opts.name).
		ResourceName(opts.resourceName).
		DeploymentName(opts.deploymentName).
		Category(opts.category).
		ParentDeploymentID(opts.parent).
		TenantID(opts.tenant)
	if len(opts.inbound) > 0 {
		b.InboundChannelKeys(opts.inbound...)
	}
	if len(opts.outbound) > 0 {
		b.OutboundChannelKeys(opts.outbound...)
	}

	for _, field := range opts.correlation {
		name, fieldType, err := parseField(field)
		if err != nil {
			return nil, fmt.Errorf("--correlation: %w", err)
		}
		b.CorrelationParameter(name, fieldType)
	}
	for _, field := range opts.payload {
		name, fieldType, err := parseField(field)
		if err != nil {
			return nil, fmt.Errorf("--payload: %w", err)
		}
		b.Payload(name, fieldType)
	}
	return b, nil
}

// parseField splits "name:type".
func parseField(s string) (name, fieldType string, err error) {
	name, fieldType, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	fieldType = strings.TrimSpace(fieldType)
	if !ok || name == "" || fieldType == "" {
		return "", "", fmt.Errorf("expected name:type, got %q", s)
	}
	return name, fieldType, nil
}
