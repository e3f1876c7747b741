package cmd

import (
	"context"

	"github.com/spf13/cobra"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
	"github.com/zjrosen/eventregistry/internal/presentation"
)

var (
	defKey        string
	defTenant     string
	defAnyTenant  bool
	defDeployment string
	defLatest     bool
	defLimit      int
)

var definitionsListCmd = &cobra.Command{
	Use:   "definitions:list",
	Short: "List deployed event definitions",
	Long: `List deployed event definitions as JSON, ordered by key, tenant and version.

Without --tenant only definitions of the default tenant are listed.

Examples:
  # List every version of every definition
  eventreg definitions:list

  # Latest version of each definition
  eventreg definitions:list --latest

  # All versions of one key across tenants
  eventreg definitions:list --key orderCreated --any-tenant

  # Parse specific fields with jq
  eventreg definitions:list --latest | jq '.[].key'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		defs, err := reg.service.ListDefinitions(commandContext(cmd), domain.DefinitionQuery{
			Key:          defKey,
			TenantID:     defTenant,
			AnyTenant:    defAnyTenant,
			DeploymentID: defDeployment,
			LatestOnly:   defLatest,
			Limit:        defLimit,
		})
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatDefinitions(presentation.FromDomainDefinitions(defs))
	},
}

var definitionGetCmd = &cobra.Command{
	Use:   "definitions:get <key>",
	Short: "Show the latest version of an event definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		def, err := reg.service.GetLatestDefinitionByKey(commandContext(cmd), args[0], defTenant)
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatDefinitions(
			[]presentation.DefinitionDTO{presentation.FromDomainDefinition(def)})
	},
}

func init() {
	definitionsListCmd.Flags().StringVarP(&defKey, "key", "k", "", "Filter by definition key")
	definitionsListCmd.Flags().StringVarP(&defTenant, "tenant", "t", "", "Filter by tenant (default: registry.default_tenant_id)")
	definitionsListCmd.Flags().BoolVar(&defAnyTenant, "any-tenant", false, "Include every tenant")
	definitionsListCmd.Flags().StringVar(&defDeployment, "deployment", "", "Filter by deployment id")
	definitionsListCmd.Flags().BoolVarP(&defLatest, "latest", "l", false, "Only the latest version of each key")
	definitionsListCmd.Flags().IntVar(&defLimit, "limit", 0, "Maximum number of results (0: no limit)")
	rootCmd.AddCommand(definitionsListCmd)

	definitionGetCmd.Flags().StringVarP(&defTenant, "tenant", "t", "", "Tenant id (default: registry.default_tenant_id)")
	rootCmd.AddCommand(definitionGetCmd)
}

// commandContext returns the command's context, or a background context when
// the command runs outside ExecuteContext.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
