package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/eventregistry/internal/presentation"
)

var deploymentGetCmd = &cobra.Command{
	Use:   "deployment:get <deployment-id>",
	Short: "Show a deployment and its resources",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		dep, err := reg.service.GetDeployment(commandContext(cmd), args[0])
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatDeployment(
			presentation.FromDomainDeployment(dep, reg.classifier))
	},
}

var deploymentDeleteCmd = &cobra.Command{
	Use:   "deployment:delete <deployment-id>",
	Short: "Delete a deployment and its event definitions",
	Long: `Delete a deployment, its resources and every event definition it registered.

The previous version of each removed definition becomes the latest again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		if err := reg.service.DeleteDeployment(commandContext(cmd), args[0]); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted deployment %s\n", args[0])
		return err
	},
}

var modelGetCmd = &cobra.Command{
	Use:   "model:get <definition-id>",
	Short: "Show the event model of a deployed definition",
	Long: `Parse the stored resource of a deployed definition and print its event
model in canonical JSON form.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		model, err := reg.service.GetEventModel(commandContext(cmd), args[0])
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatEventModel(model)
	},
}

func init() {
	rootCmd.AddCommand(deploymentGetCmd)
	rootCmd.AddCommand(deploymentDeleteCmd)
	rootCmd.AddCommand(modelGetCmd)
}
