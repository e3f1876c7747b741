package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	app "github.com/zjrosen/eventregistry/internal/application/eventregistry"
	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
	"github.com/zjrosen/eventregistry/internal/log"
	"github.com/zjrosen/eventregistry/internal/presentation"
	"github.com/zjrosen/eventregistry/internal/pubsub"
	"github.com/zjrosen/eventregistry/internal/watcher"
)

var (
	deployName     string
	deployTenant   string
	deployCategory string
	deployParent   string
	deployWatch    bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy <dir>",
	Short: "Deploy every file below a directory",
	Long: `Deploy every file below <dir> as one deployment and register the event
definitions it contains.

Files are added in lexical path order and named by their path relative to
<dir>. Hidden files and directories are skipped. When duplicate filtering is
enabled, redeploying an unchanged directory returns the existing deployment.

With --watch the directory is redeployed whenever an event-definition file
below it changes, until interrupted. Each redeploy is reported on stderr,
including unchanged redeploys skipped by duplicate filtering.

Examples:
  # Deploy a directory, named after the directory
  eventreg deploy ./events

  # Deploy for a tenant under an explicit name
  eventreg deploy ./events --name orders --tenant acme

  # Redeploy on every change
  eventreg deploy ./events --watch

  # Parse specific fields with jq
  eventreg deploy ./events | jq '.id'`,
	Args: cobra.ExactArgs(1),
	RunE: runDeploy,
}

func init() {
	deployCmd.Flags().StringVarP(&deployName, "name", "n", "", "Deployment name (default: directory name)")
	deployCmd.Flags().StringVarP(&deployTenant, "tenant", "t", "", "Tenant id (default: registry.default_tenant_id)")
	deployCmd.Flags().StringVar(&deployCategory, "category", "", "Deployment category")
	deployCmd.Flags().StringVar(&deployParent, "parent", "", "Parent deployment id")
	deployCmd.Flags().BoolVarP(&deployWatch, "watch", "w", false, "Redeploy when event definitions change")
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, args []string) error {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	req := domain.DeploymentRequest{
		Name:               deployName,
		Category:           deployCategory,
		ParentDeploymentID: deployParent,
		TenantID:           deployTenant,
	}
	if req.Name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		req.Name = filepath.Base(abs)
	}

	reg, err := openRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	if err := deployDir(ctx, reg, dir, req, out); err != nil {
		return err
	}
	if !deployWatch {
		return nil
	}
	return watchAndDeploy(ctx, reg, dir, req, out, cmd.ErrOrStderr())
}

// deployDir loads dir into a deployment, creates it and prints the result.
func deployDir(ctx context.Context, reg *registry, dir string, req domain.DeploymentRequest, out io.Writer) error {
	req, err := app.LoadDeploymentFromFS(os.DirFS(dir), ".", req)
	if err != nil {
		return err
	}

	dep, err := reg.service.CreateDeployment(ctx, req)
	if err != nil {
		return err
	}
	return presentation.NewFormatter(out).FormatDeployment(presentation.FromDomainDeployment(dep, reg.classifier))
}

func watchAndDeploy(ctx context.Context, reg *registry, dir string, req domain.DeploymentRequest, out, errOut io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	wcfg := watcher.DefaultConfig(dir, reg.classifier)
	if cfg.Watch.Debounce > 0 {
		wcfg.DebounceDur = cfg.Watch.Debounce
	}
	w, err := watcher.New(wcfg)
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}
	events := reg.service.Subscribe(ctx)
	log.Info(log.CatWatcher, "watching for changes", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			_, _ = fmt.Fprintln(errOut, formatDeploymentEvent(ev))
		case <-changes:
			// A broken file must not end the watch; report it and wait for the next change.
			if err := deployDir(ctx, reg, dir, req, out); err != nil {
				log.ErrorErr(log.CatDeploy, "redeploy failed", err, "dir", dir)
				_, _ = fmt.Fprintf(errOut, "redeploy failed: %v\n", err)
			}
		}
	}
}

// formatDeploymentEvent renders a registry event as one status line.
func formatDeploymentEvent(ev pubsub.Event[app.DeploymentEvent]) string {
	p := ev.Payload
	switch {
	case ev.Type == pubsub.DeletedEvent:
		return fmt.Sprintf("deleted %s (%s)", p.DeploymentName, p.DeploymentID)
	case p.Duplicate:
		return fmt.Sprintf("unchanged %s, still deployed as %s", p.DeploymentName, p.DeploymentID)
	case len(p.DefinitionKeys) == 0:
		return fmt.Sprintf("deployed %s as %s (no event definitions)", p.DeploymentName, p.DeploymentID)
	default:
		return fmt.Sprintf("deployed %s as %s: %s", p.DeploymentName, p.DeploymentID, strings.Join(p.DefinitionKeys, ", "))
	}
}
