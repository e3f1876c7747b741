package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/eventregistry/internal/presentation"
)

// newCLI writes a config file pointing at a fresh database and returns a
// function that runs eventreg with it.
func newCLI(t *testing.T) func(args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := "db_path: " + filepath.Join(dir, "registry.db") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	return func(args ...string) (string, error) {
		resetFlags()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(append(args, "--config", cfgPath))
		err := rootCmd.Execute()
		return out.String(), err
	}
}

func resetFlags() {
	deployName, deployTenant, deployCategory, deployParent = "", "", "", ""
	deployWatch = false
	defKey, defTenant, defDeployment = "", "", ""
	defAnyTenant, defLatest = false, false
	defLimit = 0
	modelOpts = modelFlags{}
	configForce = false
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestCLI_DeployListAndDelete(t *testing.T) {
	run := newCLI(t)
	events := writeFiles(t, map[string]string{
		"orders.event":   `{"key": "orderCreated", "payload": [{"name": "amount", "type": "double"}]}`,
		"process.bpmn":   `<definitions/>`,
		"nested/c.event": "key: customerRegistered\ncorrelationParameters:\n  - name: customerId\n    type: string\n",
	})

	out, err := run("deploy", events, "--name", "orders")
	require.NoError(t, err)
	var dep presentation.DeploymentDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dep))
	require.NotEmpty(t, dep.ID)
	require.Equal(t, "orders", dep.Name)
	require.Len(t, dep.Resources, 3)

	out, err = run("definitions:list", "--latest")
	require.NoError(t, err)
	var defs []presentation.DefinitionDTO
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.Len(t, defs, 2)
	require.Equal(t, "customerRegistered", defs[0].Key)
	require.Equal(t, "orderCreated", defs[1].Key)
	require.Equal(t, "nested/c.event", defs[0].ResourceName)

	out, err = run("model:get", defs[0].ID)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"key": "customerRegistered",
		"correlationParameters": [{"name": "customerId", "type": "string"}],
		"payload": [{"name": "customerId", "type": "string"}]
	}`, out)

	// unchanged directory: duplicate filtering returns the same deployment
	out, err = run("deploy", events, "--name", "orders")
	require.NoError(t, err)
	var again presentation.DeploymentDTO
	require.NoError(t, json.Unmarshal([]byte(out), &again))
	require.Equal(t, dep.ID, again.ID)

	_, err = run("deployment:delete", dep.ID)
	require.NoError(t, err)

	out, err = run("definitions:list")
	require.NoError(t, err)
	require.JSONEq(t, `[]`, out)
}

func TestCLI_DeployParseErrorFails(t *testing.T) {
	run := newCLI(t)
	events := writeFiles(t, map[string]string{
		"broken.event": `{"name": "no key"}`,
	})

	_, err := run("deploy", events)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.event")
}

func TestCLI_ModelCreate(t *testing.T) {
	run := newCLI(t)

	out, err := run("model:create", "--key", "orderCreated",
		"--correlation", "orderId:string", "--payload", "amount:double", "--inbound", "orders")
	require.NoError(t, err)
	require.JSONEq(t, `{
		"key": "orderCreated",
		"inboundChannelKeys": ["orders"],
		"correlationParameters": [{"name": "orderId", "type": "string"}],
		"payload": [{"name": "orderId", "type": "string"}, {"name": "amount", "type": "double"}]
	}`, out)

	out, err = run("model:create", "--key", "orderCreated", "--resource", "orders.event",
		"--deployment-name", "built", "--payload", "amount:double", "--deploy")
	require.NoError(t, err)
	var dep presentation.DeploymentDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dep))
	require.Equal(t, "built", dep.Name)
	require.Equal(t, []presentation.ResourceDTO{{Name: "orders.event", Size: dep.Resources[0].Size, Event: true}}, dep.Resources)

	out, err = run("definitions:get", "orderCreated")
	require.NoError(t, err)
	var defs []presentation.DefinitionDTO
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.Len(t, defs, 1)
	require.Equal(t, dep.ID, defs[0].DeploymentID)
}

func TestCLI_ModelCreateRequiresResourceToDeploy(t *testing.T) {
	run := newCLI(t)

	_, err := run("model:create", "--key", "orderCreated", "--deploy")
	require.ErrorContains(t, err, "resource name is mandatory")
}

func TestCLI_ResourceDiff(t *testing.T) {
	run := newCLI(t)
	events := writeFiles(t, map[string]string{
		"orders.event": "key: orderCreated\nname: Order created\n",
	})

	out, err := run("deploy", events)
	require.NoError(t, err)
	var dep presentation.DeploymentDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dep))

	local := filepath.Join(events, "orders.event")
	out, err = run("resource:diff", dep.ID, "orders.event", local)
	require.NoError(t, err)
	require.Equal(t, "no differences\n", out)

	require.NoError(t, os.WriteFile(local, []byte("key: orderCreated\nname: Order placed\n"), 0o600))
	out, err = run("resource:diff", dep.ID, "orders.event", local)
	require.NoError(t, err)
	require.Equal(t, " key: orderCreated\n-name: Order created\n+name: Order placed\n", out)

	_, err = run("resource:diff", dep.ID, "missing.event", local)
	require.ErrorContains(t, err, "has no resource missing.event")
}

func TestCLI_ConfigCommands(t *testing.T) {
	run := newCLI(t)
	path := filepath.Join(t.TempDir(), "eventreg", "config.yaml")

	_, err := run("config:init", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = run("config:init", path)
	require.ErrorContains(t, err, "already exists")
	_, err = run("config:init", path, "--force")
	require.NoError(t, err)

	_, err = run("config:suffixes", ".evt")
	require.NoError(t, err)
	events := writeFiles(t, map[string]string{
		"a.evt":   `{"key": "a"}`,
		"b.event": `not parsed`,
	})
	_, err = run("deploy", events)
	require.NoError(t, err)

	out, err := run("definitions:list")
	require.NoError(t, err)
	var defs []presentation.DefinitionDTO
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.Len(t, defs, 1)
	require.Equal(t, "a.evt", defs[0].ResourceName)
}

func TestCLI_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("db_path: "+filepath.Join(dir, "r.db")+"\ncache:\n  ttl: 0s\n"), 0o600))

	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"definitions:list", "--config", cfgPath})
	err := rootCmd.Execute()
	require.ErrorContains(t, err, "invalid configuration")
}

func TestCLI_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("db_path: [unclosed\n"), 0o600))

	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"definitions:list", "--config", cfgPath})
	err := rootCmd.Execute()
	require.ErrorContains(t, err, "reading config")
}
