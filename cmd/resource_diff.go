package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var resourceDiffCmd = &cobra.Command{
	Use:   "resource:diff <deployment-id> <resource> <file>",
	Short: "Compare a deployed resource with a local file",
	Long: `Print a line diff between a resource stored with a deployment and a local
file. Removed lines start with "-", added lines with "+".

Examples:
  eventreg resource:diff 3f2a... orders.event ./events/orders.event`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		local, err := os.ReadFile(args[2])
		if err != nil {
			return err
		}

		reg, err := openRegistry()
		if err != nil {
			return err
		}
		defer reg.Close()

		dep, err := reg.service.GetDeployment(commandContext(cmd), args[0])
		if err != nil {
			return err
		}
		res, ok := dep.Resource(args[1])
		if !ok {
			return fmt.Errorf("deployment %s has no resource %s", dep.ID(), args[1])
		}

		diff := lineDiff(string(res.Bytes()), string(local))
		if diff == "" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "no differences")
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), diff)
		return err
	},
}

func init() {
	rootCmd.AddCommand(resourceDiffCmd)
}

// lineDiff returns the changed lines between a and b, prefixed with "-" or "+"
// and unchanged lines prefixed with " ". It returns "" when a equals b.
func lineDiff(a, b string) string {
	if a == b {
		return ""
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}
