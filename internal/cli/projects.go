package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	projectsFlags overrideFlags
	projectsJSON  bool
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Show subprojects in evaluation order",
	RunE:  runProjects,
}

func init() {
	projectsFlags.register(projectsCmd)
	projectsCmd.Flags().BoolVar(&projectsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(projectsCmd)
}

// projectEntry represents a subproject for display.
type projectEntry struct {
	Order        int      `json:"order"`
	Name         string   `json:"name"`
	Dir          string   `json:"dir"`
	DependsOn    []string `json:"depends_on,omitempty"`
	Extensions   []string `json:"extensions"`
	Repositories []string `json:"repositories"`
}

func runProjects(cmd *cobra.Command, args []string) error {
	res, err := runPass(cmd, &projectsFlags)
	if err != nil {
		return err
	}

	entries := make([]projectEntry, 0, len(res.Build.Projects))
	for i, p := range res.Build.Projects {
		entries = append(entries, projectEntry{
			Order:        i + 1,
			Name:         p.Name,
			Dir:          p.Dir,
			DependsOn:    p.DependsOn,
			Extensions:   p.Extensions().Names(),
			Repositories: p.Repositories,
		})
	}

	if projectsJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tPROJECT\tDEPENDS ON\tEXTENSIONS")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.Order, e.Name, orDash(e.DependsOn), orDash(e.Extensions))
	}
	return w.Flush()
}

func orDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ",")
}
