package cli

import (
	"fmt"

	"github.com/buildpin-labs/buildpin/internal/workspace"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the workspace descriptor against its schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveWorkspacePath()
		if err != nil {
			return fmt.Errorf("resolving workspace path: %w", err)
		}
		out := cmd.OutOrStdout()

		result, err := workspace.ValidateFile(path)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return fmt.Errorf("workspace validation failed: %w", err)
		}

		if !result.Valid {
			fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
			for _, issue := range result.Issues {
				if issue.Path != "" {
					fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
				} else {
					fmt.Fprintf(out, "    - %s\n", issue.Message)
				}
			}
			return fmt.Errorf("workspace %s has %d validation issue(s)", path, len(result.Issues))
		}

		// Schema-valid; Load also checks names and dependencies.
		ws, err := workspace.Load(path)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return err
		}
		fmt.Fprintf(out, "  [ OK ] Valid workspace %q with %d subproject(s)\n", ws.Name, len(ws.Subprojects))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
