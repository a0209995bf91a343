package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/buildpin-labs/buildpin/internal/configure"
	"github.com/buildpin-labs/buildpin/internal/override"
	"github.com/buildpin-labs/buildpin/internal/report"
	"github.com/spf13/cobra"
)

var (
	configureFlags  overrideFlags
	configureJSON   bool
	configureReport string
	configureWrite  bool
	configureWatch  bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Run the configuration pass",
	Long: `Evaluate every subproject of the workspace, redirect its output into the
shared build root and force its compile SDK. Subprojects that cannot take the
compile SDK are left alone; use --verbose to see why.`,
	RunE: runConfigure,
}

func init() {
	configureFlags.register(configureCmd)
	configureCmd.Flags().BoolVar(&configureJSON, "json", false, "Print the pass report as JSON")
	configureCmd.Flags().StringVar(&configureReport, "report", "", "Write the JSON report to this path")
	configureCmd.Flags().BoolVar(&configureWrite, "write-report", false, "Write the JSON report into the shared build root")
	configureCmd.Flags().BoolVar(&configureWatch, "watch", false, "Re-run the pass whenever the workspace descriptor changes")
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	if configureWatch {
		path, err := resolveWorkspacePath()
		if err != nil {
			return fmt.Errorf("resolving workspace path: %w", err)
		}
		return watchWorkspace(cmd.Context(), path, func() error {
			return configureOnce(cmd)
		})
	}
	return configureOnce(cmd)
}

func configureOnce(cmd *cobra.Command) error {
	res, err := runPass(cmd, &configureFlags)
	if err != nil {
		return err
	}
	rep := report.New(res)

	if configureReport != "" {
		if err := report.WriteFile(configureReport, rep); err != nil {
			return err
		}
	}
	if configureWrite {
		if err := report.WriteFile(filepath.Join(res.SharedRoot, report.FileName), rep); err != nil {
			return err
		}
	}

	if configureJSON {
		return rep.Encode(cmd.OutOrStdout())
	}
	return printPassTable(cmd.OutOrStdout(), res)
}

func printPassTable(out io.Writer, res *configure.Result) error {
	fmt.Fprintf(out, "Shared build root: %s\n", res.SharedRoot)
	fmt.Fprintf(out, "Compile SDK: %d (extension %q)\n\n", res.Settings.CompileSDK, res.Settings.Extension)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tPROJECT\tOUTPUT\tCOMPILE SDK\tOVERRIDE")
	for i, p := range res.Build.Projects {
		sdk := "-"
		if v := p.CompileVersion(res.Settings.Extension); v > 0 {
			sdk = fmt.Sprint(v)
		}
		outcome := "-"
		if o, ok := res.Override(p.Name); ok {
			outcome = o.Outcome.String()
		}
		rel, err := filepath.Rel(res.SharedRoot, p.OutputDir)
		if err != nil {
			rel = p.OutputDir
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, p.Name, rel, sdk, outcome)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\n%s\n", override.Summarize(res.Overrides))
	return err
}
