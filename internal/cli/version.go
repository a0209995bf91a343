package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/buildpin-labs/buildpin/internal/branding"
	"github.com/buildpin-labs/buildpin/internal/config"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

// versionInfo is the --json shape of the version command.
type versionInfo struct {
	Version           string `json:"version"`
	Commit            string `json:"commit"`
	Date              string `json:"date"`
	GoVersion         string `json:"go_version"`
	Platform          string `json:"platform"`
	DefaultCompileSDK int    `json:"default_compile_sdk"`
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build details as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build details",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		info := versionInfo{
			Version:           buildVersion,
			Commit:            buildCommit,
			Date:              buildDate,
			GoVersion:         runtime.Version(),
			Platform:          runtime.GOOS + "/" + runtime.GOARCH,
			DefaultCompileSDK: config.DefaultCompileSDK,
		}
		if versionJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s %s (%s, built %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
		fmt.Fprintf(out, "  %s %s, default compile SDK %d\n", info.GoVersion, info.Platform, info.DefaultCompileSDK)
		return nil
	},
}
