package cli

import (
	"fmt"

	"github.com/buildpin-labs/buildpin/internal/config"
	"github.com/buildpin-labs/buildpin/internal/configure"
	"github.com/buildpin-labs/buildpin/internal/workspace"
	"github.com/spf13/cobra"
)

// overrideFlags are the per-invocation setting overrides shared by the
// commands that run a pass.
type overrideFlags struct {
	compileSDK int
	offset     string
	aggregator string
	extension  string
}

func (f *overrideFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.compileSDK, "compile-sdk", 0, "Compile SDK to force (default from config, 36)")
	cmd.Flags().StringVar(&f.offset, "offset", "", "Shared output root, relative to the root build directory (default from config, ../../build)")
	cmd.Flags().StringVar(&f.aggregator, "aggregator", "", "Subproject evaluated after all others (default from config, app)")
	cmd.Flags().StringVar(&f.extension, "extension", "", "Extension that receives the compile SDK (default from config, android)")
}

// settings resolves config file and environment values, then applies flags
// that were set explicitly.
func (f *overrideFlags) settings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Current()
	if err != nil {
		return config.Settings{}, fmt.Errorf("resolving settings: %w", err)
	}

	if cmd.Flags().Changed("compile-sdk") {
		s.CompileSDK = f.compileSDK
	}
	if cmd.Flags().Changed("offset") {
		s.OutputOffset = f.offset
	}
	if cmd.Flags().Changed("aggregator") {
		s.Aggregator = f.aggregator
	}
	if cmd.Flags().Changed("extension") {
		s.Extension = f.extension
	}
	return s, s.Validate()
}

// runPass loads the workspace descriptor and runs a configuration pass.
func runPass(cmd *cobra.Command, flags *overrideFlags) (*configure.Result, error) {
	settings, err := flags.settings(cmd)
	if err != nil {
		return nil, err
	}

	path, err := resolveWorkspacePath()
	if err != nil {
		return nil, fmt.Errorf("resolving workspace path: %w", err)
	}
	ws, err := workspace.Load(path)
	if err != nil {
		return nil, err
	}

	res, err := configure.Run(ws, configure.Options{
		Settings: settings,
		Log:      newLogger(cmd),
	})
	if err != nil {
		return nil, fmt.Errorf("configuring %s: %w", ws.Name, err)
	}
	return res, nil
}
