package cli

import (
	"fmt"

	"github.com/buildpin-labs/buildpin/internal/task"
	"github.com/spf13/cobra"
)

var cleanFlags overrideFlags

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the shared build root",
	Long:  `Recursively delete the shared build root. Running it when nothing was built is not an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTask(cmd, &cleanFlags, task.CleanName)
	},
}

func init() {
	cleanFlags.register(cleanCmd)
	rootCmd.AddCommand(cleanCmd)
}

func runTask(cmd *cobra.Command, flags *overrideFlags, name string) error {
	res, err := runPass(cmd, flags)
	if err != nil {
		return err
	}
	if err := res.Tasks.Run(cmd.Context(), name); err != nil {
		return err
	}
	if name == task.CleanName {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", res.SharedRoot)
	}
	return nil
}
