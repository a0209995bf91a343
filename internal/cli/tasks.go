package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var tasksFlags overrideFlags

var tasksCmd = &cobra.Command{
	Use:   "tasks [name]",
	Short: "List the workspace tasks, or run one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runTask(cmd, &tasksFlags, args[0])
		}

		res, err := runPass(cmd, &tasksFlags)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TASK\tDESCRIPTION")
		for _, name := range res.Tasks.Names() {
			t, _ := res.Tasks.Lookup(name)
			fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
		}
		return w.Flush()
	},
}

func init() {
	tasksFlags.register(tasksCmd)
	rootCmd.AddCommand(tasksCmd)
}
