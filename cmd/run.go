package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/iksnae/labchat/internal"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute code on the backend",
	Long: `Load a file (or stdin when no file is given) into the editor and
execute it on the backend, printing the output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		client := cfg.NewClient()
		runner := internal.NewCodeRunner(client, internal.NewBuffer(code))
		ctx := cmd.Context()

		runErr := internal.ShowProgress(ctx, internal.RunningStatus, func() error {
			return runner.RunCode(ctx)
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Fprintln(cmd.OutOrStdout(), runner.Output())
		if runErr != nil {
			return fmt.Errorf("code run failed: %w", runErr)
		}
		return nil
	},
}

// readInput returns the contents of the file named in args, or stdin
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
