package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/iksnae/labchat/internal"
	"github.com/spf13/cobra"
)

var extractJSON bool

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Show the directives found in assistant text",
	Long: `Scan assistant text from a file (or stdin) for an image directive and
a fenced code block, and print what the chat would do with it.

Useful for checking backend replies against the directive grammar:
  IMAGE_GENERATED: <url>      opens the visual lab
  first fenced code block     opens the code lab`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		ex := internal.Extract(raw)
		out := cmd.OutOrStdout()

		if extractJSON {
			enc := json.NewEncoder(out)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(ex)
		}

		fmt.Fprintln(out, labHeaderStyle.Render("Image directive"))
		if ex.Image != nil {
			fmt.Fprintln(out, messageContentStyle.Render(ex.Image.URL))
		} else {
			fmt.Fprintln(out, mutedStyle.Render("  (none)"))
		}

		fmt.Fprintln(out, labHeaderStyle.Render("Code block"))
		if ex.Code != nil {
			lang := ex.Code.Language
			if lang == "" {
				lang = "untagged"
			}
			fmt.Fprintln(out, mutedStyle.Render("  "+lang))
			fmt.Fprintln(out, messageContentStyle.Render(ex.Code.Content))
		} else {
			fmt.Fprintln(out, mutedStyle.Render("  (none)"))
		}

		fmt.Fprintln(out, labHeaderStyle.Render("Transcript text"))
		fmt.Fprintln(out, messageContentStyle.Render(ex.CleanText))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print the result as JSON")
}
