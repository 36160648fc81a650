// ABOUTME: lookup subcommand printing both sources' discussions for a URL
// ABOUTME: Supports plain text and JSON output

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	discussions "discussions-app-api/discussions-lib"
	"github.com/spf13/cobra"
)

var (
	lookupTitle string
	lookupModes string
	lookupJSON  bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <url>",
	Short: "Print related discussions for a URL",
	Example: `  discussions lookup https://go.dev/blog/go1.22
  discussions lookup https://example.com/post --modes url,title --title "Example post"`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupTitle, "title", "", "page title for the title search mode (default: fetched from the page)")
	lookupCmd.Flags().StringVar(&lookupModes, "modes", "url", "Reddit search modes: url,title,domain or none")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print JSON instead of text")
}

func runLookup(cmd *cobra.Command, args []string) error {
	modes, err := parseModes(lookupModes)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.Lookup(cmd.Context(), args[0], lookupTitle, discussions.WithModes(modes))
	if err != nil {
		return err
	}

	if lookupJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printLookup(cmd.OutOrStdout(), result)
	return nil
}

func printLookup(w io.Writer, result *discussions.LookupResult) {
	fmt.Fprintf(w, "Hacker News\n%s\n\n", indent(result.HackerNews.Text()))
	fmt.Fprintf(w, "Reddit (%s)\n%s\n", result.Modes, indent(result.Reddit.Text()))
}

func indent(text string) string {
	return "  " + strings.ReplaceAll(text, "\n", "\n  ")
}
