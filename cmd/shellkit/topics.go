package shellkit

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/shellkit/shellkit/pkg/ui"
)

//go:embed topics/*.md
var topicFiles embed.FS

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "topics [topic]",
		Short:     MsgTopicsShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: topicNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
				for _, name := range topicNames() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				return nil
			}

			content, err := topicFiles.ReadFile("topics/" + args[0] + ".md")
			if err != nil {
				return fmt.Errorf("unknown topic %q", args[0])
			}

			format, ferr := ui.ParseFormat(flagFormat)
			if ferr == nil && format.Resolve(os.Stdout) == ui.FormatText {
				fmt.Fprint(cmd.OutOrStdout(), string(content))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(content)))
			return nil
		},
	}
}

func topicNames() []string {
	entries, err := topicFiles.ReadDir("topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// renderMarkdown converts markdown to terminal output, falling back to
// the raw content when rendering fails.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
