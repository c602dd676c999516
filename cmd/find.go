package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/output"
	"github.com/mj1618/axq/internal/platform"
	"github.com/spf13/cobra"
)

// FindResult is the output of the find command.
type FindResult struct {
	Query   string           `yaml:"query"   json:"query"`
	Count   int              `yaml:"count"   json:"count"`
	Matches []ax.FlatElement `yaml:"matches" json:"matches"`
}

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find elements by text",
	Long:  "Search an application's element tree for elements whose title, value, or description matches the given text. Matches are returned flat with path breadcrumbs.",
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	scopeFlags(findCmd)
	findCmd.Flags().String("text", "", "Text to search for (case-insensitive)")
	findCmd.Flags().String("roles", "", "Restrict matches to these roles (comma-separated)")
	findCmd.Flags().Bool("exact", false, "Require an exact text match")
}

func runFind(cmd *cobra.Command, args []string) error {
	provider, err := platform.Shared()
	if err != nil {
		return err
	}

	app, pid, window, windowID := getScopeFlags(cmd)
	if err := requireScope(app, pid, window, windowID); err != nil {
		return err
	}

	text, _ := cmd.Flags().GetString("text")
	if text == "" {
		return fmt.Errorf("--text is required")
	}
	rolesFlag, _ := cmd.Flags().GetString("roles")
	exact, _ := cmd.Flags().GetBool("exact")

	var roles []string
	if rolesFlag != "" {
		roles = strings.Split(rolesFlag, ",")
	}

	elements, err := provider.Inspector.ReadTree(platform.TreeOptions{
		App: app, PID: pid, Window: window, WindowID: windowID, Roles: roles,
	})
	if err != nil {
		return err
	}

	matches := matchElements(elements, text, exact)
	return output.Print(FindResult{Query: text, Count: len(matches), Matches: matches})
}

// matchElements flattens the tree and keeps elements whose title, value, or
// description matches the query.
func matchElements(elements []ax.Element, text string, exact bool) []ax.FlatElement {
	flat := ax.FlattenElements(elements)
	textLower := strings.ToLower(text)

	matches := []ax.FlatElement{}
	for _, el := range flat {
		if matchesText(el, textLower, exact) {
			matches = append(matches, el)
		}
	}
	return matches
}

func matchesText(el ax.FlatElement, textLower string, exact bool) bool {
	fields := []string{el.Title, el.Value, el.Description}
	for _, f := range fields {
		fl := strings.ToLower(f)
		if exact && fl == textLower {
			return true
		}
		if !exact && fl != "" && strings.Contains(fl, textLower) {
			return true
		}
	}
	return false
}
