package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/session"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List router targets and the navigation shown to each visitor kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRoutes(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func printRoutes(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ROUTER TARGETS")
	for _, r := range nav.Routes() {
		fmt.Fprintf(w, "  %s\n", r)
	}

	gate := nav.NewGate(nil)
	visitors := []struct {
		title string
		s     session.Session
	}{
		{"ANONYMOUS", session.Anonymous{}},
		{"AUTHENTICATED", session.Authenticated{Token: "-"}},
	}
	for _, v := range visitors {
		fmt.Fprintf(w, "\n%s\tHREF\tMETHOD\n", v.title)
		for _, a := range gate.Actions(v.s) {
			method := "GET"
			if a.Kind == nav.KindLogout {
				method = "POST"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", a.Label, a.Href(), method)
		}
	}
	return w.Flush()
}
