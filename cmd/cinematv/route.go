package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/nav"
)

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <path>",
		Short: "Parse a route path and describe where it leads",
		Long: "Parse a route path (" + nav.PatternHome + ", " + nav.PatternDetails + ", " +
			nav.PatternSearch + ", " + nav.PatternSettings + ") and describe where it leads.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := nav.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", headingStyle.Render("Route:"), r.String())
			fmt.Fprintf(out, "%s %s\n", headingStyle.Render("Screen:"), r.Kind)
			if r.Kind != nav.KindDetails {
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", headingStyle.Render("ID:"), idStyle.Render(r.ID))
			if rec, ok := catalog.Sample().ByID(r.ID).Get(); ok {
				fmt.Fprintf(out, "%s %s\n", headingStyle.Render("Title:"), rec.Title)
			} else {
				fmt.Fprintln(out, metaStyle.Render("Item not found; the details screen will say so."))
			}
			return nil
		},
	}
}
