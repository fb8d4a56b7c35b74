package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/depeter/cinematv/internal/browse"
	"github.com/depeter/cinematv/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the bundled media catalog",
	}
	cmd.AddCommand(newCatalogListCmd(), newCatalogSearchCmd(), newCatalogShowCmd())
	return cmd
}

func newCatalogListCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every category and its titles in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats := catalog.Sample().Categories()
			if category != "" {
				cats = lo.Filter(cats, func(c catalog.Category, _ int) bool {
					return strings.EqualFold(c.Name, category)
				})
				if len(cats) == 0 {
					return fmt.Errorf("no category named %q", category)
				}
			}
			out := cmd.OutOrStdout()
			for i, c := range cats {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s %s\n", headingStyle.Render(c.Name), metaStyle.Render(fmt.Sprintf("(%d)", len(c.Items))))
				for _, rec := range c.Items {
					printRecordLine(out, rec)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list this category")
	return cmd
}

func newCatalogSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles and synopses, as the search screen does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			results := catalog.Sample().Search(query)
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No results for %q\n", query)
				return nil
			}
			fmt.Fprintln(out, headingStyle.Render(lo.Ternary(len(results) == 1, "1 result", fmt.Sprintf("%d results", len(results)))))
			for _, rec := range results {
				printRecordLine(out, rec)
			}
			return nil
		},
	}
}

func newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one title the way the details screen does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := browse.NewDetails(catalog.Sample(), args[0]).View()
			if v.NotFound {
				return fmt.Errorf("%s: %q", v.Message, args[0])
			}
			printDetails(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func printRecordLine(w io.Writer, rec catalog.MediaRecord) {
	fmt.Fprintf(w, "  %s  %s  %s\n",
		idStyle.Render(fmt.Sprintf("%-4s", rec.ID)),
		rec.Title,
		metaStyle.Render(fmt.Sprintf("%d", rec.Year))+" "+ratingStyle.Render(fmt.Sprintf("%.1f★", rec.Rating)),
	)
}

func printDetails(w io.Writer, v browse.DetailsView) {
	fmt.Fprintln(w, titleStyle.Render(v.Title), idStyle.Render("["+v.ID+"]"))
	fmt.Fprintln(w, metaStyle.Render(v.Meta))
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render(v.Heading))
	fmt.Fprintln(w, synopsisStyle.Render(wordwrap.String(v.Synopsis, synopsisWidth)))
}
