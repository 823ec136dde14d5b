package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/format"
)

// ListCommand prints the templates matching the given filters.
type ListCommand struct{}

func init() {
	RegisterCommand(&ListCommand{})
}

func (c *ListCommand) Name() string { return "list" }

func (c *ListCommand) Description() string {
	return "Lists templates, optionally filtered by category or tag."
}

func (c *ListCommand) Usage() string { return "[--category a,b] [--query tag] [--markdown]" }

func (c *ListCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *ListCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "category", ShortName: "c", Description: "Comma-separated categories to include", HasValue: true},
		{Name: "query", ShortName: "q", Description: "Tag to match, ignoring case", HasValue: true},
		{Name: "markdown", Description: "Print a Markdown table"},
	}
}

func (c *ListCommand) NeedsCatalog() bool { return true }

// Execute applies the filters through the engine, the same path the gallery
// screen uses.
func (c *ListCommand) Execute(_ context.Context, env Env, args cli.CommandArgs) error {
	env.Engine.SetCategoryFilters(args.List("category", "c"))
	query, _ := args.Flag("query", "q")
	view := env.Engine.SetTextQuery(query)

	mode := format.ASCII
	if args.Bool("markdown", "") {
		mode = format.Markdown
	}
	locale := format.Locale(env.Config.Catalog.Locale)

	tbl := format.NewTable(mode)
	tbl.Header("ID", "Title", "Category", "Tags")
	for _, e := range view {
		tbl.Row(e.ID, e.Title, format.Label(e.UseCase, locale), strings.Join(e.Tags, ", "))
	}
	tbl.Footer("", "", "", fmt.Sprintf("%d results", env.Engine.ResultCount()))
	tbl.Columns(
		format.ColumnConfig{Number: 2, MaxWidth: 32},
		format.ColumnConfig{Number: 4, MaxWidth: 40},
	)

	if filters := env.Engine.ActiveFilters(); len(filters) > 0 {
		env.Logger.Debug("list filtered", "filters", filters, "results", len(view))
	}
	_, err := fmt.Fprintln(env.Out, tbl.String())
	return err
}
