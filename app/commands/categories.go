package commands

import (
	"context"
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/format"
)

// CategoriesCommand prints the categories discovered in the catalog.
type CategoriesCommand struct{}

func init() {
	RegisterCommand(&CategoriesCommand{})
}

func (c *CategoriesCommand) Name() string { return "categories" }

func (c *CategoriesCommand) Description() string {
	return "Lists the categories found in the catalog with template counts."
}

func (c *CategoriesCommand) Usage() string { return "[--markdown]" }

func (c *CategoriesCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *CategoriesCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{{Name: "markdown", Description: "Print a Markdown table"}}
}

func (c *CategoriesCommand) NeedsCatalog() bool { return true }

func (c *CategoriesCommand) Execute(_ context.Context, env Env, args cli.CommandArgs) error {
	counts := make(map[string]int)
	for _, e := range env.Store.Entries() {
		counts[e.UseCase]++
	}

	mode := format.ASCII
	if args.Bool("markdown", "") {
		mode = format.Markdown
	}
	locale := format.Locale(env.Config.Catalog.Locale)

	categories := env.Store.Categories()
	tbl := format.NewTable(mode)
	tbl.Header("Category", "Label", "Templates")
	for _, cat := range categories {
		tbl.Row(cat, format.Label(cat, locale), counts[cat])
	}
	tbl.Footer("", "", fmt.Sprintf("%d categories", len(categories)))
	tbl.Columns(format.ColumnConfig{Number: 3, AlignRight: true})

	_, err := fmt.Fprintln(env.Out, tbl.String())
	return err
}
