package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/format"
)

// ShowCommand prints every field of one template.
type ShowCommand struct{}

func init() {
	RegisterCommand(&ShowCommand{})
}

func (c *ShowCommand) Name() string { return "show" }

func (c *ShowCommand) Description() string { return "Shows the details of one template." }

func (c *ShowCommand) Usage() string { return "<id> [--markdown]" }

func (c *ShowCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{{Name: "id", Description: "Template id, as printed by `ngs list`", Required: true}}
}

func (c *ShowCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{{Name: "markdown", Description: "Print a Markdown table"}}
}

func (c *ShowCommand) NeedsCatalog() bool { return true }

func (c *ShowCommand) Execute(_ context.Context, env Env, args cli.CommandArgs) error {
	if err := CheckArgs(c, args); err != nil {
		return err
	}
	id := args.Variables[0]
	entry, ok := env.Store.Lookup(id)
	if !ok {
		return fmt.Errorf("no template with id %q", id)
	}

	mode := format.ASCII
	if args.Bool("markdown", "") {
		mode = format.Markdown
	}
	locale := format.Locale(env.Config.Catalog.Locale)

	tbl := format.NewTable(mode)
	tbl.Header("Field", "Value")
	tbl.Row("ID", entry.ID)
	tbl.Row("Title", entry.Title)
	tbl.Row("Category", format.Label(entry.UseCase, locale))
	tbl.Row("Tags", strings.Join(entry.Tags, ", "))
	tbl.Row("Features", strings.Join(entry.Features, ", "))
	tbl.Row("Description", format.PlainText(entry.Description))
	tbl.Columns(format.ColumnConfig{Number: 2, MaxWidth: 60})

	_, err := fmt.Fprintln(env.Out, tbl.String())
	return err
}
