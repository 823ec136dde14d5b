package commands

import (
	"context"
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/cli"
)

// CopyCommand selects a template and puts its id on the clipboard.
type CopyCommand struct{}

func init() {
	RegisterCommand(&CopyCommand{})
}

func (c *CopyCommand) Name() string { return "copy" }

func (c *CopyCommand) Description() string { return "Copies a template id to the clipboard." }

func (c *CopyCommand) Usage() string { return "<id>" }

func (c *CopyCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{{Name: "id", Description: "Template id to copy", Required: true}}
}

func (c *CopyCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *CopyCommand) NeedsCatalog() bool { return true }

func (c *CopyCommand) Execute(_ context.Context, env Env, args cli.CommandArgs) error {
	if err := CheckArgs(c, args); err != nil {
		return err
	}
	id := args.Variables[0]
	env.Engine.ToggleSelect(id)
	entry, ok := env.Engine.SelectedEntry()
	if !ok {
		return fmt.Errorf("no template with id %q", id)
	}
	if err := env.Clipboard(entry.ID); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	env.Logger.Debug("copied template id", "id", entry.ID)
	_, err := fmt.Fprintf(env.Out, "Copied %s (%s) to the clipboard.\n", entry.ID, entry.Title)
	return err
}
