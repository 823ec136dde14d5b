package commands

import (
	"context"
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/cli"
	config "github.com/Guerrilla-Interactive/nextgen-site-gallery/internal"
)

// ConfigCommand prints the effective configuration as YAML.
type ConfigCommand struct{}

func init() {
	RegisterCommand(&ConfigCommand{})
}

func (c *ConfigCommand) Name() string { return "config" }

func (c *ConfigCommand) Description() string {
	return "Prints the effective configuration and where it was read from."
}

func (c *ConfigCommand) Usage() string { return "" }

func (c *ConfigCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *ConfigCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ConfigCommand) NeedsCatalog() bool { return false }

func (c *ConfigCommand) Execute(_ context.Context, env Env, _ cli.CommandArgs) error {
	data, err := config.Marshal(env.Config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	source := env.ConfigPath
	if source == "" {
		source = "(defaults)"
	}
	if _, err := fmt.Fprintf(env.Out, "# %s\n", source); err != nil {
		return err
	}
	_, err = env.Out.Write(data)
	return err
}
