package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/atotto/clipboard"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/catalog"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/gallery"
	config "github.com/Guerrilla-Interactive/nextgen-site-gallery/internal"
)

// ArgDef is an alias for cli.ArgDef
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef
type FlagDef = cli.FlagDef

// Env carries what a command runs against. Store is loaded before Execute
// is called; Engine filters over it.
type Env struct {
	Store      *catalog.Store
	Engine     *gallery.Engine
	Config     config.Config
	ConfigPath string
	Out        io.Writer
	Logger     *slog.Logger
	// Clipboard writes text to the system clipboard. Tests replace it.
	Clipboard func(string) error
}

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "list").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(ctx context.Context, env Env, args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<id>").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
	// NeedsCatalog reports whether the catalog must be loaded first.
	NeedsCatalog() bool
}

// commandRegistry holds all registered CLI commands.
var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. It is called from init()
// in each command's file.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// Registry satisfies cli.CommandRegistryChecker for the package-level registry.
type Registry struct{}

func (Registry) CommandExists(name string) bool { return CommandExists(name) }

// GetAllCommands returns every registered command sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Run executes the command named in args. The catalog is loaded first for
// commands that need it; a load failure is returned as the *catalog.LoadError.
func Run(ctx context.Context, env Env, args cli.CommandArgs) error {
	cmd, ok := GetCommand(args.CommandName)
	if !ok {
		return fmt.Errorf("unknown command: %q", args.CommandName)
	}
	if env.Clipboard == nil {
		env.Clipboard = clipboard.WriteAll
	}
	if env.Logger == nil {
		env.Logger = slog.Default()
	}
	if cmd.NeedsCatalog() {
		if _, err := env.Store.Load(ctx); err != nil {
			return err
		}
		env.Engine.Recompute()
	}
	env.Logger.Debug("running command", "command", cmd.Name(), "args", args.Variables)
	return cmd.Execute(ctx, env, args)
}

// CheckArgs validates required positional arguments against ExpectedArgs.
func CheckArgs(cmd Command, args cli.CommandArgs) error {
	required := 0
	for _, a := range cmd.ExpectedArgs() {
		if a.Required {
			required++
		}
	}
	if len(args.Variables) < required {
		return fmt.Errorf("%s expects %d argument(s), got %d (usage: ngs %s %s)",
			cmd.Name(), required, len(args.Variables), cmd.Name(), cmd.Usage())
	}
	return nil
}
