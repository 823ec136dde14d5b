package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/catalog"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/commands"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/format"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/gallery"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/logging"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/screens"
	config "github.com/Guerrilla-Interactive/nextgen-site-gallery/internal"
)

// Version is set via linker flags during build.
var Version = "v0.3.0"

// ProgramModel wraps app.Model so we can hold Update logic in one place.
type ProgramModel struct {
	M    app.Model
	Deps screens.Deps
	ctx  context.Context
}

// Init starts the catalog fetch and the search cursor blink.
func (pm ProgramModel) Init() tea.Cmd {
	return tea.Batch(screens.LoadCatalogCmd(pm.ctx, pm.Deps.Store), textinput.Blink)
}

// Update handles incoming Msgs (both from commands and user interaction).
func (pm ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch typedMsg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.M.TerminalWidth = typedMsg.Width
		return pm, nil

	case screens.CatalogLoadedMsg:
		pm.M, cmd = screens.HandleCatalogLoaded(pm.M, typedMsg, pm.Deps)
		return pm, cmd

	case screens.CopiedMsg:
		pm.M = screens.HandleCopied(pm.M, typedMsg, pm.Deps)
		return pm, nil

	case tea.KeyMsg:
		switch pm.M.CurrentScreen {
		case app.ScreenDetails:
			pm.M, cmd = screens.UpdateScreenDetails(pm.M, typedMsg, pm.Deps)
		default:
			pm.M, cmd = screens.UpdateScreenGallery(pm.M, typedMsg, pm.Deps)
		}
		return pm, cmd
	}

	// Cursor blink and other widget messages.
	if pm.M.Focus == app.FocusSearch {
		pm.M.SearchInput, cmd = pm.M.SearchInput.Update(msg)
	}
	return pm, cmd
}

// View selects which screen's View function to call based on pm.M.CurrentScreen.
func (pm ProgramModel) View() string {
	switch pm.M.CurrentScreen {
	case app.ScreenDetails:
		return screens.ViewScreenDetails(pm.M, pm.Deps)
	default:
		return screens.ViewScreenGallery(pm.M, pm.Deps)
	}
}

func main() {
	parsedArgs := cli.ParseCommandLineArgs(os.Args[1:], commands.Registry{})

	if len(parsedArgs.Errors) > 0 {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:")
		for _, err := range parsedArgs.Errors {
			fmt.Fprintf(os.Stderr, "  - %v\n", err)
		}
		os.Exit(1)
	}

	// --version takes precedence.
	if parsedArgs.VersionRequested {
		fmt.Printf("ngs %s\n", Version)
		os.Exit(0)
	}

	if parsedArgs.HelpRequested {
		if parsedArgs.CommandName != "" {
			displayCommandHelp(parsedArgs.CommandName)
		} else {
			displayGeneralHelp()
		}
		os.Exit(0)
	}

	if parsedArgs.CommandName == "" && len(parsedArgs.Variables) > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q.\n", parsedArgs.Variables[0])
		fmt.Fprintln(os.Stderr, "Run `ngs --help` for usage.")
		os.Exit(1)
	}

	cfg, cfgPath, err := loadConfig(parsedArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if parsedArgs.CommandName != "" {
		os.Exit(executeCommand(parsedArgs, cfg, cfgPath))
	}
	if err := runInteractive(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads --config or the default config file, then applies
// --catalog and the log level switches.
func loadConfig(args cli.CommandArgs) (config.Config, string, error) {
	var (
		cfg  config.Config
		path string
		err  error
	)
	if p, ok := args.Flag("config", ""); ok {
		cfg, err = config.Load(p)
		path = p
	} else {
		cfg, path, err = config.LoadDefault()
	}
	if err != nil {
		return cfg, path, err
	}
	if loc, ok := args.Flag("catalog", ""); ok {
		cfg.Catalog.Location = loc
	}
	cfg.Logging.Level = args.LogLevel(cfg.Logging.Level)
	return cfg, path, nil
}

func newStore(cfg config.Config, logger *slog.Logger) *catalog.Store {
	src := catalog.NewSource(cfg.Catalog.Location, cfg.Catalog.FetchTimeout)
	return catalog.NewStore(src,
		catalog.WithLocale(format.Locale(cfg.Catalog.Locale)),
		catalog.WithLogger(logger))
}

// executeCommand runs one CLI command with logs on stderr and returns the
// exit code.
func executeCommand(args cli.CommandArgs, cfg config.Config, cfgPath string) int {
	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
	slog.SetDefault(logger)

	store := newStore(cfg, logger)
	env := commands.Env{
		Store:      store,
		Engine:     gallery.New(store, logger),
		Config:     cfg,
		ConfigPath: cfgPath,
		Out:        os.Stdout,
		Logger:     logger,
		Clipboard:  clipboard.WriteAll,
	}
	if err := commands.Run(context.Background(), env, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command '%s': %v\n", args.CommandName, err)
		return 1
	}
	return 0
}

// runInteractive starts the gallery TUI. Logs go to a file because the
// alt screen owns the terminal.
func runInteractive(cfg config.Config) error {
	var logOut io.Writer = io.Discard
	logPath := cfg.Logging.File
	if logPath == "" {
		logPath, _ = config.DefaultLogPath()
	}
	if logPath != "" {
		if f, err := logging.OpenFile(logPath); err == nil {
			defer f.Close()
			logOut = f
		}
	}
	// No ANSI colour in a log file.
	logFormat := cfg.Logging.Format
	if logFormat == "color" {
		logFormat = "text"
	}
	logger := logging.New(logOut, logging.ParseLevel(cfg.Logging.Level), logFormat)
	slog.SetDefault(logger)

	variant, err := app.ParseCardVariant(cfg.Gallery.Variant)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newStore(cfg, logger)
	engine := gallery.New(store, logger)
	binding := screens.Bind(engine)
	defer binding.Close()

	m := app.NewModel(variant, cfg.Gallery.PerPage, cfg.Catalog.Locale, Version)
	m.CatalogSrc = store.Source().String()
	m.TerminalWidth = 80

	pm := ProgramModel{
		M: m,
		Deps: screens.Deps{
			Store:     store,
			Engine:    engine,
			Binding:   binding,
			Logger:    logger,
			Clipboard: clipboard.WriteAll,
		},
		ctx: ctx,
	}
	logger.Info("starting gallery", "version", Version, "source", m.CatalogSrc)

	p := tea.NewProgram(pm, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// displayGeneralHelp prints the top-level help message.
func displayGeneralHelp() {
	fmt.Println("NextGen Site Gallery - Help")
	fmt.Println("Usage: ngs [command] [variables...] [--flags...]")
	fmt.Println("Run without a command to browse templates interactively.")

	allCmds := commands.GetAllCommands()
	fmt.Println("\nAvailable Commands:")
	for _, cmd := range allCmds {
		fmt.Printf("  %-15s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Println("\nRun 'ngs [command] --help' for more information on a specific command.")
	printGlobalFlags()
}

// displayCommandHelp displays detailed help for a specific command.
func displayCommandHelp(commandName string) {
	cmd, found := commands.GetCommand(commandName)
	if !found {
		fmt.Printf("Error: Unknown command '%s'\n", commandName)
		displayGeneralHelp()
		return
	}

	fmt.Printf("Usage: ngs %s %s\n\n", cmd.Name(), cmd.Usage())
	fmt.Printf("  %s\n", cmd.Description())

	args := cmd.ExpectedArgs()
	if len(args) > 0 {
		fmt.Println("\nArguments:")
		for _, arg := range args {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Printf("  %-15s %s%s\n", arg.Name, arg.Description, required)
		}
	}

	flags := cmd.ExpectedFlags()
	if len(flags) > 0 {
		fmt.Println("\nFlags:")
		for _, flag := range flags {
			flagUsage := "--" + flag.Name
			if flag.ShortName != "" {
				flagUsage += ", -" + flag.ShortName
			}
			if flag.HasValue {
				flagUsage += " <value>"
			}
			required := ""
			if flag.Required {
				required = " (required)"
			}
			fmt.Printf("  %-22s %s%s\n", flagUsage, flag.Description, required)
		}
	}
	printGlobalFlags()
}

func printGlobalFlags() {
	fmt.Println("\nGlobal Flags:")
	fmt.Printf("  %-22s %s\n", "--help, -h", "Show help")
	fmt.Printf("  %-22s %s\n", "--version", "Print the version")
	fmt.Printf("  %-22s %s\n", "--debug", "Log at debug level")
	fmt.Printf("  %-22s %s\n", "--verbose", "Log at least at info level")
	fmt.Printf("  %-22s %s\n", "--config <path>", "Read settings from this file instead of ~/.ngs")
	fmt.Printf("  %-22s %s\n", "--catalog <location>", "Catalog URL or file (default: bundled catalog)")
}
