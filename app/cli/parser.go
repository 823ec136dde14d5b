package cli

import (
	"fmt"
	"strings"
)

// CommandRegistryChecker defines an interface for checking if a command name exists.
// This avoids a direct dependency cycle between cli and commands packages.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
}

// ArgDef defines the structure for an expected positional argument.
type ArgDef struct {
	Name        string // e.g., "id"
	Description string // Help text for the argument
	Required    bool   // Whether the argument is mandatory
}

// FlagDef defines the structure for an expected flag.
type FlagDef struct {
	Name        string // Long name (e.g., "category")
	ShortName   string // Short name (e.g., "c"), empty if none
	Description string // Help text for the flag
	HasValue    bool   // Whether the flag expects a value (true for --flag=v, false for --flag)
	Required    bool   // Whether the flag is mandatory
}

// CommandArgs holds structured information parsed from command-line arguments.
type CommandArgs struct {
	RawArgs          []string          // Original args, untouched
	CommandName      string            // The command specified (e.g., "list", "config")
	Variables        []string          // Positional arguments provided after the command name
	Flags            map[string]string // Flags with values (--catalog=./data.json -> map["catalog"]="./data.json")
	BoolFlags        map[string]bool   // Boolean flags (--markdown -> map["markdown"]=true)
	HelpRequested    bool              // If a help flag (--help, -h) was detected
	VersionRequested bool              // If a version flag (--version) was detected
	Errors           []error           // Any parsing errors encountered
}

// BooleanFlags never consume the following argument as a value, so
// `ngs --debug list` keeps "list" as the command.
var BooleanFlags = map[string]bool{
	"help":     true,
	"h":        true,
	"version":  true,
	"debug":    true,
	"verbose":  true,
	"markdown": true,
}

// LogLevel applies the global --debug and --verbose switches to the
// configured level. --debug wins; --verbose lifts warn or error to info.
func (a CommandArgs) LogLevel(configured string) string {
	switch {
	case a.Bool("debug", ""):
		return "debug"
	case a.Bool("verbose", ""):
		switch strings.ToLower(configured) {
		case "warn", "error":
			return "info"
		}
	}
	return configured
}

// Flag returns the value of a value flag by long or short name.
func (a CommandArgs) Flag(long, short string) (string, bool) {
	if v, ok := a.Flags[long]; ok {
		return v, true
	}
	if short != "" {
		if v, ok := a.Flags[short]; ok {
			return v, true
		}
	}
	return "", false
}

// Bool reports whether a boolean flag was given by long or short name.
func (a CommandArgs) Bool(long, short string) bool {
	return a.BoolFlags[long] || (short != "" && a.BoolFlags[short])
}

// List splits a comma-separated flag value, dropping empty items.
func (a CommandArgs) List(long, short string) []string {
	raw, ok := a.Flag(long, short)
	if !ok {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseCommandLineArgs processes the raw command-line arguments using a command registry checker.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	// Global intents are captured regardless of position.
	for _, arg := range rawArgs {
		switch arg {
		case "--help", "-h":
			parsed.HelpRequested = true
		case "--version":
			parsed.VersionRequested = true
		}
	}

	var rest []string
	parsed.CommandName, rest = resolveCommand(rawArgs, registry)
	parseFlagsAndVariables(rest, &parsed)
	return parsed
}

// resolveCommand finds the command name among the first two non-flag words
// (two-word commands win) and returns the remaining args. Words that follow
// a value flag are not candidates.
func resolveCommand(rawArgs []string, registry CommandRegistryChecker) (string, []string) {
	var candidates []int
	for i := 0; i < len(rawArgs) && len(candidates) < 2; i++ {
		arg := rawArgs[i]
		if strings.HasPrefix(arg, "-") {
			if takesNextAsValue(arg) && i+1 < len(rawArgs) && !strings.HasPrefix(rawArgs[i+1], "-") {
				i++
			}
			continue
		}
		candidates = append(candidates, i)
	}

	without := func(skip ...int) []string {
		out := make([]string, 0, len(rawArgs))
		for i, arg := range rawArgs {
			keep := true
			for _, s := range skip {
				if i == s {
					keep = false
				}
			}
			if keep {
				out = append(out, arg)
			}
		}
		return out
	}

	if len(candidates) == 2 {
		name := rawArgs[candidates[0]] + " " + rawArgs[candidates[1]]
		if registry.CommandExists(name) {
			return name, without(candidates...)
		}
	}
	if len(candidates) >= 1 && registry.CommandExists(rawArgs[candidates[0]]) {
		return rawArgs[candidates[0]], without(candidates[0])
	}
	// Not a command: every word stays a variable.
	return "", without()
}

func takesNextAsValue(arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if strings.Contains(name, "=") {
		return false
	}
	if !strings.HasPrefix(arg, "--") && len(name) > 1 {
		name = name[len(name)-1:]
	}
	return !BooleanFlags[name]
}

func parseFlagsAndVariables(args []string, parsed *CommandArgs) {
	setValue := func(prefix, name, value string) {
		if _, exists := parsed.Flags[name]; exists {
			parsed.Errors = append(parsed.Errors, fmt.Errorf("flag provided more than once: %s%s", prefix, name))
		}
		parsed.Flags[name] = value
	}
	setBool := func(prefix, name string) {
		if _, exists := parsed.BoolFlags[name]; exists {
			parsed.Errors = append(parsed.Errors, fmt.Errorf("boolean flag provided more than once: %s%s", prefix, name))
		}
		parsed.BoolFlags[name] = true
	}
	nextValue := func(i int, name string) (string, bool) {
		if BooleanFlags[name] || i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
			return "", false
		}
		return args[i+1], true
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--version":
			continue

		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			if n, v, ok := strings.Cut(name, "="); ok {
				setValue("--", n, v)
			} else if v, ok := nextValue(i, name); ok {
				setValue("--", name, v)
				i++
			} else {
				setBool("--", name)
			}

		case strings.HasPrefix(arg, "-"):
			chars := strings.TrimPrefix(arg, "-")
			if chars == "" {
				parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))
				continue
			}
			// Grouped short flags: only the last one may take a value.
			for j, r := range chars {
				name := string(r)
				if j == len(chars)-1 {
					if v, ok := nextValue(i, name); ok {
						setValue("-", name, v)
						i++
						break
					}
				}
				setBool("-", name)
			}

		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}
}
