package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// MockRegistryChecker provides a mock implementation for testing.
type MockRegistryChecker struct {
	KnownCommands map[string]bool
}

// CommandExists checks if a command name exists in the mock registry.
func (m MockRegistryChecker) CommandExists(name string) bool {
	_, exists := m.KnownCommands[name]
	return exists
}

// TestParseCommandLineArgs tests the argument parser.
func TestParseCommandLineArgs(t *testing.T) {
	mockRegistry := MockRegistryChecker{
		KnownCommands: map[string]bool{
			"list":        true,
			"categories":  true,
			"show":        true,
			"copy":        true,
			"config":      true,
			"config show": true, // Multi-word
		},
	}

	testCases := []struct {
		name       string
		args       []string
		expected   CommandArgs
		wantErrors int
	}{
		{
			name: "No Args",
			args: []string{},
			expected: CommandArgs{
				Variables: []string{},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
			},
		},
		{
			name: "Version Flag",
			args: []string{"--version"},
			expected: CommandArgs{
				VersionRequested: true,
				Variables:        []string{},
				Flags:            map[string]string{},
				BoolFlags:        map[string]bool{},
			},
		},
		{
			name: "General Help Flag",
			args: []string{"--help"},
			expected: CommandArgs{
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
			},
		},
		{
			name: "Short Help Flag",
			args: []string{"-h"},
			expected: CommandArgs{
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"h": true},
			},
		},
		{
			name: "Command Specific Help",
			args: []string{"list", "--help"},
			expected: CommandArgs{
				CommandName:   "list",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
			},
		},
		{
			name: "Multi-word Command",
			args: []string{"config", "show", "--markdown"},
			expected: CommandArgs{
				CommandName: "config show",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"markdown": true},
			},
		},
		{
			name: "Command with Value and Bool Flags",
			args: []string{"list", "--category", "blog,resume", "--query=cv", "--markdown"},
			expected: CommandArgs{
				CommandName: "list",
				Variables:   []string{},
				Flags:       map[string]string{"category": "blog,resume", "query": "cv"},
				BoolFlags:   map[string]bool{"markdown": true},
			},
		},
		{
			name: "Boolean Flag Before Command",
			args: []string{"--debug", "list"},
			expected: CommandArgs{
				CommandName: "list",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"debug": true},
			},
		},
		{
			name: "Value Flag Before Command",
			args: []string{"--catalog", "./data.json", "show", "blog-classic"},
			expected: CommandArgs{
				CommandName: "show",
				Variables:   []string{"blog-classic"},
				Flags:       map[string]string{"catalog": "./data.json"},
				BoolFlags:   map[string]bool{},
			},
		},
		{
			name: "Flags Only",
			args: []string{"--catalog", "https://example.com/data.json"},
			expected: CommandArgs{
				Variables: []string{},
				Flags:     map[string]string{"catalog": "https://example.com/data.json"},
				BoolFlags: map[string]bool{},
			},
		},
		{
			name: "Combined Short Flags",
			args: []string{"cmd", "-abc", "valueForC"},
			expected: CommandArgs{
				Variables: []string{"cmd"},
				Flags:     map[string]string{"c": "valueForC"},
				BoolFlags: map[string]bool{"a": true, "b": true},
			},
		},
		{
			name: "Unknown Command",
			args: []string{"unknowncmd", "arg1"},
			expected: CommandArgs{
				Variables: []string{"unknowncmd", "arg1"},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
			},
		},
		{
			name: "Duplicate Flag",
			args: []string{"list", "--query", "a", "--query", "b"},
			expected: CommandArgs{
				CommandName: "list",
				Variables:   []string{},
				Flags:       map[string]string{"query": "b"},
				BoolFlags:   map[string]bool{},
			},
			wantErrors: 1,
		},
		{
			name: "Bare Dash",
			args: []string{"list", "-"},
			expected: CommandArgs{
				CommandName: "list",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
			},
			wantErrors: 1,
		},
	}

	ignore := cmpopts.IgnoreFields(CommandArgs{}, "RawArgs", "Errors")
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ParseCommandLineArgs(tc.args, mockRegistry)

			if diff := cmp.Diff(tc.expected, actual, ignore); diff != "" {
				t.Errorf("parse mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.args, actual.RawArgs); diff != "" {
				t.Errorf("RawArgs mismatch (-want +got):\n%s", diff)
			}
			if len(actual.Errors) != tc.wantErrors {
				t.Errorf("Errors length mismatch: expected %d, got %d (Errors: %v)", tc.wantErrors, len(actual.Errors), actual.Errors)
			}
		})
	}
}

func TestCommandArgsAccessors(t *testing.T) {
	args := CommandArgs{
		Flags:     map[string]string{"c": "blog, resume,,", "query": "cv"},
		BoolFlags: map[string]bool{"markdown": true},
	}

	if got, ok := args.Flag("query", "q"); !ok || got != "cv" {
		t.Errorf("Flag(query) = %q, %t", got, ok)
	}
	if _, ok := args.Flag("catalog", ""); ok {
		t.Errorf("Flag(catalog) should be absent")
	}
	if diff := cmp.Diff([]string{"blog", "resume"}, args.List("category", "c")); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
	if args.List("tags", "t") != nil {
		t.Errorf("List of missing flag should be nil")
	}
	if !args.Bool("markdown", "m") || args.Bool("debug", "") {
		t.Errorf("Bool lookups wrong")
	}
}

func TestLogLevel(t *testing.T) {
	registry := MockRegistryChecker{KnownCommands: map[string]bool{"list": true}}
	cases := []struct {
		name       string
		args       []string
		configured string
		want       string
	}{
		{"no switches", []string{"list"}, "warn", "warn"},
		{"debug", []string{"--debug", "list"}, "error", "debug"},
		{"verbose lifts warn", []string{"--verbose", "list"}, "warn", "info"},
		{"verbose lifts error", []string{"list", "--verbose"}, "error", "info"},
		{"verbose keeps debug", []string{"--verbose"}, "debug", "debug"},
		{"debug beats verbose", []string{"--verbose", "--debug"}, "warn", "debug"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := ParseCommandLineArgs(tc.args, registry)
			if got := args.LogLevel(tc.configured); got != tc.want {
				t.Errorf("LogLevel(%q) = %q, want %q", tc.configured, got, tc.want)
			}
		})
	}

	// --verbose stays a switch, so the command after it still resolves.
	args := ParseCommandLineArgs([]string{"--verbose", "list"}, registry)
	if args.CommandName != "list" {
		t.Errorf("CommandName = %q, want list", args.CommandName)
	}
}
