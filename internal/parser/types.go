package parser

import "strings"

// Intent is the parsed form of one line of player input. Verb is the
// canonical command when a match was found; Suggestion is the closest
// known command when it was not.
type Intent struct {
	Raw        string
	Normalised string
	Verb       string
	Args       []string
	Confidence float64
	Suggestion string
}

// Matched reports whether the input resolved to a runnable command.
func (i Intent) Matched() bool {
	return i.Verb != ""
}

// Command rebuilds the canonical command line for the session layer.
func (i Intent) Command() string {
	if i.Verb == "" {
		return ""
	}
	if len(i.Args) == 0 {
		return i.Verb
	}
	return i.Verb + " " + strings.Join(i.Args, " ")
}

// CommandDef declares a canonical verb and the spoken aliases that map
// onto it.
type CommandDef struct {
	Canonical string
	Aliases   []string
}
