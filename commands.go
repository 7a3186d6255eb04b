package optparse

import (
	"strings"

	"golang.org/x/xerrors"
)

// Anything that parses an argument list in place, removing what it consumes.
// *Parser implements it.
type ArgsParser interface {
	ParseArgs(args *[]string) (*Result, error)
}

var _ ArgsParser = (*Parser)(nil)

// Routes an argument list to a nested parser chosen by its first token.
type Commands struct {
	strict   bool
	names    []string
	commands map[string]ArgsParser
	global   ArgsParser
	default_ ArgsParser
}

// If strict, a first token that doesn't begin with "-" and isn't a known
// command is an UnknownCommandError.
func NewCommands(strict bool) *Commands {
	return &Commands{
		strict:   strict,
		commands: make(map[string]ArgsParser),
	}
}

func (me *Commands) Add(name string, p ArgsParser) error {
	if _, ok := me.commands[name]; ok {
		return &DuplicateCommandError{name}
	}
	me.commands[name] = p
	me.names = append(me.names, name)
	return nil
}

// Sets a parser that runs on whatever remains after the command or default
// parser.
func (me *Commands) Global(p ArgsParser) {
	me.global = p
}

// Sets a parser used when the first token isn't a command.
func (me *Commands) Default(p ArgsParser) {
	me.default_ = p
}

// Command names in the order they were added.
func (me *Commands) Names() []string {
	return append([]string(nil), me.names...)
}

func (me *Commands) Lookup(name string) ArgsParser {
	return me.commands[name]
}

type CommandResult struct {
	// Empty if no command matched.
	Name string
	// From the command or the default parser. Nil if neither ran.
	Result *Result
	// Nil if there is no global parser.
	Global *Result
}

// Routes args and returns the tokens no parser consumed. args is not
// modified.
func (me *Commands) Parse(args []string) (cr *CommandResult, left []string, err error) {
	left = append([]string(nil), args...)
	cr = &CommandResult{}
	if len(left) != 0 {
		if p, ok := me.commands[left[0]]; ok {
			cr.Name = left[0]
			left = left[1:]
			cr.Result, err = p.ParseArgs(&left)
			if err != nil {
				return nil, nil, xerrors.Errorf("command %q: %w", cr.Name, err)
			}
			return me.parseGlobal(cr, left)
		}
		if me.strict && !strings.HasPrefix(left[0], "-") {
			return nil, nil, &UnknownCommandError{left[0]}
		}
	}
	if me.default_ != nil {
		cr.Result, err = me.default_.ParseArgs(&left)
		if err != nil {
			return nil, nil, xerrors.Errorf("default options: %w", err)
		}
	}
	return me.parseGlobal(cr, left)
}

func (me *Commands) parseGlobal(cr *CommandResult, left []string) (*CommandResult, []string, error) {
	if me.global == nil {
		return cr, left, nil
	}
	var err error
	cr.Global, err = me.global.ParseArgs(&left)
	if err != nil {
		return nil, nil, xerrors.Errorf("global options: %w", err)
	}
	return cr, left, nil
}
