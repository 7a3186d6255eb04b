package optparse

import (
	"fmt"
	"strings"
)

// Problems with how options were declared. These are programmer errors and
// are returned from Options.Add rather than from parsing.
type ConfigError struct {
	Msg string
}

func (me *ConfigError) Error() string {
	return me.Msg
}

func configErrorf(format string, a ...interface{}) *ConfigError {
	return &ConfigError{fmt.Sprintf(format, a...)}
}

// An option was added with a flag that is already declared.
type DuplicateFlagError struct {
	Flag string
}

func (me *DuplicateFlagError) Error() string {
	return fmt.Sprintf("flag %q defined more than once", me.Flag)
}

// An option that requires an argument reached the end of the input, or was
// followed by something that looks like another flag.
type MissingArgumentError struct {
	Flags []string
}

func (me *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument for %s", strings.Join(me.Flags, ", "))
}

// A supplied argument didn't match the option's pattern, or couldn't be
// converted to the option's type.
type InvalidArgumentError struct {
	Flags []string
	Value string
	Err   error
}

func (me *InvalidArgumentError) Error() string {
	s := fmt.Sprintf("invalid argument %q for %s", me.Value, strings.Join(me.Flags, ", "))
	if me.Err != nil {
		s += ": " + me.Err.Error()
	}
	return s
}

func (me *InvalidArgumentError) Unwrap() error {
	return me.Err
}

// One or more required options were not given. Keys are in declaration
// order.
type MissingOptionError struct {
	Keys []string
}

func (me *MissingOptionError) Error() string {
	return fmt.Sprintf("missing required option: %s", quoteJoin(me.Keys))
}

// Flag-like tokens that matched no option, collected in strict mode. Flags
// are in the order they were encountered.
type UnknownOptionError struct {
	Flags []string
}

func (me *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", quoteJoin(me.Flags))
}

type DuplicateCommandError struct {
	Name string
}

func (me *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command %q defined more than once", me.Name)
}

type UnknownCommandError struct {
	Name string
}

func (me *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %q", me.Name)
}

func quoteJoin(ss []string) string {
	qs := make([]string, 0, len(ss))
	for _, s := range ss {
		qs = append(qs, fmt.Sprintf("%q", s))
	}
	return strings.Join(qs, ", ")
}
