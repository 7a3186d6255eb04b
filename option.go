package optparse

import (
	"regexp"
	"strings"
)

// Whether an option consumes an argument.
type ArgMode int

const (
	// Required for types that take an argument, none for the switch types.
	ArgDefault ArgMode = iota
	ArgNone
	ArgRequired
	// An argument is consumed if the next token doesn't look like a flag.
	ArgOptional
)

func (me ArgMode) String() string {
	switch me {
	case ArgDefault:
		return "default"
	case ArgNone:
		return "none"
	case ArgRequired:
		return "required"
	case ArgOptional:
		return "optional"
	default:
		return "invalid"
	}
}

// Declares how an option behaves. The zero value is a string option that
// requires an argument.
type Config struct {
	Type Type
	// Overrides Type with a caller supplied conversion.
	Coerce CoerceFunc
	Arg    ArgMode
	// A string default is coerced like an argument would be. Other values
	// are used as is.
	Default interface{}
	// Raw arguments must match, or parsing fails with InvalidArgumentError.
	Match *regexp.Regexp
	// For TypeList. Defaults to ",".
	Delimiter string
	// For TypeList. Each occurrence is appended whole instead of being split.
	NoSplit bool
	// For TypeList. The maximum number of elements a single argument is
	// split into, with the remainder left in the last element. 0 means no
	// limit.
	Limit    int
	Required bool
	// A missing argument leaves the value absent instead of failing.
	SuppressErrors bool
}

// A declared option. Options are created by Options.Add and must not be
// modified afterwards.
type Option struct {
	Flags       []string
	Description string
	Config
	// Called every time the option is matched, with its current value.
	Callback func(value interface{})

	key          string
	coercer      coercer
	argMode      ArgMode
	defaultValue interface{}

	state optionState
}

// What happened to an Option during the most recent parse.
type optionState struct {
	count int
	// The last raw argument, if any.
	raw    string
	hasRaw bool
	// A negation set the value.
	forced bool
	// Whether value was assigned by the parse, rather than left to the
	// default.
	set   bool
	value interface{}
}

func (me *optionState) reset() {
	*me = optionState{}
}

// The long flag without its prefix, or if there isn't one, the short flag.
func (me *Option) Key() string {
	return me.key
}

func (me *Option) ArgMode() ArgMode {
	return me.argMode
}

func (me *Option) TakesArgument() bool {
	return me.argMode == ArgRequired || me.argMode == ArgOptional
}

// Value-discarding options are observable through their count and callback
// but are left out of Result.ToMap.
func (me *Option) discardsValue() bool {
	return me.Type == TypeNull
}

// The last raw argument given in the most recent parse, before coercion.
func (me *Option) Raw() (string, bool) {
	return me.state.raw, me.state.hasRaw
}

// The number of times the option was matched in the last parse.
func (me *Option) Count() int {
	return me.state.count
}

// The option's value as of the last parse.
func (me *Option) Value() interface{} {
	s := &me.state
	switch me.Type {
	case TypeCount:
		if s.count == 0 && me.defaultValue != nil {
			return me.defaultValue
		}
		return s.count
	case TypeBool, TypeNull:
		if s.forced || s.set {
			return s.value
		}
		if s.count != 0 {
			return true
		}
		if me.defaultValue != nil {
			return me.defaultValue
		}
		return false
	case TypeList:
		if s.set || s.forced {
			return s.value
		}
		if me.defaultValue != nil {
			return me.defaultValue
		}
		return []string{}
	}
	if s.set || s.forced {
		return s.value
	}
	return me.defaultValue
}

func (me *Option) splitList(s string) []string {
	if me.NoSplit {
		return []string{s}
	}
	delim := me.Delimiter
	if delim == "" {
		delim = ","
	}
	n := me.Limit
	if n <= 0 {
		n = -1
	}
	return strings.SplitN(s, delim, n)
}

// Records a coerced argument. Lists accumulate across occurrences.
func (me *Option) store(raw string, v interface{}) {
	s := &me.state
	s.raw = raw
	s.hasRaw = true
	s.forced = false
	if me.Type == TypeList {
		var l []string
		if s.set {
			l, _ = s.value.([]string)
		}
		// Copied so values handed to callbacks aren't appended to later.
		s.value = append(append([]string(nil), l...), v.([]string)...)
	} else {
		s.value = v
	}
	s.set = true
}

func (me *Option) force(v interface{}) {
	me.state.value = v
	me.state.forced = true
	me.state.set = true
}

func (me *Option) call() {
	if me.Callback != nil {
		me.Callback(me.Value())
	}
}

func (me *Option) hasFlag(flag string, ignoreCase bool) bool {
	for _, f := range me.Flags {
		if f == flag || ignoreCase && strings.EqualFold(f, flag) {
			return true
		}
	}
	return false
}

// Matches s against the option for lookups by key or flag. Pass 0 is an exact
// declared flag, pass 1 the key and pass 2 any flag without its hyphens.
func (me *Option) matches(s string, pass int) bool {
	switch pass {
	case 0:
		return me.hasFlag(s, false)
	case 1:
		return me.key == trimFlag(s)
	}
	for _, f := range me.Flags {
		if trimFlag(f) == trimFlag(s) {
			return true
		}
	}
	return false
}

func trimFlag(flag string) string {
	return strings.TrimLeft(flag, "-")
}

func flagKey(flags []string) string {
	for _, f := range flags {
		if strings.HasPrefix(f, "--") {
			return trimFlag(f)
		}
	}
	return trimFlag(flags[0])
}
