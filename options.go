package optparse

import (
	"strings"

	"github.com/bradfitz/iter"
)

// An ordered registry of options. Declaration order is kept for reporting
// and usage.
//
// Parsing stores per-option state in the registry, so a registry must not
// be parsed concurrently.
type Options struct {
	opts     []*Option
	coercers coercerTable
}

func New() *Options {
	return &Options{
		coercers: newCoercerTable(),
	}
}

// Declares an option. flags must each begin with "-" and not be declared
// already. cb may be nil.
func (me *Options) Add(flags []string, desc string, c Config, cb func(interface{})) (*Option, error) {
	if len(flags) == 0 {
		return nil, configErrorf("option has no flags")
	}
	seen := make(map[string]struct{}, len(flags))
	for _, f := range flags {
		if err := checkFlag(f); err != nil {
			return nil, err
		}
		if _, ok := seen[f]; ok {
			return nil, &DuplicateFlagError{f}
		}
		seen[f] = struct{}{}
		if me.Lookup(f, false) != nil {
			return nil, &DuplicateFlagError{f}
		}
	}
	key := flagKey(flags)
	if err := me.checkKey(key); err != nil {
		return nil, err
	}
	co, err := me.coercers.lookup(c)
	if err != nil {
		return nil, err
	}
	if c.Coerce != nil {
		c.Type = TypeCustom
	} else if c.Type == "" {
		c.Type = TypeString
	}
	o := &Option{
		Flags:       append([]string(nil), flags...),
		Description: desc,
		Config:      c,
		Callback:    cb,
		key:         key,
		coercer:     co,
	}
	o.argMode, err = resolveArgMode(c, co)
	if err != nil {
		return nil, err
	}
	o.defaultValue, err = o.coerceDefault()
	if err != nil {
		return nil, err
	}
	me.opts = append(me.opts, o)
	return o, nil
}

// Add, panicking on error. Intended for declarations fixed at compile time.
func (me *Options) MustAdd(flags []string, desc string, c Config, cb func(interface{})) *Option {
	o, err := me.Add(flags, desc, c, cb)
	if err != nil {
		panic(err)
	}
	return o
}

// Makes t usable as Config.Type for options added to this registry
// afterwards.
func (me *Options) RegisterType(t Type, f CoerceFunc) error {
	return me.coercers.register(t, f)
}

func checkFlag(f string) error {
	if !strings.HasPrefix(f, "-") {
		return configErrorf("flag %q must begin with -", f)
	}
	name := trimFlag(f)
	if name == "" {
		return configErrorf("flag %q has no name", f)
	}
	if strings.HasPrefix(f, "---") {
		return configErrorf("flag %q has too many leading -", f)
	}
	if strings.ContainsAny(name, "= \t\n") {
		return configErrorf("flag %q contains = or whitespace", f)
	}
	return nil
}

func (me *Options) checkKey(key string) error {
	for _, o := range me.opts {
		if o.key == key {
			return configErrorf("key %q already used by %s", key, strings.Join(o.Flags, ", "))
		}
	}
	return nil
}

func resolveArgMode(c Config, co coercer) (ArgMode, error) {
	if !co.takesArg {
		if c.Arg == ArgRequired || c.Arg == ArgOptional {
			return 0, configErrorf("type %q does not take an argument", c.Type)
		}
		return ArgNone, nil
	}
	switch c.Arg {
	case ArgDefault:
		return ArgRequired, nil
	case ArgNone, ArgRequired, ArgOptional:
		return c.Arg, nil
	default:
		return 0, configErrorf("bad arg mode: %d", c.Arg)
	}
}

func (me *Option) coerceDefault() (interface{}, error) {
	s, ok := me.Default.(string)
	if !ok || !me.coercer.takesArg {
		return me.Default, nil
	}
	v, err := me.coercer.coerce(me, s)
	if err != nil {
		return nil, configErrorf("default for %s: %v", me.key, err)
	}
	return v, nil
}

// Finds the option declaring flag exactly, or ignoring case.
func (me *Options) Lookup(flag string, ignoreCase bool) *Option {
	for _, o := range me.opts {
		if o.hasFlag(flag, ignoreCase) {
			return o
		}
	}
	return nil
}

// Finds an option by key or flag, with or without leading hyphens. A declared
// flag matches first, then a key, then a flag with its hyphens removed.
func (me *Options) Find(key string) *Option {
	for pass := range iter.N(3) {
		for _, o := range me.opts {
			if o.matches(key, pass) {
				return o
			}
		}
	}
	return nil
}

// All options in declaration order.
func (me *Options) All() []*Option {
	return append([]*Option(nil), me.opts...)
}

func (me *Options) Len() int {
	return len(me.opts)
}

// Options matched at least once in the last parse.
func (me *Options) Used() (ret []*Option) {
	for _, o := range me.opts {
		if o.state.count > 0 {
			ret = append(ret, o)
		}
	}
	return
}

// Options not matched in the last parse.
func (me *Options) Unused() (ret []*Option) {
	for _, o := range me.opts {
		if o.state.count == 0 {
			ret = append(ret, o)
		}
	}
	return
}

func (me *Options) reset() {
	for _, o := range me.opts {
		o.state.reset()
	}
}
