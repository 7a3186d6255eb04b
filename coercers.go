package optparse

import (
	"github.com/pkg/errors"
)

// Converts an option's raw argument to its value. Returning an error causes
// the parse to fail with an InvalidArgumentError.
type CoerceFunc func(s string) (interface{}, error)

type coercer struct {
	// False for the switch types, which never consume an argument.
	takesArg bool
	coerce   func(o *Option, s string) (interface{}, error)
}

func customCoercer(f CoerceFunc) coercer {
	return coercer{
		takesArg: true,
		coerce: func(_ *Option, s string) (interface{}, error) {
			return f(s)
		},
	}
}

// The table of coercers a registry resolves type tags against. Each registry
// gets its own copy, so RegisterType doesn't leak between registries.
type coercerTable map[Type]coercer

func newCoercerTable() coercerTable {
	ret := make(coercerTable, len(builtinCoercers))
	for t, c := range builtinCoercers {
		ret[t] = c
	}
	return ret
}

func (me coercerTable) register(t Type, f CoerceFunc) error {
	if t == "" {
		return configErrorf("empty type tag")
	}
	if f == nil {
		return configErrorf("nil coerce func for type %q", t)
	}
	if _, ok := builtinCoercers[t]; ok || t == TypeCustom {
		return configErrorf("type %q is builtin", t)
	}
	me[t] = customCoercer(f)
	return nil
}

func (me coercerTable) lookup(c Config) (coercer, error) {
	if c.Coerce != nil {
		if c.Type != "" && c.Type != TypeCustom {
			return coercer{}, configErrorf("coerce func given with type %q", c.Type)
		}
		return customCoercer(c.Coerce), nil
	}
	t := c.Type
	if t == "" {
		t = TypeString
	}
	if t == TypeCustom {
		return coercer{}, configErrorf("type %q requires a coerce func", t)
	}
	ret, ok := me[t]
	if !ok {
		return coercer{}, configErrorf("unknown type %q", t)
	}
	return ret, nil
}

// Runs the coercer for o on s, wrapping failures so callers see which option
// was involved.
func (me coercer) apply(o *Option, s string) (interface{}, error) {
	v, err := me.coerce(o, s)
	if err != nil {
		return nil, &InvalidArgumentError{
			Flags: o.Flags,
			Value: s,
			Err:   errors.WithStack(err),
		}
	}
	return v, nil
}
