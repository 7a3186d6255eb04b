package optparse

import (
	"github.com/anacrolix/missinggo/v2"
	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
)

// How Result.ToMap names its keys.
type KeyStyle int

const (
	// Keys as declared, e.g. "dry-run".
	KeyFlag KeyStyle = iota
	// "dry_run"
	KeySnake
	// "dry-run", also converting underscores and camel case.
	KeyKebab
	// "dryRun"
	KeyCamel
)

func (me KeyStyle) apply(key string) string {
	switch me {
	case KeySnake:
		return xstrings.ToSnakeCase(key)
	case KeyKebab:
		return missinggo.KebabCase(key)
	case KeyCamel:
		return xstrings.FirstRuneToLower(xstrings.ToCamelCase(xstrings.ToSnakeCase(key)))
	default:
		return key
	}
}

type resultEntry struct {
	opt   *Option
	count int
	value interface{}
}

// The outcome of a parse. It's a snapshot: later parses with the same
// registry don't change it.
type Result struct {
	entries []resultEntry
	args    []string
}

func newResult(opts *Options, free []string) *Result {
	r := &Result{
		entries: make([]resultEntry, 0, len(opts.opts)),
		args:    append([]string{}, free...),
	}
	for _, o := range opts.opts {
		v := o.Value()
		if l, ok := v.([]string); ok {
			v = append([]string{}, l...)
		}
		r.entries = append(r.entries, resultEntry{
			opt:   o,
			count: o.state.count,
			value: v,
		})
	}
	return r
}

func (me *Result) find(key string) *resultEntry {
	for pass := range iter.N(3) {
		for i := range me.entries {
			if me.entries[i].opt.matches(key, pass) {
				return &me.entries[i]
			}
		}
	}
	return nil
}

// The value of the option with the given key or flag, or nil if there is no
// such option. Matching follows Options.Find.
func (me *Result) Get(key string) interface{} {
	v, _ := me.Lookup(key)
	return v
}

// Like Get, but ok is false if no option has the key.
func (me *Result) Lookup(key string) (v interface{}, ok bool) {
	e := me.find(key)
	if e == nil {
		return
	}
	return e.value, true
}

// Whether the option was given at least once.
func (me *Result) Present(key string) bool {
	return me.Count(key) > 0
}

func (me *Result) Count(key string) int {
	e := me.find(key)
	if e == nil {
		return 0
	}
	return e.count
}

// Every option's value, except those of value-discarding options. Keys are
// unique as declared, so KeyFlag gives one entry per remaining option. The
// other styles can map distinct keys to the same name, like "dry-run" and
// "dry_run" under KeySnake, or "v" and "V". The first declared option keeps
// the name and the others are left out; StyleCollisions reports them.
func (me *Result) ToMap(style KeyStyle) map[string]interface{} {
	ret := make(map[string]interface{}, len(me.entries))
	for _, e := range me.entries {
		if e.opt.discardsValue() {
			continue
		}
		k := style.apply(e.opt.key)
		if _, ok := ret[k]; ok {
			continue
		}
		ret[k] = e.value
	}
	return ret
}

// Keys of options that ToMap(style) leaves out because an earlier declared
// option's key has the same styled form.
func (me *Result) StyleCollisions(style KeyStyle) (ret []string) {
	seen := make(map[string]struct{}, len(me.entries))
	for _, e := range me.entries {
		if e.opt.discardsValue() {
			continue
		}
		k := style.apply(e.opt.key)
		if _, ok := seen[k]; ok {
			ret = append(ret, e.opt.key)
			continue
		}
		seen[k] = struct{}{}
	}
	return
}

// Tokens that weren't flags or flag arguments, in order. This includes
// everything after "--".
func (me *Result) Args() []string {
	return append([]string(nil), me.args...)
}

func (me *Result) Used() (ret []*Option) {
	for _, e := range me.entries {
		if e.count > 0 {
			ret = append(ret, e.opt)
		}
	}
	return
}

func (me *Result) Unused() (ret []*Option) {
	for _, e := range me.entries {
		if e.count == 0 {
			ret = append(ret, e.opt)
		}
	}
	return
}

func (me *Result) String(key string) string {
	switch v := me.Get(key).(type) {
	case string:
		return v
	case Symbol:
		return string(v)
	default:
		return ""
	}
}

func (me *Result) Int(key string) int {
	i, _ := me.Get(key).(int)
	return i
}

func (me *Result) Float(key string) float64 {
	f, _ := me.Get(key).(float64)
	return f
}

func (me *Result) Bool(key string) bool {
	b, _ := me.Get(key).(bool)
	return b
}

func (me *Result) Strings(key string) []string {
	l, _ := me.Get(key).([]string)
	return append([]string(nil), l...)
}
