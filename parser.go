package optparse

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/anacrolix/missinggo/v2"
	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Parses argument lists against an Options registry. The registry holds the
// state of the most recent parse, so calls must be serialized.
type Parser struct {
	opts *Options

	strict             bool
	noMultipleSwitches bool
	ignoreCase         bool
	suppressErrors     bool
	logger             *slog.Logger
}

func NewParser(opts *Options, parseOpts ...parseOpt) *Parser {
	p := &Parser{
		opts: opts,
	}
	for _, po := range parseOpts {
		po(p)
	}
	return p
}

func (p *Parser) Options() *Options {
	return p.opts
}

// Parses args, leaving it unmodified.
func (p *Parser) Parse(args []string) (*Result, error) {
	r, _, err := p.parse(args)
	return r, err
}

// Parses *args, and on success removes the flags, their arguments and any
// "--" from it. The remaining tokens keep their order. *args is untouched if
// an error is returned.
func (p *Parser) ParseArgs(args *[]string) (*Result, error) {
	r, consumed, err := p.parse(*args)
	if err != nil {
		return nil, err
	}
	*args = removeConsumed(*args, consumed)
	return r, nil
}

func (p *Parser) parse(args []string) (r *Result, consumed []bool, err error) {
	p.opts.reset()
	s := scan{
		Parser:   p,
		args:     args,
		consumed: make([]bool, len(args)),
	}
	err = s.run()
	if err != nil {
		return
	}
	err = s.finish()
	if err != nil {
		return
	}
	return newResult(p.opts, s.free), s.consumed, nil
}

func removeConsumed(args []string, consumed []bool) []string {
	ret := args[:0]
	for i, a := range args {
		if !consumed[i] {
			ret = append(ret, a)
		}
	}
	for i := len(ret); i < len(args); i++ {
		args[i] = ""
	}
	return ret
}

var flagShapeRegexp = regexp.MustCompile(`^--?[a-zA-Z]`)

// Whether a token would be taken for a flag rather than a value. Negative
// numbers are not flag shaped.
func looksLikeFlag(s string) bool {
	return flagShapeRegexp.MatchString(s)
}

// The state of a single pass over an argument list.
type scan struct {
	*Parser
	args []string
	// The token being processed.
	i        int
	consumed []bool
	free     []string
	unknown  []string
}

func (s *scan) run() error {
	for ; s.i < len(s.args); s.i++ {
		tok := s.args[s.i]
		if tok == "--" {
			s.consumed[s.i] = true
			s.free = append(s.free, s.args[s.i+1:]...)
			return nil
		}
		if !strings.HasPrefix(tok, "-") || tok == "-" {
			s.free = append(s.free, tok)
			continue
		}
		matched, err := s.parseFlag(tok)
		if err != nil {
			return err
		}
		if !matched {
			s.unknownFlag(tok)
		}
	}
	return nil
}

func (s *scan) finish() error {
	if s.suppressErrors {
		return nil
	}
	var missing []string
	for _, o := range s.opts.opts {
		if o.Required && o.state.count == 0 {
			missing = append(missing, o.key)
		}
	}
	if len(missing) != 0 {
		return &MissingOptionError{missing}
	}
	if len(s.unknown) != 0 {
		return &UnknownOptionError{s.unknown}
	}
	return nil
}

func (s *scan) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *scan) lookup(flag string) *Option {
	return s.opts.Lookup(flag, s.ignoreCase)
}

// Handles a token beginning with "-". Returns false if no option could be
// matched.
func (s *scan) parseFlag(tok string) (matched bool, err error) {
	flag, eq, value := xstrings.Partition(tok, "=")
	attached := eq != ""
	if o := s.lookup(flag); o != nil {
		s.consumed[s.i] = true
		return true, s.process(o, flag, value, attached, true)
	}
	if o := s.negated(flag); o != nil {
		s.consumed[s.i] = true
		return true, s.negate(o, flag, value, attached)
	}
	if !strings.HasPrefix(flag, "--") && len(flag) > 2 {
		return s.parseGroup(tok, flag, value, attached)
	}
	return false, nil
}

func (s *scan) negated(flag string) *Option {
	const prefix = "--no-"
	if len(flag) <= len(prefix) {
		return nil
	}
	if !strings.HasPrefix(flag, prefix) && !(s.ignoreCase && strings.EqualFold(flag[:len(prefix)], prefix)) {
		return nil
	}
	return s.lookup("--" + flag[len(prefix):])
}

func (s *scan) parseGroup(tok, flag, value string, attached bool) (bool, error) {
	letters := []rune(flag[1:])
	if s.noMultipleSwitches {
		first := "-" + string(letters[0])
		o := s.lookup(first)
		if o == nil || !o.TakesArgument() {
			return false, nil
		}
		s.consumed[s.i] = true
		return true, s.process(o, first, tok[len(first):], true, true)
	}
	opts := make([]*Option, len(letters))
	found := false
	for i := range iter.N(len(letters)) {
		opts[i] = s.lookup("-" + string(letters[i]))
		found = found || opts[i] != nil
	}
	if !found {
		return false, nil
	}
	s.consumed[s.i] = true
	last := len(letters) - 1
	for i := range iter.N(len(letters)) {
		f := "-" + string(letters[i])
		o := opts[i]
		if o == nil {
			s.debug("unknown flag in group", "flag", f, "token", tok)
			if s.strict && !s.suppressErrors {
				s.unknown = append(s.unknown, f)
			}
			continue
		}
		var err error
		if i == last {
			err = s.process(o, f, value, attached, true)
		} else {
			err = s.process(o, f, "", false, false)
		}
		if err != nil {
			return true, err
		}
	}
	return true, nil
}

func (s *scan) unknownFlag(tok string) {
	if looksLikeFlag(tok) && s.strict && !s.suppressErrors {
		flag, _, _ := xstrings.Partition(tok, "=")
		s.debug("unknown flag", "flag", flag)
		s.unknown = append(s.unknown, flag)
		return
	}
	s.free = append(s.free, tok)
}

// Applies a match of o by flag. value is the argument given with "=", if
// attached. lookahead permits consuming the following token as the argument.
func (s *scan) process(o *Option, flag, value string, attached, lookahead bool) error {
	o.state.count++
	s.debug("matched option", "flag", flag, "key", o.key, "count", o.state.count)
	if !o.TakesArgument() {
		if attached {
			return s.switchValue(o, value)
		}
		o.call()
		return nil
	}
	if attached {
		return s.assign(o, value)
	}
	if !lookahead {
		return s.missingArgument(o)
	}
	if s.i+1 >= len(s.args) {
		return s.missingArgument(o)
	}
	next := s.args[s.i+1]
	if next == "--" || looksLikeFlag(next) {
		return s.missingArgument(o)
	}
	s.i++
	s.consumed[s.i] = true
	return s.assign(o, next)
}

// Handles "--flag=value" for options that take no argument. Only bool
// options accept it, taking the truth of the value.
func (s *scan) switchValue(o *Option, value string) error {
	if o.Type != TypeBool {
		return &InvalidArgumentError{
			Flags: o.Flags,
			Value: value,
			Err:   errors.New("option takes no argument"),
		}
	}
	if missinggo.StringTruth(value) {
		o.state.set = true
		o.state.value = true
	} else {
		o.force(false)
	}
	o.call()
	return nil
}

func (s *scan) missingArgument(o *Option) error {
	if o.argMode == ArgOptional || o.SuppressErrors || s.suppressErrors {
		o.call()
		return nil
	}
	return &MissingArgumentError{o.Flags}
}

func (s *scan) assign(o *Option, raw string) error {
	if o.Match != nil && !o.Match.MatchString(raw) {
		return &InvalidArgumentError{
			Flags: o.Flags,
			Value: raw,
			Err:   errors.Errorf("does not match %s", o.Match),
		}
	}
	v, err := o.coercer.apply(o, raw)
	if err != nil {
		return err
	}
	o.store(raw, v)
	o.call()
	return nil
}

func (s *scan) negate(o *Option, flag, value string, attached bool) error {
	o.state.count++
	s.debug("negated option", "flag", flag, "key", o.key)
	if attached {
		return &InvalidArgumentError{
			Flags: o.Flags,
			Value: value,
			Err:   errors.New("negated option takes no argument"),
		}
	}
	switch o.Type {
	case TypeBool, TypeNull:
		o.force(false)
	case TypeCount:
	default:
		o.force(nil)
	}
	o.call()
	return nil
}
