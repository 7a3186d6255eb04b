package optparse

import (
	"errors"
	"net"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, c Config, args ...string) *Result {
	t.Helper()
	opts := New()
	opts.MustAdd([]string{"-x", "--opt"}, "", c, nil)
	r, err := Parse(opts, args)
	require.NoError(t, err)
	return r
}

func TestInt(t *testing.T) {
	for _, _case := range []struct {
		arg      string
		expected interface{}
	}{
		{"20", 20},
		{"-5", -5},
		{"hello", nil},
		{"3.5", nil},
		{"", nil},
		{"99999999999999999999999", nil},
	} {
		r := parseOne(t, Config{Type: TypeInt}, "--opt="+_case.arg)
		assert.Equal(t, _case.expected, r.Get("opt"), "%q", _case.arg)
	}
	assert.Equal(t, 20, parseOne(t, Config{Type: TypeInt}, "--opt", "20").Int("opt"))
}

func TestFloat(t *testing.T) {
	for _, _case := range []struct {
		arg      string
		expected interface{}
	}{
		{"2.9", 2.9},
		{"-2.5", -2.5},
		{".5", 0.5},
		{"3", 3.0},
		{"hello", nil},
		{"1.2.3", nil},
	} {
		r := parseOne(t, Config{Type: TypeFloat}, "--opt="+_case.arg)
		assert.Equal(t, _case.expected, r.Get("opt"), "%q", _case.arg)
	}
}

func TestSymbol(t *testing.T) {
	r := parseOne(t, Config{Type: TypeSymbol}, "--opt", "foo")
	assert.Equal(t, Symbol("foo"), r.Get("opt"))
	assert.Equal(t, "foo", r.String("opt"))
}

func TestList(t *testing.T) {
	for _, _case := range []struct {
		config   Config
		args     []string
		expected []string
	}{
		{Config{Type: TypeList}, nil, []string{}},
		{Config{Type: TypeList, Default: "a,b"}, nil, []string{"a", "b"}},
		{Config{Type: TypeList}, []string{"--opt", "foo.txt,bar.rb"}, []string{"foo.txt", "bar.rb"}},
		{Config{Type: TypeList}, []string{"--opt", "foo.txt", "--opt", "bar.rb"}, []string{"foo.txt", "bar.rb"}},
		{Config{Type: TypeList, NoSplit: true}, []string{"-x", "foo,bar", "-x", "bar,qux"}, []string{"foo,bar", "bar,qux"}},
		{Config{Type: TypeList, Delimiter: ":"}, []string{"-x", "foo.txt:bar.rb"}, []string{"foo.txt", "bar.rb"}},
		{Config{Type: TypeList, Delimiter: ":"}, []string{"-x", "foo,bar"}, []string{"foo,bar"}},
		{Config{Type: TypeList, Limit: 2}, []string{"-x", "foo,bar,baz"}, []string{"foo", "bar,baz"}},
		{Config{Type: TypeList, Limit: 3}, []string{"-x", "foo,bar,baz,etc"}, []string{"foo", "bar", "baz,etc"}},
	} {
		r := parseOne(t, _case.config, _case.args...)
		assert.Equal(t, _case.expected, r.Get("opt"), "%q", _case.args)
	}
}

func TestListRoundTrip(t *testing.T) {
	for _, raw := range []string{"a", "a,b,c", "a,,b", ",", "a,b,", ""} {
		r := parseOne(t, Config{Type: TypeList}, "--opt="+raw)
		assert.Equal(t, raw, strings.Join(r.Strings("opt"), ","))
	}
}

func TestRange(t *testing.T) {
	for _, _case := range []struct {
		arg      string
		expected interface{}
	}{
		{"1..10", Range{1, 10, false}},
		{"1-10", Range{1, 10, false}},
		{"10-20", Range{10, 20, false}},
		{"1,10", Range{1, 10, false}},
		{"1...10", Range{1, 10, true}},
		{"-1..10", Range{-1, 10, false}},
		{"1..-10", Range{1, -10, false}},
		{"1", Range{1, 1, false}},
		{"-3", Range{-3, -3, false}},
		{"foo", "foo"},
		{"1..", "1.."},
	} {
		assert.Equal(t, _case.expected, coerceRange(_case.arg), "%q", _case.arg)
	}
	r := parseOne(t, Config{Type: TypeRange}, "--opt", "-1..10")
	assert.Equal(t, Range{-1, 10, false}, r.Get("opt"))
}

func TestRangeContains(t *testing.T) {
	assert.True(t, Range{1, 10, false}.Contains(10))
	assert.False(t, Range{1, 10, true}.Contains(10))
	assert.False(t, Range{1, 10, false}.Contains(0))
	assert.Equal(t, "1...10", Range{1, 10, true}.String())
}

func TestNull(t *testing.T) {
	opts := New()
	opts.MustAdd([]string{"--version"}, "", Config{Type: TypeNull}, nil)
	r, err := Parse(opts, []string{"--version"})
	require.NoError(t, err)
	assert.Equal(t, true, r.Get("version"))
	assert.True(t, r.Present("version"))
	assert.Equal(t, map[string]interface{}{}, r.ToMap(KeyFlag))
}

func TestCount(t *testing.T) {
	r := parseOne(t, Config{Type: TypeCount}, "-x", "--opt", "-xx")
	assert.Equal(t, 4, r.Get("opt"))
	r = parseOne(t, Config{Type: TypeCount})
	assert.Equal(t, 0, r.Get("opt"))
	r = parseOne(t, Config{Type: TypeCount}, "-x", "--no-opt")
	assert.Equal(t, 2, r.Get("opt"))

	opts := New()
	opts.MustAdd([]string{"-v"}, "", Config{Type: TypeCount}, nil)
	_, err := Parse(opts, []string{"-v=3"})
	var iae *InvalidArgumentError
	assert.True(t, errors.As(err, &iae))
}

func TestRegexp(t *testing.T) {
	r := parseOne(t, Config{Type: TypeRegexp}, "--opt", "redirect|news")
	re, ok := r.Get("opt").(*regexp.Regexp)
	require.True(t, ok)
	assert.Equal(t, "redirect|news", re.String())

	opts := New()
	opts.MustAdd([]string{"--opt"}, "", Config{Type: TypeRegexp}, nil)
	_, err := Parse(opts, []string{"--opt", "("})
	var iae *InvalidArgumentError
	require.True(t, errors.As(err, &iae))
	assert.Equal(t, "(", iae.Value)
	assert.Error(t, errors.Unwrap(iae))
}

func TestDuration(t *testing.T) {
	r := parseOne(t, Config{Type: TypeDuration}, "--opt", "1m30s")
	assert.Equal(t, 90*time.Second, r.Get("opt"))
	r = parseOne(t, Config{Type: TypeDuration, Default: "5s"})
	assert.Equal(t, 5*time.Second, r.Get("opt"))

	opts := New()
	opts.MustAdd([]string{"--opt"}, "", Config{Type: TypeDuration}, nil)
	_, err := Parse(opts, []string{"--opt=soon"})
	var iae *InvalidArgumentError
	assert.True(t, errors.As(err, &iae))
}

func TestBytes(t *testing.T) {
	r := parseOne(t, Config{Type: TypeBytes}, "--opt=100GB")
	assert.EqualValues(t, Bytes(100e9), r.Get("opt"))
	assert.EqualValues(t, 100e9, r.Get("opt").(Bytes).Int64())

	var b Bytes
	require.NoError(t, b.UnmarshalText([]byte("4 MiB")))
	assert.EqualValues(t, 4<<20, b)
	assert.Equal(t, "4.2 MB", b.String())
}

func TestNetTypes(t *testing.T) {
	r := parseOne(t, Config{Type: TypeURL}, "--opt", "http://example.com/a?b=c")
	u, ok := r.Get("opt").(*url.URL)
	require.True(t, ok)
	assert.Equal(t, "example.com", u.Host)

	r = parseOne(t, Config{Type: TypeIP}, "--opt=::1")
	assert.Equal(t, net.ParseIP("::1"), r.Get("opt"))

	r = parseOne(t, Config{Type: TypeTCPAddr}, "--opt", "127.0.0.1:8080")
	addr, ok := r.Get("opt").(*net.TCPAddr)
	require.True(t, ok)
	assert.Equal(t, 8080, addr.Port)

	for _, _case := range []struct {
		typ Type
		arg string
	}{
		{TypeURL, "http://[::1"},
		{TypeIP, "1.2.3"},
		{TypeTCPAddr, "127.0.0.1"},
	} {
		opts := New()
		opts.MustAdd([]string{"--opt"}, "", Config{Type: _case.typ}, nil)
		_, err := Parse(opts, []string{"--opt", _case.arg})
		var iae *InvalidArgumentError
		assert.True(t, errors.As(err, &iae), "%s %q", _case.typ, _case.arg)
	}
}

func TestCustom(t *testing.T) {
	reverse := func(s string) (interface{}, error) {
		rs := []rune(s)
		for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
			rs[i], rs[j] = rs[j], rs[i]
		}
		return string(rs), nil
	}
	r := parseOne(t, Config{Coerce: reverse}, "--opt", "foo")
	assert.Equal(t, "oof", r.Get("opt"))

	fail := errors.New("nope")
	opts := New()
	opts.MustAdd([]string{"--opt"}, "", Config{Coerce: func(string) (interface{}, error) {
		return nil, fail
	}}, nil)
	_, err := Parse(opts, []string{"--opt", "foo"})
	assert.True(t, errors.Is(err, fail))
}

func TestRegisterType(t *testing.T) {
	opts := New()
	require.NoError(t, opts.RegisterType("upper", func(s string) (interface{}, error) {
		return strings.ToUpper(s), nil
	}))
	opts.MustAdd([]string{"--shout"}, "", Config{Type: "upper", Default: "hi"}, nil)
	r, err := Parse(opts, nil)
	require.NoError(t, err)
	assert.Equal(t, "HI", r.Get("shout"))
	r, err = Parse(opts, []string{"--shout", "hey"})
	require.NoError(t, err)
	assert.Equal(t, "HEY", r.Get("shout"))

	var ce *ConfigError
	identity := func(s string) (interface{}, error) { return s, nil }
	for _, tag := range []Type{TypeInt, TypeString, TypeCustom, ""} {
		assert.True(t, errors.As(opts.RegisterType(tag, identity), &ce), "%q", tag)
	}
	assert.True(t, errors.As(opts.RegisterType("lower", nil), &ce))

	// Types registered with one registry aren't visible to others.
	_, err = New().Add([]string{"--shout"}, "", Config{Type: "upper"}, nil)
	assert.True(t, errors.As(err, &ce))
}

func TestDefaultCoerced(t *testing.T) {
	assert.Equal(t, 42, parseOne(t, Config{Type: TypeInt, Default: "42"}).Get("opt"))
	assert.Equal(t, 42, parseOne(t, Config{Type: TypeInt, Default: 42}).Get("opt"))
	assert.Equal(t, "x", parseOne(t, Config{Default: "x"}).Get("opt"))
	assert.Equal(t, "y", parseOne(t, Config{Default: "x"}, "-x", "y").Get("opt"))
}
