package optparse

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Type tags select how an option's raw argument is converted. Registries can
// add their own tags with Options.RegisterType.
type Type string

const (
	TypeString   Type = "string"
	TypeInt      Type = "integer"
	TypeFloat    Type = "float"
	TypeSymbol   Type = "symbol"
	TypeList     Type = "list"
	TypeRange    Type = "range"
	TypeBool     Type = "bool"
	TypeNull     Type = "null"
	TypeCount    Type = "count"
	TypeRegexp   Type = "regexp"
	TypeDuration Type = "duration"
	TypeBytes    Type = "bytes"
	TypeURL      Type = "url"
	TypeIP       Type = "ip"
	TypeTCPAddr  Type = "tcpaddr"
	// Set implicitly when Config.Coerce is given.
	TypeCustom Type = "custom"
)

// A string intended for use as a map key or enum-like value.
type Symbol string

// An integer range, as given by "1..10", "1...10", "1-10", "1,10" or "5".
type Range struct {
	Start, End int
	// End is not part of the range.
	Exclusive bool
}

func (me Range) Contains(i int) bool {
	if i < me.Start {
		return false
	}
	if me.Exclusive {
		return i < me.End
	}
	return i <= me.End
}

func (me Range) String() string {
	if me.Exclusive {
		return fmt.Sprintf("%d...%d", me.Start, me.End)
	}
	return fmt.Sprintf("%d..%d", me.Start, me.End)
}

var (
	intRegexp   = regexp.MustCompile(`^-?\d+$`)
	floatRegexp = regexp.MustCompile(`^-?\d*\.?\d+$`)
	rangeRegexp = regexp.MustCompile(`^(-?\d+?)(\.\.\.?|-|,)(-?\d+)$`)
)

func coerceInt(s string) interface{} {
	if !intRegexp.MatchString(s) {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return i
}

func coerceFloat(s string) interface{} {
	if !floatRegexp.MatchString(s) {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return f
}

// Returns a Range, or s unchanged if it doesn't look like one.
func coerceRange(s string) interface{} {
	if ss := rangeRegexp.FindStringSubmatch(s); ss != nil {
		start, err1 := strconv.Atoi(ss[1])
		end, err2 := strconv.Atoi(ss[3])
		if err1 != nil || err2 != nil {
			return s
		}
		return Range{start, end, ss[2] == "..."}
	}
	if intRegexp.MatchString(s) {
		i, err := strconv.Atoi(s)
		if err != nil {
			return s
		}
		return Range{Start: i, End: i}
	}
	return s
}

var builtinCoercers = map[Type]coercer{}

func addCoerceFunc(t Type, takesArg bool, f func(o *Option, s string) (interface{}, error)) {
	builtinCoercers[t] = coercer{takesArg: takesArg, coerce: f}
}

func init() {
	addCoerceFunc(TypeString, true, func(_ *Option, s string) (interface{}, error) {
		return s, nil
	})
	addCoerceFunc(TypeInt, true, func(_ *Option, s string) (interface{}, error) {
		return coerceInt(s), nil
	})
	addCoerceFunc(TypeFloat, true, func(_ *Option, s string) (interface{}, error) {
		return coerceFloat(s), nil
	})
	addCoerceFunc(TypeSymbol, true, func(_ *Option, s string) (interface{}, error) {
		return Symbol(s), nil
	})
	addCoerceFunc(TypeList, true, func(o *Option, s string) (interface{}, error) {
		return o.splitList(s), nil
	})
	addCoerceFunc(TypeRange, true, func(_ *Option, s string) (interface{}, error) {
		return coerceRange(s), nil
	})
	addCoerceFunc(TypeRegexp, true, func(_ *Option, s string) (interface{}, error) {
		re, err := regexp.Compile(s)
		if err != nil {
			return nil, errors.Wrap(err, "compiling regexp")
		}
		return re, nil
	})
	addCoerceFunc(TypeDuration, true, func(_ *Option, s string) (interface{}, error) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, errors.Wrap(err, "parsing duration")
		}
		return d, nil
	})
	addCoerceFunc(TypeBytes, true, func(_ *Option, s string) (interface{}, error) {
		b, err := ParseBytes(s)
		if err != nil {
			return nil, errors.Wrap(err, "parsing byte quantity")
		}
		return b, nil
	})
	addCoerceFunc(TypeURL, true, func(_ *Option, s string) (interface{}, error) {
		return url.Parse(s)
	})
	addCoerceFunc(TypeIP, true, func(_ *Option, s string) (interface{}, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, errors.Errorf("bad IP address %q", s)
		}
		return ip, nil
	})
	addCoerceFunc(TypeTCPAddr, true, func(_ *Option, s string) (interface{}, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
	// The switch types get their value from the option state, not from an
	// argument.
	addCoerceFunc(TypeBool, false, nil)
	addCoerceFunc(TypeNull, false, nil)
	addCoerceFunc(TypeCount, false, nil)
}
