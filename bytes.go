package optparse

import (
	"encoding"

	"github.com/dustin/go-humanize"
)

// The value type of TypeBytes options. Arguments are human readable byte
// quantities, like 100GB or 4MiB. See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var (
	_ encoding.TextUnmarshaler = (*Bytes)(nil)
	_ encoding.TextMarshaler   = Bytes(0)
)

func ParseBytes(s string) (Bytes, error) {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	return Bytes(ui64), nil
}

func (me *Bytes) UnmarshalText(text []byte) (err error) {
	*me, err = ParseBytes(string(text))
	return
}

func (me Bytes) MarshalText() ([]byte, error) {
	return []byte(me.String()), nil
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}
