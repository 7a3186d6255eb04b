package optparse

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/huandu/xstrings"
)

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

// Writes a table of the declared options and their descriptions.
func (me *Options) WriteUsage(w io.Writer) error {
	if len(me.opts) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Options:\n"); err != nil {
		return err
	}
	tw := newUsageTabwriter(w)
	for _, o := range me.opts {
		fmt.Fprintf(tw, "  %s", usageFlags(o))
		desc := o.Description
		if o.Required {
			desc = strings.TrimSpace(desc + " [required]")
		}
		fmt.Fprintf(tw, "\t%s\n", desc)
	}
	return tw.Flush()
}

func usageFlags(o *Option) string {
	s := strings.Join(o.Flags, ", ")
	switch o.argMode {
	case ArgRequired:
		s += " " + argPlaceholder(o)
	case ArgOptional:
		s += " [" + argPlaceholder(o) + "]"
	}
	return s
}

func argPlaceholder(o *Option) string {
	return strings.ToUpper(xstrings.ToSnakeCase(o.key))
}
