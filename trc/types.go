// Package trc is a component-scoped, level-filtered tracing facility.
// Trace sources register by name in a process-wide registry and a
// compact configuration string ("Comp1=warn|debug:Comp2=*"), usually
// taken from the TRC environment variable, decides which levels each
// one emits.
package trc

import (
	"io"
	"sync"
	"sync/atomic"
)

// LogLevel is a bitmask of trace levels and prefix flags.
type LogLevel uint32

// PrefixPrinter writes one message prefix (time, node id) to the
// output sink. The emit path consults the registry's two slots before
// every line; an unset slot is skipped.
type PrefixPrinter interface {
	WritePrefix(w io.Writer)
}

// PrefixPrinterFunc adapts a plain function to PrefixPrinter.
type PrefixPrinterFunc func(w io.Writer)

func (f PrefixPrinterFunc) WritePrefix(w io.Writer) { f(w) }

// Component is the filter state of one named trace source. The two
// masks are independent atomic words so IsEnabled stays a single load
// on the hot path. Components are created only through
// Registry.NewComponent and live for the whole process.
type Component struct {
	reg     *Registry
	name    string
	enabled atomic.Uint32
	blocked atomic.Uint32
}

// directive is one parsed clause of the configuration string. The
// registry caches the full directive list and replays it at every
// later registration.
type directive struct {
	target string // component name or WILDCARD
	levels LogLevel
}

// Registry owns every Component for the lifetime of the process,
// together with the active configuration and the printer hook slots.
type Registry struct {
	sync struct {
		regMtx  sync.RWMutex
		hookMtx sync.RWMutex
		outMtx  sync.Mutex
	}
	components map[string]*Component
	directives []directive
	listWanted bool
	timePrn    PrefixPrinter
	nodePrn    PrefixPrinter
	output     io.Writer
}
