package trc

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// NewRegistry creates an empty registry with no active configuration.
// One registry is meant to be created at the top of the program and
// passed to every component definition site.
func NewRegistry() *Registry {
	r := new(Registry)
	r.components = map[string]*Component{}
	r.output = os.Stderr
	return r
}

// Init creates a registry configured from the TRC environment
// variable.
func Init() (*Registry, error) {
	return InitWithConfig(os.Getenv(ENV_VAR))
}

// InitWithConfig creates a registry and applies the given
// configuration string.
func InitWithConfig(config string) (*Registry, error) {
	r := NewRegistry()
	if err := r.Configure(config); err != nil {
		return nil, err
	}
	return r, nil
}

// NewComponent registers a named trace source and returns its handle.
// The block mask is applied before the cached configuration directives
// are replayed, so a blocked level can never come back through the
// environment. Registering the same name twice is an error and leaves
// the original entry untouched.
func (r *Registry) NewComponent(name string, mask LogLevel) (*Component, error) {
	r.sync.regMtx.Lock()
	defer r.sync.regMtx.Unlock()
	if _, taken := r.components[name]; taken {
		return nil, fmt.Errorf("trace component %q is allready registered", name)
	}
	c := &Component{reg: r, name: name}
	r.components[name] = c
	if mask != LVL_NONE {
		c.SetMask(mask)
	}
	for _, d := range r.directives {
		if d.target == name || d.target == WILDCARD {
			c.Enable(d.levels)
		}
	}
	return c, nil
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (*Component, bool) {
	r.sync.regMtx.RLock()
	defer r.sync.regMtx.RUnlock()
	c, found := r.components[name]
	return c, found
}

// Names returns every registered component name, sorted.
func (r *Registry) Names() []string {
	r.sync.regMtx.RLock()
	defer r.sync.regMtx.RUnlock()
	return slices.Sorted(maps.Keys(r.components))
}

// Enable enables the given levels on one component by name.
func (r *Registry) Enable(name string, level LogLevel) error {
	c, found := r.Lookup(name)
	if !found {
		return fmt.Errorf("unknown trace component %q", name)
	}
	c.Enable(level)
	return nil
}

// Disable disables the given levels on one component by name.
func (r *Registry) Disable(name string, level LogLevel) error {
	c, found := r.Lookup(name)
	if !found {
		return fmt.Errorf("unknown trace component %q", name)
	}
	c.Disable(level)
	return nil
}

// EnableAll enables the given levels on every component registered so
// far. Unlike a wildcard directive it is not retained: components
// registered afterwards are unaffected.
func (r *Registry) EnableAll(level LogLevel) {
	r.sync.regMtx.RLock()
	defer r.sync.regMtx.RUnlock()
	for _, c := range r.components {
		c.Enable(level)
	}
}

// DisableAll disables the given levels on every component registered
// so far.
func (r *Registry) DisableAll(level LogLevel) {
	r.sync.regMtx.RLock()
	defer r.sync.regMtx.RUnlock()
	for _, c := range r.components {
		c.Disable(level)
	}
}

// PrintList writes every registered component name to w, one per
// line, sorted.
func (r *Registry) PrintList(w io.Writer) error {
	for _, name := range r.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("writing component list: %w", err)
		}
	}
	return nil
}

// PrintListRequested reports whether the active configuration string
// was the print-list sentinel.
func (r *Registry) PrintListRequested() bool {
	r.sync.regMtx.RLock()
	defer r.sync.regMtx.RUnlock()
	return r.listWanted
}

// SetTimePrinter installs the time prefix hook. nil unsets it.
func (r *Registry) SetTimePrinter(p PrefixPrinter) *Registry {
	r.sync.hookMtx.Lock()
	defer r.sync.hookMtx.Unlock()
	r.timePrn = p
	return r
}

// TimePrinter returns the time prefix hook, nil when unset.
func (r *Registry) TimePrinter() PrefixPrinter {
	r.sync.hookMtx.RLock()
	defer r.sync.hookMtx.RUnlock()
	return r.timePrn
}

// SetNodePrinter installs the node prefix hook. nil unsets it.
func (r *Registry) SetNodePrinter(p PrefixPrinter) *Registry {
	r.sync.hookMtx.Lock()
	defer r.sync.hookMtx.Unlock()
	r.nodePrn = p
	return r
}

// NodePrinter returns the node prefix hook, nil when unset.
func (r *Registry) NodePrinter() PrefixPrinter {
	r.sync.hookMtx.RLock()
	defer r.sync.hookMtx.RUnlock()
	return r.nodePrn
}

// SetOutput redirects emitted messages. nil discards them.
func (r *Registry) SetOutput(w io.Writer) *Registry {
	r.sync.outMtx.Lock()
	defer r.sync.outMtx.Unlock()
	if w != nil {
		r.output = w
	} else {
		r.output = io.Discard
	}
	return r
}

func (r *Registry) write(s string) {
	r.sync.outMtx.Lock()
	defer r.sync.outMtx.Unlock()
	// write errors are dropped: the sink is fire-and-forget
	_, _ = io.WriteString(r.output, s)
}
