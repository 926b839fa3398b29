package trc

// IsEnabled reports whether any bit of level is currently enabled for
// this component. It is the hot path consulted before every emission
// and is safe for arbitrary concurrent use: a single atomic load, no
// locking.
func (c *Component) IsEnabled(level LogLevel) bool {
	return LogLevel(c.enabled.Load())&level != 0
}

// IsNoneEnabled reports whether every level is disabled.
func (c *Component) IsNoneEnabled() bool {
	return c.enabled.Load() == 0
}

// Enable turns on the given bits, except those permanently blocked by
// SetMask. Enabling a fully blocked level is a silent no-op.
func (c *Component) Enable(level LogLevel) {
	c.enabled.Or(uint32(level) &^ c.blocked.Load())
}

// Disable turns off the given bits.
func (c *Component) Disable(level LogLevel) {
	c.enabled.And(^uint32(level))
}

// SetMask permanently blocks the given bits and clears them from the
// enabled mask. It is meant to be called only at construction time,
// to keep code on the logging path from tracing itself.
func (c *Component) SetMask(level LogLevel) {
	c.blocked.Or(uint32(level))
	c.enabled.And(^uint32(level))
}

// Name returns the component's immutable identity.
func (c *Component) Name() string {
	return c.name
}
