package trc

import (
	"fmt"
	"runtime"
	"strings"
)

// Logf formats a message and writes it to the registry output if any
// bit of level is enabled for this component. Enabled prefixes are
// applied in fixed order: time, node, component:function, [label].
func (c *Component) Logf(level LogLevel, format string, args ...any) {
	if !c.IsEnabled(level) {
		return
	}
	c.emit(level, callerName(2), fmt.Sprintf(format, args...))
}

func (c *Component) Errorf(format string, args ...any) {
	if !c.IsEnabled(LVL_ERROR) {
		return
	}
	c.emit(LVL_ERROR, callerName(2), fmt.Sprintf(format, args...))
}

func (c *Component) Warnf(format string, args ...any) {
	if !c.IsEnabled(LVL_WARN) {
		return
	}
	c.emit(LVL_WARN, callerName(2), fmt.Sprintf(format, args...))
}

func (c *Component) Debugf(format string, args ...any) {
	if !c.IsEnabled(LVL_DEBUG) {
		return
	}
	c.emit(LVL_DEBUG, callerName(2), fmt.Sprintf(format, args...))
}

func (c *Component) Infof(format string, args ...any) {
	if !c.IsEnabled(LVL_INFO) {
		return
	}
	c.emit(LVL_INFO, callerName(2), fmt.Sprintf(format, args...))
}

func (c *Component) Logicf(format string, args ...any) {
	if !c.IsEnabled(LVL_LOGIC) {
		return
	}
	c.emit(LVL_LOGIC, callerName(2), fmt.Sprintf(format, args...))
}

// Function traces a call at the function level as
// "component:function(arg, arg)". Only the time and node prefixes
// apply to function traces.
func (c *Component) Function(args ...any) {
	if !c.IsEnabled(LVL_FUNC) {
		return
	}
	var b strings.Builder
	c.prefixTimeNode(&b)
	b.WriteString(c.name)
	b.WriteByte(':')
	b.WriteString(callerName(2))
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, a)
	}
	b.WriteString(")\n")
	c.reg.write(b.String())
}

func (c *Component) emit(level LogLevel, funcname, msg string) {
	var b strings.Builder
	b.Grow(len(msg) + 64)
	c.prefixTimeNode(&b)
	if c.IsEnabled(PFX_FUNC) {
		b.WriteString(c.name)
		b.WriteByte(':')
		b.WriteString(funcname)
		b.WriteString("(): ")
	}
	if c.IsEnabled(PFX_LEVEL) {
		b.WriteByte('[')
		b.WriteString(GetLevelLabel(level))
		b.WriteString("] ")
	}
	b.WriteString(msg)
	if !strings.HasSuffix(msg, "\n") {
		b.WriteByte('\n')
	}
	c.reg.write(b.String())
}

func (c *Component) prefixTimeNode(b *strings.Builder) {
	if c.IsEnabled(PFX_TIME) {
		if p := c.reg.TimePrinter(); p != nil {
			p.WritePrefix(b)
			b.WriteByte(' ')
		}
	}
	if c.IsEnabled(PFX_NODE) {
		if p := c.reg.NodePrinter(); p != nil {
			p.WritePrefix(b)
			b.WriteByte(' ')
		}
	}
}

// callerName returns the bare function name skip frames up the stack.
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "?"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "?"
	}
	name := fn.Name()
	return name[strings.LastIndexByte(name, '.')+1:]
}
