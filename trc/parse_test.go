package trc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func configured(t *testing.T, config string) *Registry {
	t.Helper()
	r, err := InitWithConfig(config)
	if err != nil {
		t.Fatalf("InitWithConfig(%q) error: %v", config, err)
	}
	return r
}

func TestConfigure_WildcardBeforeRegistration(t *testing.T) {
	r := configured(t, "*=error")
	a, err := r.NewComponent("A", LVL_NONE)
	if err != nil {
		t.Fatalf("NewComponent error: %v", err)
	}
	assert.True(t, a.IsEnabled(LVL_ERROR))
	assert.False(t, a.IsEnabled(LVL_WARN))
}

func TestConfigure_MultiClause(t *testing.T) {
	r := configured(t, "A=warn|debug:B=*")
	a, _ := r.NewComponent("A", LVL_NONE)
	b, _ := r.NewComponent("B", LVL_NONE)
	assert.True(t, a.IsEnabled(LVL_WARN))
	assert.True(t, a.IsEnabled(LVL_DEBUG))
	assert.False(t, a.IsEnabled(LVL_INFO))
	assert.False(t, a.IsEnabled(LVL_ERROR))
	for _, level := range append(granulars, PFX_FUNC, PFX_TIME, PFX_NODE, PFX_LEVEL) {
		assert.True(t, b.IsEnabled(level), "B must have %#x enabled", uint32(level))
	}
}

func TestConfigure_BareClause(t *testing.T) {
	r := configured(t, "A")
	a, _ := r.NewComponent("A", LVL_NONE)
	for _, level := range granulars {
		assert.True(t, a.IsEnabled(level), "bare clause must enable %#x", uint32(level))
	}
	assert.False(t, a.IsEnabled(PFX_ALL), "bare clause must not enable prefixes")
}

func TestConfigure_AppliesToExisting(t *testing.T) {
	r := NewRegistry()
	a, _ := r.NewComponent("A", LVL_NONE)
	if err := r.Configure("A=info"); err != nil {
		t.Fatalf("Configure error: %v", err)
	}
	assert.True(t, a.IsEnabled(LVL_INFO))
}

func TestConfigure_NamedReplayAtRegistration(t *testing.T) {
	r := configured(t, "A=debug")
	a, _ := r.NewComponent("A", LVL_NONE)
	other, _ := r.NewComponent("B", LVL_NONE)
	assert.True(t, a.IsEnabled(LVL_DEBUG))
	assert.True(t, other.IsNoneEnabled())
}

func TestConfigure_UnknownLevel(t *testing.T) {
	for _, config := range []string{"A=nope", "A=error|bogus", "A=Error", "A="} {
		_, err := InitWithConfig(config)
		assert.Error(t, err, "config %q must be rejected", config)
	}
	// a failed parse applies nothing
	r := NewRegistry()
	a, _ := r.NewComponent("A", LVL_NONE)
	assert.Error(t, r.Configure("A=error|bogus"))
	assert.True(t, a.IsNoneEnabled())
}

func TestConfigure_Additive(t *testing.T) {
	r := configured(t, "A=error:A=warn")
	a, _ := r.NewComponent("A", LVL_NONE)
	assert.True(t, a.IsEnabled(LVL_ERROR), "directives for one target accumulate")
	assert.True(t, a.IsEnabled(LVL_WARN))
}

func TestConfigure_ReparseIdempotent(t *testing.T) {
	r := configured(t, "A=error")
	a, _ := r.NewComponent("A", LVL_NONE)
	if err := r.Configure("A=error"); err != nil {
		t.Fatalf("Configure error: %v", err)
	}
	assert.True(t, a.IsEnabled(LVL_ERROR))
	assert.False(t, a.IsEnabled(LVL_WARN))
	// replaying a new config over a configured component only adds
	if err := r.Configure("A=warn"); err != nil {
		t.Fatalf("Configure error: %v", err)
	}
	assert.True(t, a.IsEnabled(LVL_ERROR), "reconfiguring never clears bits")
	assert.True(t, a.IsEnabled(LVL_WARN))
}

func TestConfigure_Separators(t *testing.T) {
	r := configured(t, "A=error;B=warn:")
	a, _ := r.NewComponent("A", LVL_NONE)
	b, _ := r.NewComponent("B", LVL_NONE)
	assert.True(t, a.IsEnabled(LVL_ERROR))
	assert.True(t, b.IsEnabled(LVL_WARN))
}

func TestConfigure_Empty(t *testing.T) {
	r := configured(t, "")
	a, _ := r.NewComponent("A", LVL_NONE)
	assert.True(t, a.IsNoneEnabled())
}

func TestConfigure_BlockMaskWinsOverWildcard(t *testing.T) {
	r := configured(t, "*=all")
	a, err := r.NewComponent("A", LVL_ERROR|LVL_LOGIC)
	if err != nil {
		t.Fatalf("NewComponent error: %v", err)
	}
	assert.False(t, a.IsEnabled(LVL_ERROR))
	assert.False(t, a.IsEnabled(LVL_LOGIC))
	assert.True(t, a.IsEnabled(LVL_WARN))
	assert.True(t, a.IsEnabled(PFX_TIME))
}

func TestConfigure_PrintListSentinel(t *testing.T) {
	r := NewRegistry()
	a, _ := r.NewComponent("A", LVL_NONE)
	if err := r.Configure(PRINT_LIST); err != nil {
		t.Fatalf("Configure error: %v", err)
	}
	assert.True(t, r.PrintListRequested())
	assert.True(t, a.IsNoneEnabled(), "print-list must not touch any mask")
	b, _ := r.NewComponent("B", LVL_NONE)
	assert.True(t, b.IsNoneEnabled())
	var buf bytes.Buffer
	if err := r.PrintList(&buf); err != nil {
		t.Fatalf("PrintList error: %v", err)
	}
	assert.Equal(t, "A\nB\n", buf.String())
	// not a whole-string match: parsed as a bare component clause
	r2 := configured(t, PRINT_LIST+":A=error")
	assert.False(t, r2.PrintListRequested())
}
