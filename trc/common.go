package trc

// Granular level bits. Each one stands for a single category of trace
// message and implies nothing else.
const (
	LVL_NONE  LogLevel = 0x0
	LVL_ERROR LogLevel = 0x1
	LVL_WARN  LogLevel = 0x2
	LVL_DEBUG LogLevel = 0x4
	LVL_INFO  LogLevel = 0x8
	LVL_FUNC  LogLevel = 0x10
	LVL_LOGIC LogLevel = 0x20
)

// Cumulative groups: each one is its own granular bit plus the whole
// group below it, so LVL_LEVEL_ERROR ⊆ LVL_LEVEL_WARN ⊆ ... ⊆
// LVL_LEVEL_LOGIC ⊆ LVL_LEVEL_ALL by construction.
const (
	LVL_LEVEL_ERROR LogLevel = LVL_ERROR
	LVL_LEVEL_WARN  LogLevel = LVL_WARN | LVL_LEVEL_ERROR
	LVL_LEVEL_DEBUG LogLevel = LVL_DEBUG | LVL_LEVEL_WARN
	LVL_LEVEL_INFO  LogLevel = LVL_INFO | LVL_LEVEL_DEBUG
	LVL_LEVEL_FUNC  LogLevel = LVL_FUNC | LVL_LEVEL_INFO
	LVL_LEVEL_LOGIC LogLevel = LVL_LOGIC | LVL_LEVEL_FUNC
	LVL_LEVEL_ALL   LogLevel = 0x0fffffff
)

// Prefix flags. Independent of the level bits and of each other; they
// are never part of a cumulative group.
const (
	PFX_FUNC  LogLevel = 0x80000000
	PFX_TIME  LogLevel = 0x40000000
	PFX_NODE  LogLevel = 0x20000000
	PFX_LEVEL LogLevel = 0x10000000
	PFX_ALL   LogLevel = PFX_FUNC | PFX_TIME | PFX_NODE | PFX_LEVEL
)

// LVL_ALL is every level and every prefix, the superset of all named
// constants above.
const LVL_ALL LogLevel = LVL_LEVEL_ALL | PFX_ALL

const (
	// ENV_VAR is the environment variable Init reads the
	// configuration string from.
	ENV_VAR = "TRC"
	// PRINT_LIST is the whole-string sentinel that requests a listing
	// of registered components instead of a configuration.
	PRINT_LIST = "print-list"

	WILDCARD          = "*"
	CLAUSE_DELIMITERS = ":;"
	LEVEL_DELIMITER   = "|"
)

// DEFAULT_CLAUSE_LEVELS is what a bare component name in the
// configuration string enables: every level, no prefixes.
const DEFAULT_CLAUSE_LEVELS = LVL_LEVEL_ALL

// LevelNames lists the canonical level tokens of the configuration
// mini-language, in documentation order.
var LevelNames = []string{
	"error", "warn", "debug", "info", "function", "logic",
	"level_error", "level_warn", "level_debug", "level_info",
	"level_function", "level_logic", "level_all",
	"prefix_func", "prefix_time", "prefix_node", "prefix_level",
	"prefix_all",
	"all",
}

var levelTokens = map[string]LogLevel{
	"error":          LVL_ERROR,
	"warn":           LVL_WARN,
	"debug":          LVL_DEBUG,
	"info":           LVL_INFO,
	"function":       LVL_FUNC,
	"logic":          LVL_LOGIC,
	"level_error":    LVL_LEVEL_ERROR,
	"level_warn":     LVL_LEVEL_WARN,
	"level_debug":    LVL_LEVEL_DEBUG,
	"level_info":     LVL_LEVEL_INFO,
	"level_function": LVL_LEVEL_FUNC,
	"level_logic":    LVL_LEVEL_LOGIC,
	"level_all":      LVL_LEVEL_ALL,
	"prefix_func":    PFX_FUNC,
	"prefix_time":    PFX_TIME,
	"prefix_node":    PFX_NODE,
	"prefix_level":   PFX_LEVEL,
	"prefix_all":     PFX_ALL,
	"all":            LVL_ALL,
	WILDCARD:         LVL_ALL,
}

// LevelFromName resolves a canonical level token (case-sensitive) to
// its mask.
func LevelFromName(name string) (LogLevel, bool) {
	level, known := levelTokens[name]
	return level, known
}

// LEVEL_LABEL_UNKNOWN is what GetLevelLabel returns for anything that
// is not a single granular level bit.
const LEVEL_LABEL_UNKNOWN = "unknown"

// GetLevelLabel returns the display label for a single granular level.
// The labels match the parser tokens, so a label round-trips through
// LevelFromName.
func GetLevelLabel(level LogLevel) string {
	switch level {
	case LVL_ERROR:
		return "error"
	case LVL_WARN:
		return "warn"
	case LVL_DEBUG:
		return "debug"
	case LVL_INFO:
		return "info"
	case LVL_FUNC:
		return "function"
	case LVL_LOGIC:
		return "logic"
	default:
		return LEVEL_LABEL_UNKNOWN
	}
}
