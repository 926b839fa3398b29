package trc

import (
	"fmt"
	"strings"
)

// Configure parses a configuration string and makes it the active
// configuration. Directives are applied to every component registered
// so far and cached for replay at each later registration, so a
// wildcard clause also covers components that do not exist yet.
//
// Applying is add-only: reconfiguring a running process can enable
// further levels but never clears one; only Disable/DisableAll do.
// Parsing the same string twice therefore yields the same masks.
//
// The grammar is clause(":"|";")clause..., each clause being a
// component name (or "*") optionally followed by "="-separated level
// tokens joined with "|". A bare name enables every level and no
// prefix. An unknown token fails the whole call and nothing is
// applied.
func (r *Registry) Configure(config string) error {
	if config == PRINT_LIST {
		r.sync.regMtx.Lock()
		defer r.sync.regMtx.Unlock()
		r.listWanted = true
		r.directives = nil
		return nil
	}
	directives, err := parseConfig(config)
	if err != nil {
		return err
	}
	r.sync.regMtx.Lock()
	defer r.sync.regMtx.Unlock()
	r.listWanted = false
	r.directives = directives
	for _, d := range directives {
		for name, c := range r.components {
			if d.target == name || d.target == WILDCARD {
				c.Enable(d.levels)
			}
		}
	}
	return nil
}

func parseConfig(config string) ([]directive, error) {
	var directives []directive
	clauses := strings.FieldsFunc(config, func(r rune) bool {
		return strings.ContainsRune(CLAUSE_DELIMITERS, r)
	})
	for _, clause := range clauses {
		target, expr, assigned := strings.Cut(clause, "=")
		if target == "" {
			return nil, fmt.Errorf("missing target in clause %q", clause)
		}
		levels := DEFAULT_CLAUSE_LEVELS
		if assigned {
			levels = LVL_NONE
			for _, token := range strings.Split(expr, LEVEL_DELIMITER) {
				mask, known := LevelFromName(token)
				if !known {
					return nil, fmt.Errorf("unknown trace level %q in clause %q", token, clause)
				}
				levels |= mask
			}
		}
		directives = append(directives, directive{target: target, levels: levels})
	}
	return directives, nil
}
