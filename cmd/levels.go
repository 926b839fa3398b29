package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abyssdigger/trc/trc"
	"github.com/urfave/cli/v3"
)

// ANSI colored text is a string like \033[⟨code⟩mSome_colored_text\033[0m
const (
	ansiColPrfx  = "\033["
	ansiColSufx  = "m"
	ansiColReset = ansiColPrfx + "0" + ansiColSufx
)

// LevelsCommand creates the levels command
func LevelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "levels",
		Usage: "Show the configuration level tokens and their masks",
		Action: func(ctx context.Context, c *cli.Command) error {
			return printLevels()
		},
	}
}

func printLevels() error {
	for _, name := range trc.LevelNames {
		level, known := trc.LevelFromName(name)
		if !known {
			return fmt.Errorf("unknown trace level %q", name)
		}
		fmt.Printf("%s%-16s%s 0x%08x\n", colorFor(name), name, ansiColReset, uint32(level))
	}
	return nil
}

func colorFor(name string) string {
	var code string
	switch {
	case strings.HasPrefix(name, "prefix_"):
		code = "0;90"
	case strings.HasPrefix(name, "level_") || name == "all":
		code = "0;33"
	default:
		code = "0;97"
	}
	return ansiColPrfx + code + ansiColSufx
}
