package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abyssdigger/trc/trc"
	"github.com/urfave/cli/v3"
)

// ListCommand creates the list command
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the registered sample trace components",
		Action: func(ctx context.Context, c *cli.Command) error {
			return listComponents()
		},
	}
}

func listComponents() error {
	reg, err := trc.InitWithConfig(trc.PRINT_LIST)
	if err != nil {
		return fmt.Errorf("parsing trace configuration: %w", err)
	}
	if _, err := registerSamples(reg); err != nil {
		return err
	}
	return reg.PrintList(os.Stdout)
}
