package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abyssdigger/trc/trc"
	"github.com/urfave/cli/v3"
)

// EmitCommand creates the emit command
func EmitCommand() *cli.Command {
	return &cli.Command{
		Name:  "emit",
		Usage: "Emit sample trace messages through the configured filter",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Trace configuration string",
				Sources: cli.EnvVars(trc.ENV_VAR),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return emitSamples(c.String("config"))
		},
	}
}

// registerSamples registers the demo components every subcommand
// works with.
func registerSamples(reg *trc.Registry) ([]*trc.Component, error) {
	var components []*trc.Component
	for _, name := range []string{"router", "scheduler", "storage"} {
		c, err := reg.NewComponent(name, trc.LVL_NONE)
		if err != nil {
			return nil, fmt.Errorf("registering %q: %w", name, err)
		}
		components = append(components, c)
	}
	return components, nil
}

func emitSamples(config string) error {
	reg, err := trc.InitWithConfig(config)
	if err != nil {
		return fmt.Errorf("parsing trace configuration: %w", err)
	}
	reg.SetOutput(os.Stdout)

	start := time.Now()
	reg.SetTimePrinter(trc.PrefixPrinterFunc(func(w io.Writer) {
		fmt.Fprintf(w, "+%.3fs", time.Since(start).Seconds())
	}))
	pid := os.Getpid()
	reg.SetNodePrinter(trc.PrefixPrinterFunc(func(w io.Writer) {
		fmt.Fprintf(w, "[pid %d]", pid)
	}))

	components, err := registerSamples(reg)
	if err != nil {
		return err
	}
	if reg.PrintListRequested() {
		return reg.PrintList(os.Stdout)
	}

	for _, c := range components {
		c.Function(config)
		c.Errorf("sample error from %s", c.Name())
		c.Warnf("sample warning from %s", c.Name())
		c.Debugf("sample debug message from %s", c.Name())
		c.Infof("sample info message from %s", c.Name())
		c.Logicf("sample logic trace from %s", c.Name())
	}
	return nil
}
