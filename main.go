package main

import (
	"context"
	"log"
	"os"

	"github.com/abyssdigger/trc/cmd"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "trc",
		Usage: "Component-scoped trace filtering",
		Commands: []*cli.Command{
			cmd.EmitCommand(),
			cmd.ListCommand(),
			cmd.LevelsCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
