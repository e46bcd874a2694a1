package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "reset-pin":
		err = c.runResetPin(ctx)
	case "add":
		err = c.runAdd(ctx, args)
	case "list":
		err = c.runList(ctx, args)
	case "get":
		err = c.runGet(ctx, args)
	case "update":
		err = c.runUpdate(ctx, args)
	case "delete":
		err = c.runDelete(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
