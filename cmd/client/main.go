// Entry point of spostctl, the socialpost terminal client.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/user/socialpost-go/client/api"
	"github.com/user/socialpost-go/client/cli"
	"github.com/user/socialpost-go/client/session"
)

func main() {
	defaultServer := os.Getenv("SOCIALPOST_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:4000"
	}

	serverURL := flag.String("server", defaultServer, "Server URL")
	sessionPath := flag.String("session", "", "Path to the session file (default: per-user config dir)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	path := *sessionPath
	if path == "" {
		var err error
		path, err = session.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	app := cli.New(api.NewClient(*serverURL), session.NewStore(path), cli.NewStdio())

	if err := app.Run(context.Background(), args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
