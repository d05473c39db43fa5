package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	flagConfig   = "config"
	flagCategory = "category"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "sharer",
		Usage: "share unshared Notion records into their project pages",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "run the share workflow once and print a summary",
				Action: runAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagConfig,
						Aliases: []string{"c"},
						Usage:   "config file; defaults to config.yaml in ./config, . or /etc/app/",
					},
					&cli.StringSliceFlag{
						Name:  flagCategory,
						Usage: "category to run (minutes, manual); repeatable, defaults to all",
					},
				},
			},
		},
	}
}
