package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "mintboard"
	app.Usage = "Token mint dashboard"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path of the TOML config file",
			EnvVars: []string{"MINTBOARD_CONFIG"},
		},
	}
	app.Before = s.loadConfig
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Serve the dashboard views over http, stream mint card changes over websocket and expose prometheus metrics.`,
		},
		{
			Action:   s.startStats,
			Name:     "stats",
			Usage:    "Print token stats and the wallet balance",
			Category: "Wallet",
			Flags: []cli.Flag{
				&cli.Int64Flag{Name: "chain", Usage: "Chain id to connect to"},
			},
		},
		{
			Action:   s.startMint,
			Name:     "mint",
			Usage:    "Mint tokens and follow the transaction until the form is idle again",
			Category: "Wallet",
			Flags: []cli.Flag{
				&cli.Int64Flag{Name: "chain", Usage: "Chain id to connect to"},
				&cli.StringFlag{Name: "amount", Usage: "Amount to mint", Value: "1"},
			},
		},
	}

	s.app = app
}
