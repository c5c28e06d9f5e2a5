package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	_ "time/tzdata"
)

func main() {
	app := cli.App{
		Name:      "bot",
		HelpName:  "bot",
		Usage:     "posts a reminder to a chat channel before each scheduled game event",
		UsageText: "bot [--env-file FILE] <command>",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "env-file",
				Usage: "load environment variables from `FILE`",
				Value: ".env",
			},
		},
		Before: loadEnvFile,
		Action: run,
		Commands: []cli.Command{
			{
				Name:   "run",
				Usage:  "start the reminder loop, the chat bot and the HTTP server",
				Action: run,
			},
			{
				Name:    "schedule",
				Aliases: []string{"takvim"},
				Usage:   "print today's remaining events and exit",
				Action:  printSchedule,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadEnvFile(c *cli.Context) error {
	path := c.GlobalString("env-file")
	if err := godotenv.Load(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s file not found\n", path)
	}
	return nil
}
