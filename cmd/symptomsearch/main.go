// Copyright 2026 Clinref Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/clinref/symptomsearch"
	"github.com/clinref/symptomsearch/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "symptomsearch",
		Usage: "Fuzzy search over a curated symptom knowledge base",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search symptoms by free-text query",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: append(dbFlags(),
					&cli.IntFlag{
						Name:    "max",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   10,
					},
				),
			},
			{
				Name:      "code",
				Usage:     "Look up symptoms by classification code",
				ArgsUsage: "CODE",
				Action:    codeCommand,
				Flags:     dbFlags(),
			},
			{
				Name:      "conditions",
				Usage:     "List conditions associated with the symptoms matching a query",
				ArgsUsage: "QUERY...",
				Action:    conditionsCommand,
				Flags:     dbFlags(),
			},
			{
				Name:      "tools",
				Usage:     "List assessment tools associated with the symptoms matching a query",
				ArgsUsage: "QUERY...",
				Action:    toolsCommand,
				Flags:     dbFlags(),
			},
			{
				Name:      "red-flags",
				Usage:     "List red flags for the best-matching symptom",
				ArgsUsage: "QUERY...",
				Action:    redFlagsCommand,
				Flags:     dbFlags(),
			},
			{
				Name:      "differentials",
				Usage:     "List differential diagnoses for the best-matching symptom",
				ArgsUsage: "QUERY...",
				Action:    differentialsCommand,
				Flags:     dbFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
	}
}

// withEngine opens the database, builds an engine over the stored knowledge
// base and hands it to fn.
func withEngine(c *cli.Context, fn func(engine *search.Engine) error) error {
	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}

	db, err := symptomsearch.NewDatabase(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	engine, err := db.NewEngine(context.Background())
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	return fn(engine)
}

func queryFromArgs(c *cli.Context) (string, error) {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return "", fmt.Errorf("query is required")
	}
	return query, nil
}

func searchCommand(c *cli.Context) error {
	query, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	return withEngine(c, func(engine *search.Engine) error {
		results := engine.SearchSymptoms(query, c.Int("max"))
		fmt.Printf("Found %d hits\n", len(results))
		for i, entry := range results {
			fmt.Printf("%d: %s [%s]", i, entry.Symptom, entry.Urgency)
			if len(entry.Codes) > 0 {
				fmt.Printf(" (%s)", strings.Join(entry.Codes, ", "))
			}
			fmt.Println()
		}
		return nil
	})
}

func codeCommand(c *cli.Context) error {
	code := strings.TrimSpace(c.Args().First())
	if code == "" {
		return fmt.Errorf("code is required")
	}

	return withEngine(c, func(engine *search.Engine) error {
		results := engine.SearchByCode(code)
		fmt.Printf("Found %d hits\n", len(results))
		for i, entry := range results {
			fmt.Printf("%d: %s [%s]\n", i, entry.Symptom, entry.Urgency)
		}
		return nil
	})
}

func conditionsCommand(c *cli.Context) error {
	query, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	return withEngine(c, func(engine *search.Engine) error {
		printStrings(engine.ConditionsForSymptom(query))
		return nil
	})
}

func toolsCommand(c *cli.Context) error {
	query, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	return withEngine(c, func(engine *search.Engine) error {
		printStrings(engine.ToolsForSymptom(query))
		return nil
	})
}

func redFlagsCommand(c *cli.Context) error {
	query, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	return withEngine(c, func(engine *search.Engine) error {
		printStrings(engine.RedFlagsFor(query))
		return nil
	})
}

func differentialsCommand(c *cli.Context) error {
	query, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	return withEngine(c, func(engine *search.Engine) error {
		printStrings(engine.DifferentialsFor(query))
		return nil
	})
}

func printStrings(values []string) {
	if len(values) == 0 {
		fmt.Println("No matches")
		return
	}
	for _, value := range values {
		fmt.Printf("- %s\n", value)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
