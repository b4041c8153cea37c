// Copyright 2025 Poiesic Systems
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
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/lancer"
	"github.com/poiesic/lancer/core"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "lancer",
		Usage: "Answer questions from live web search with cited sources",
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
				Usage:     "Run a question through the answer pipeline",
				ArgsUsage: "<question>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max-results",
						Aliases: []string{"n"},
						Usage:   "Maximum number of ranked results to keep",
						Value:   core.DefaultMaxResults,
					},
					&cli.StringFlag{
						Name:    "freshness",
						Aliases: []string{"f"},
						Usage:   "Explicit freshness hint (day, week, month, year, any)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the full response as JSON",
					},
				},
			},
			{
				Name:   "sources",
				Usage:  "Show which search sources the environment configures",
				Action: sourcesCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	hint := core.FreshnessHint(strings.ToLower(c.String("freshness")))
	if err := core.ValidateFreshnessHint(hint); err != nil {
		return fmt.Errorf("invalid freshness hint %q: must be one of day, week, month, year, any", c.String("freshness"))
	}

	config := lancer.ConfigFromEnv()
	engine, err := lancer.NewEngineFromConfig(config)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}
	defer engine.Close()

	response, err := engine.Search(context.Background(), core.Query{
		Text:       question,
		MaxResults: c.Int("max-results"),
		Freshness:  hint,
	})
	if err != nil {
		return err
	}

	if c.Bool("json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	}

	printResponse(response)
	return nil
}

func printResponse(response *core.Response) {
	fmt.Println(response.Answer.Text)
	fmt.Println()

	if response.Answer.Degraded {
		fmt.Println("(degraded answer: no LLM provider was reachable)")
		fmt.Println()
	}

	if len(response.Answer.Citations) > 0 {
		fmt.Println("Sources:")
		for _, citation := range response.Answer.Citations {
			fmt.Printf("  [%d] %s\n      %s\n", citation.Index, citation.Title, citation.URL)
		}
		fmt.Println()
	}

	fmt.Printf("intent=%s results=%d elapsed=%s", response.Intent.Label, len(response.Results), response.Elapsed.Round(time.Millisecond))
	if response.Answer.ProviderUsed != "" {
		fmt.Printf(" provider=%s", response.Answer.ProviderUsed)
	}
	fmt.Println()
}

func sourcesCommand(c *cli.Context) error {
	config := lancer.ConfigFromEnv()

	status := func(enabled bool) string {
		if enabled {
			return "enabled"
		}
		return "disabled"
	}

	fmt.Printf("tavily:      %s\n", status(config.TavilyAPIKey != ""))
	fmt.Printf("searxng:     %s\n", status(config.SearxngURL != ""))
	fmt.Printf("duckduckgo:  %s\n", status(config.EnableDuckDuckGo))
	fmt.Printf("wikipedia:   %s\n", status(config.EnableWikipedia))
	fmt.Printf("llm models:  %s\n", strings.Join(config.LLMModels, ", "))

	if err := config.Validate(); err != nil {
		fmt.Printf("\nconfiguration incomplete: %v\n", err)
	}
	return nil
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
