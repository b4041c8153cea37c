package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSearchCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "lancer",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max-results",
						Aliases: []string{"n"},
						Value:   10,
					},
					&cli.StringFlag{
						Name:    "freshness",
						Aliases: []string{"f"},
					},
				},
			},
		},
	}

	t.Run("question is required", func(t *testing.T) {
		err := app.Run([]string{"lancer", "search"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "question")
	})

	t.Run("invalid freshness hint fails", func(t *testing.T) {
		err := app.Run([]string{"lancer", "search", "--freshness", "fortnight", "some question"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "freshness")
	})

	t.Run("max-results has default value of 10", func(t *testing.T) {
		cmd := app.Commands[0]
		var maxFlag *cli.IntFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "max-results" {
				maxFlag = f
				break
			}
		}
		require.NotNil(t, maxFlag)
		assert.Equal(t, 10, maxFlag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN", "Debug"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
