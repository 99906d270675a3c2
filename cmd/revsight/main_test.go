package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetup(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setup,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		err := newApp().Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestCollectFiles(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "JFK_10_01_2026.json")
		require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

		files, err := collectFiles(file)
		require.NoError(t, err)
		assert.Equal(t, []string{file}, files)
	})

	t.Run("directory filters to json", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.JSON"), []byte("{}"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

		files, err := collectFiles(dir)
		require.NoError(t, err)
		assert.Len(t, files, 2)
		for _, file := range files {
			assert.Contains(t, file, dir)
		}
	})

	t.Run("missing path fails", func(t *testing.T) {
		_, err := collectFiles(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})
}

func TestAIConfigFromFlags(t *testing.T) {
	var captured bool
	app := &cli.App{
		Name: "test",
		Flags: joinFlags(chatFlags(), embeddingFlags(), []cli.Flag{
			&cli.StringFlag{Name: "token"},
		}),
		Action: func(c *cli.Context) error {
			captured = true
			cfg := aiConfigFromFlags(c)
			require.NoError(t, cfg.Validate())
			assert.Equal(t, "http://models.internal/v1", cfg.ChatHost)
			assert.Equal(t, "qwen3:8b", cfg.ChatModel)
			// Unset flags fall back to the built-in defaults
			assert.NotEmpty(t, cfg.EmbeddingHost)
			assert.NotEmpty(t, cfg.EmbeddingModel)
			return nil
		},
	}

	err := app.Run([]string{
		"test",
		"--chat-host", "http://models.internal",
		"--chat-model", "qwen3:8b",
	})
	require.NoError(t, err)
	require.True(t, captured)
}

func TestCommandFlagWiring(t *testing.T) {
	t.Run("db flag is required", func(t *testing.T) {
		flags := dbFlags()
		var dbFlag *cli.StringFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "db" {
				dbFlag = f
				break
			}
		}
		require.NotNil(t, dbFlag)
		assert.True(t, dbFlag.Required)
		assert.Contains(t, dbFlag.Aliases, "d")
	})

	t.Run("joinFlags preserves order", func(t *testing.T) {
		flags := joinFlags(dbFlags(), chatFlags())
		require.Len(t, flags, len(dbFlags())+len(chatFlags()))
		first, ok := flags[0].(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "db", first.Name)
	})
}
