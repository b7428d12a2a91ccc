package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mazzegi/log"
	"github.com/mazzegi/strbox/env"
	"github.com/mazzegi/strbox/progress"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

const (
	keyDB          = "strbox_db"
	keyBarLength   = "strbox_bar_length"
	keyBarElapsed  = "strbox_bar_elapsed"
	keyBarProgress = "strbox_bar_progress"
	keyBarEmpty    = "strbox_bar_empty"
	keyLang        = "strbox_lang"

	// keyOpts holds option tokens like "--strbox_lang de --strbox_bar_length 20".
	// They override the other config sources.
	keyOpts = "strbox_opts"
)

type config struct {
	DB   string
	Bar  progress.Options
	Lang language.Tag
}

func loadConfig(e env.Env) config {
	cfg := config{
		DB: e.StringOrDefault(keyDB, "strbox.db"),
		Bar: progress.Options{
			ElapsedChar:  e.StringOrDefault(keyBarElapsed, ""),
			ProgressChar: e.StringOrDefault(keyBarProgress, ""),
			EmptyChar:    e.StringOrDefault(keyBarEmpty, ""),
			Length:       e.IntOrDefault(keyBarLength, 0),
		}.WithDefaults(),
		Lang: language.English,
	}
	if s, ok := e.String(keyLang); ok {
		tag, err := language.Parse(s)
		if err != nil {
			log.Warnf("config: %s=%q: %v; using %s", keyLang, s, err, cfg.Lang)
		} else {
			cfg.Lang = tag
		}
	}
	return cfg
}

type app struct {
	cfg config
}

// NewRootCmd builds the command tree on top of cfg.
func NewRootCmd(cfg config) *cobra.Command {
	a := &app{cfg: cfg}
	root := &cobra.Command{
		Use:   "strbox",
		Short: "strbox - text helpers for chat commands",
		Long: `strbox splits command tokens into content, flags and options
and offers small text transformations for chat output.

Configuration is read from the environment and from .env, .env.toml
and .env.yaml files in the working directory and its parents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.cfg.DB, "db", cfg.DB, "history database file")

	root.AddCommand(
		a.newParseCmd(),
		a.newHistoryCmd(),
		a.newProgressCmd(),
		a.newTokenCmd(),
		newVersionCmd(),
	)
	root.AddCommand(newTextCmds()...)
	return root
}

func configTokens() []string {
	return strings.Fields(os.Getenv(keyOpts))
}

func Execute() error {
	cfg := loadConfig(env.Load(configTokens()))
	return NewRootCmd(cfg).Execute()
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(fmt.Sprintf("error: %s: %v", msg, err)))
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
