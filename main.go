// termdeck plays markdown slide decks in the terminal.
//
// Usage:
//
//	termdeck play FILE|DIR
//	termdeck preview FILE|DIR
//	termdeck dump FILE|DIR
//	termdeck cells FILE [--language go] [--line-numbers]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"termdeck/internal/config"
	"termdeck/internal/deck"
	"termdeck/internal/logging"
	"termdeck/internal/slide"
	"termdeck/internal/style"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries the settings shared by every command.
type app struct {
	configPath  string
	logLevel    string
	logFormat   string
	logFile     string
	fps         int
	lineNumbers bool
	resume      bool
	foreground  string
	background  string

	cfg     *config.Config
	logSink io.Closer
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "termdeck",
		Short: "Play markdown slide decks in the terminal",
		Long: "termdeck turns a markdown file into full-screen terminal slides with\n" +
			"syntax-highlighted code, typed-out shell sessions and animated backgrounds.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/termdeck/config.toml)")
	f.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.StringVar(&a.logFormat, "log-format", "", "Log format (text, logfmt, json)")
	f.StringVar(&a.logFile, "log-file", "", "Write logs to this file")
	f.IntVar(&a.fps, "fps", 0, "Display frames per second")
	f.BoolVar(&a.lineNumbers, "line-numbers", false, "Number the lines of typed-out source files")
	f.BoolVar(&a.resume, "resume", false, "Keep reveal progress when returning to a slide")
	f.StringVar(&a.foreground, "fg", "", "Default slide foreground color")
	f.StringVar(&a.background, "bg", "", "Default slide background color")

	root.AddCommand(newPlayCmd(a))
	root.AddCommand(newPreviewCmd(a))
	root.AddCommand(newDumpCmd(a))
	root.AddCommand(newCellsCmd(a))
	return root, a
}

// close releases the log file, if any. It runs after Execute whether or not
// the command failed.
func (a *app) close() error {
	if a.logSink == nil {
		return nil
	}
	err := a.logSink.Close()
	a.logSink = nil
	return err
}

// setup loads the config file, applies flags set on the command line and
// configures logging. Interactive commands own the terminal, so their logs
// are dropped unless a log file is given.
func (a *app) setup(cmd *cobra.Command, interactive bool) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	override("log-level", func() { cfg.LogLevel = a.logLevel })
	override("log-format", func() { cfg.LogFormat = a.logFormat })
	override("log-file", func() { cfg.LogFile = a.logFile })
	override("fps", func() { cfg.FPS = a.fps })
	override("line-numbers", func() { cfg.LineNumbers = a.lineNumbers })
	override("resume", func() { cfg.ResumeOnReentry = a.resume })
	override("fg", func() { cfg.Foreground = a.foreground })
	override("bg", func() { cfg.Background = a.background })

	if err := cfg.Validate(style.DefaultPalette()); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.ErrOrStderr()
	switch {
	case cfg.LogFile != "":
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return err
		}
		a.logSink = f
		w = f
	case interactive:
		w = io.Discard
	}
	logging.Init(level, cfg.LogFormat, w)

	a.cfg = cfg
	return nil
}

func (a *app) deckOptions(term slide.Terminal, banner slide.Banner) deck.Options {
	return deck.Options{
		Terminal:    term,
		Banner:      banner,
		Foreground:  a.cfg.Foreground,
		Background:  a.cfg.Background,
		LineNumbers: a.cfg.LineNumbers,
		Log:         logging.New("deck"),
	}
}

func main() {
	root, a := newRootCmd()
	err := root.Execute()
	_ = a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
