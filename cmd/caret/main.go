package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret"
	"github.com/iw2rmb/caret/editor"
)

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("caret", flag.ContinueOnError)
	logPath := fs.String("log", "", "append debug logs to this file")
	mouse := fs.Bool("mouse", true, "move the cursor with mouse clicks")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: caret [flags] FILE\n\nEdits FILE in memory; changes are never saved.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *showVersion {
		tag, err := caret.VersionTag()
		if err != nil {
			return err
		}
		fmt.Println(tag)
		return nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one file argument")
	}

	text, err := loadText(fs.Arg(0))
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "caret")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}
	logger.Printf("editing %s (%d bytes)", fs.Arg(0), len(text))

	cfg := editor.Config{
		Text:   text,
		Style:  editor.DefaultStyle(),
		Logger: logger,
	}
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if *mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model{editor: editor.New(cfg)}, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	logger.Printf("session ended")
	return nil
}

// loadText reads path with line endings normalized to '\n'.
func loadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n"), nil
}
