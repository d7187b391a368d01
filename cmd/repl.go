package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/superloach/cog/pkg/cog"
)

const banner = "Cog %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

// loadReplFuncs adds repl-specific builtins to a Context.
func loadReplFuncs(ctx *cog.Context, stdout io.Writer) {
	ctx.LoadFunc("clear", func(ctx *cog.Context, _ cog.Value) (cog.Value, error) {
		fmt.Fprint(stdout, "\x1b[2J\x1b[H")
		return cog.NoneValue{}, nil
	})
	ctx.LoadFunc("dump", func(ctx *cog.Context, _ cog.Value) (cog.Value, error) {
		ctx.Dump()
		return cog.NoneValue{}, nil
	})
}

func runRepl(eng *cog.Engine, cfg *cog.Config, stdout io.Writer) error {
	fmt.Fprintf(stdout, banner+"\n", Version)

	ctx := eng.CreateContext()
	loadReplFuncs(ctx, stdout)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		text, err := ln.Prompt(cfg.Repl.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Fprintln(stdout)
			return nil
		} else if err != nil {
			return fmt.Errorf("unexpected end of input:\n\t-> %w", err)
		}

		switch strings.TrimSpace(text) {
		case "":
			continue
		case ":quit":
			return nil
		}
		ln.AppendHistory(text)

		// errors at the top level are already shown to the user by the
		// Context, and never end the session
		val, _ := ctx.Exec(strings.NewReader(text))
		if val != nil {
			if _, isNone := val.(cog.NoneValue); !isNone {
				cog.LogInteractive(val.String())
			}
		}
	}
}
