package cog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ANSI_RESET     = "\x1b[0;0m"
	ANSI_BLUE      = "\x1b[34;22m"
	ANSI_GREEN     = "\x1b[32;22m"
	ANSI_RED       = "\x1b[31;22m"
	ANSI_BLUE_BOLD = "\x1b[34;1m"
	ANSI_RED_BOLD  = "\x1b[31;1m"
)

// ColorMode decides whether log helpers decorate output with ANSI escapes.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var (
	colorMode ColorMode = ColorAuto

	logOut    io.Writer = os.Stdout
	logErrOut io.Writer = os.Stderr
)

// SetColorMode changes how all subsequent log lines are colored.
func SetColorMode(mode ColorMode) {
	colorMode = mode
}

// SetLogOutput redirects debug/interactive and error log lines.
// Passing nil for either writer leaves it unchanged.
func SetLogOutput(out, errOut io.Writer) {
	if out != nil {
		logOut = out
	}
	if errOut != nil {
		logErrOut = errOut
	}
}

func colored(w io.Writer) bool {
	switch colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func LogDebug(args ...string) {
	line := "debug: " + strings.Join(args, " ")
	if colored(logOut) {
		line = ANSI_BLUE_BOLD + "debug: " + ANSI_BLUE + strings.Join(args, " ") + ANSI_RESET
	}
	fmt.Fprintln(logOut, line)
}

func LogDebugf(s string, args ...interface{}) {
	LogDebug(fmt.Sprintf(s, args...))
}

func LogInteractive(args ...string) {
	line := strings.Join(args, " ")
	if colored(logOut) {
		line = ANSI_GREEN + line + ANSI_RESET
	}
	fmt.Fprintln(logOut, line)
}

func LogInteractivef(s string, args ...interface{}) {
	LogInteractive(fmt.Sprintf(s, args...))
}

func LogSafeErr(reason int, args ...string) {
	errStr := reasonName(reason)
	line := errStr + ": " + strings.Join(args, " ")
	if colored(logErrOut) {
		line = ANSI_RED_BOLD + errStr + ": " + ANSI_RED + strings.Join(args, " ") + ANSI_RESET
	}
	fmt.Fprintln(logErrOut, line)
}

func LogErr(reason int, args ...string) {
	LogSafeErr(reason, args...)
	os.Exit(reason)
}

func LogErrf(reason int, s string, args ...interface{}) {
	LogErr(reason, fmt.Sprintf(s, args...))
}
