package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/superloach/cog/pkg/cog"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	cmd := newRootCommand(strings.NewReader(stdin), stdout, stderr)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeScript(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestEvalFlag(t *testing.T) {
	out, _, err := runCommand(t, "", "--eval", "print(1 + 2)")
	if err != nil {
		t.Fatalf("cog --eval returned error: %v", err)
	}
	if out != "3\n" {
		t.Fatalf("stdout = %q, want %q", out, "3\n")
	}
}

func TestRunsStdinByDefault(t *testing.T) {
	out, _, err := runCommand(t, "// header\nprint('')\nprint(\"Hello world\")\nx = 5\nprint(x)\n")
	if err != nil {
		t.Fatalf("cog returned error: %v", err)
	}
	want := "Comment: // header\n\nHello world\n5\n"
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestRunsFilesInSeparateContexts(t *testing.T) {
	dir := t.TempDir()
	first := writeScript(t, dir, "first.cog", "x = 1\nprint(x)\n")
	second := writeScript(t, dir, "second.cog", "print('second')\nprint(x)\n")

	out, errOut, err := runCommand(t, "", first, second)
	if !errors.Is(err, cog.ErrKindUndefined) {
		t.Fatalf("err = %v, want undefined name from the second file", err)
	}
	if out != "1\nsecond\n" {
		t.Fatalf("stdout = %q, want %q", out, "1\nsecond\n")
	}
	if !strings.Contains(errOut, "undefined name: x is not defined") {
		t.Fatalf("stderr = %q, want the undefined name report", errOut)
	}
	if got := exitCode(err); got != cog.ErrUndefined {
		t.Fatalf("exitCode = %d, want %d", got, cog.ErrUndefined)
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"1 - 2", cog.ErrSyntax},
		{"nope", cog.ErrUndefined},
		{"x = 1\nx(2)", cog.ErrNotCallable},
		{"'a' + 'b'", cog.ErrNotSummable},
		{"1 + 'b'", cog.ErrTypeMismatch},
	}

	for _, tt := range tests {
		_, _, err := runCommand(t, "", "--eval", tt.src)
		if err == nil {
			t.Errorf("cog --eval %q returned no error", tt.src)
			continue
		}
		if got := exitCode(err); got != tt.want {
			t.Errorf("cog --eval %q: exit code %d, want %d", tt.src, got, tt.want)
		}
	}

	if got := exitCode(errors.New("plain")); got != 1 {
		t.Fatalf("exitCode(plain error) = %d, want 1", got)
	}
}

func TestMissingFile(t *testing.T) {
	_, errOut, err := runCommand(t, "", filepath.Join(t.TempDir(), "missing.cog"))
	if !errors.Is(err, cog.ErrKindSystem) {
		t.Fatalf("err = %v, want system error", err)
	}
	if !strings.Contains(errOut, "could not open") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeScript(t, dir, "cog.yml", "debug:\n  dump: true\ncolor: never\n")

	out, _, err := runCommand(t, "", "--config", cfgPath, "--eval", "y = 3")
	if err != nil {
		t.Fatalf("cog returned error: %v", err)
	}
	if !strings.Contains(out, "debug: environment dump") || !strings.Contains(out, "y -> 3") {
		t.Fatalf("stdout = %q, want an environment dump", out)
	}

	bad := writeScript(t, dir, "bad.yml", "color: sometimes\n")
	if _, _, err := runCommand(t, "", "--config", bad, "--eval", "1"); err == nil {
		t.Fatalf("invalid config was accepted")
	}
}

func TestInvalidColorFlag(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCommand(strings.NewReader(""), stdout, stderr)
	cmd.SetArgs([]string{"--color", "rainbow", "--eval", "1"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("--color rainbow was accepted")
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCommand(t, "", "--version")
	if err != nil {
		t.Fatalf("cog --version returned error: %v", err)
	}
	if out != "cog v"+Version+"\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestReplFuncs(t *testing.T) {
	out := &bytes.Buffer{}
	cog.SetLogOutput(out, out)
	defer cog.SetLogOutput(os.Stdout, os.Stderr)

	eng := &cog.Engine{Stdout: out}
	ctx := eng.CreateContext()
	loadReplFuncs(ctx, out)

	if _, err := ctx.Exec(strings.NewReader("z = 9\ndump()\nclear()")); err != nil {
		t.Fatalf("Exec returned error: %v", err)
	}
	if !strings.Contains(out.String(), "z -> 9") {
		t.Fatalf("dump() output = %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "\x1b[2J\x1b[H") {
		t.Fatalf("clear() did not write the clear sequence: %q", out.String())
	}
}
