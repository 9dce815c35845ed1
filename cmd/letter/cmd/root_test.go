package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/letter/foundation/core/error"
	mdwlog "github.com/msto63/letter/foundation/core/log"
)

// run executes the root command with args and returns stdout and stderr
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	exprSrc, cfgFile, verbose, parseOutput, fmtWrite = "", "", false, "tree", false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFmtCommand(t *testing.T) {
	out, _, err := run(t, "", "fmt", "-e", "x=y=1+2*3;")
	if err != nil {
		t.Fatalf("fmt error = %v", err)
	}
	if want := "(x = (y = (1 + (2 * 3))));\n"; out != want {
		t.Errorf("fmt output = %q, want %q", out, want)
	}
}

func TestFmtWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.let")
	if err := os.WriteFile(path, []byte("let a=1;if(a)a+=1;"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "", "fmt", "-w", path)
	if err != nil {
		t.Fatalf("fmt -w error = %v", err)
	}
	if out != path+"\n" {
		t.Errorf("fmt -w output = %q, want the file name", out)
	}

	content, _ := os.ReadFile(path)
	if want := "let a = 1;\nif (a) (a += 1);\n"; string(content) != want {
		t.Errorf("rewritten file = %q, want %q", content, want)
	}

	out, _, err = run(t, "", "fmt", "-w", path)
	if err != nil || out != "" {
		t.Errorf("formatted file should be left alone, out = %q, err = %v", out, err)
	}

	if _, _, err := run(t, "", "fmt", "-w", "-e", "x;"); err == nil {
		t.Errorf("fmt -w with --expr should fail")
	}
}

func TestParseCommand(t *testing.T) {
	t.Run("tree from stdin", func(t *testing.T) {
		out, _, err := run(t, "if (a) b; else c;", "parse")
		if err != nil {
			t.Fatalf("parse error = %v", err)
		}
		for _, want := range []string{"IfStatement", "test: Identifier a", "alternate: ExpressionStatement"} {
			if !strings.Contains(out, want) {
				t.Errorf("parse output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("source from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "program.let")
		if err := os.WriteFile(path, []byte("let a = 2 + 2 * 2;"), 0o644); err != nil {
			t.Fatal(err)
		}

		out, _, err := run(t, "", "parse", "--format", "source", path)
		if err != nil {
			t.Fatalf("parse error = %v", err)
		}
		if want := "let a = (2 + (2 * 2));\n"; out != want {
			t.Errorf("parse output = %q, want %q", out, want)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := run(t, "", "parse", "--format", "json", "-e", "x;")
		if err == nil {
			t.Fatal("expected error for unknown format")
		}
	})
}

func TestTokensCommand(t *testing.T) {
	out, _, err := run(t, "", "tokens", "-e", "x += 'a';")
	if err != nil {
		t.Fatalf("tokens error = %v", err)
	}
	for _, want := range []string{"IDENTIFIER", "COMPLEX_ASSIGN", `"+="`, "1:6"} {
		if !strings.Contains(out, want) {
			t.Errorf("tokens output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	out, _, err := run(t, "", "check", "-e", "let a, b = a;")
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if out != "<expr>: ok\n" {
		t.Errorf("check output = %q", out)
	}

	_, _, err = run(t, "", "check", "-e", "a;\n1 = 2;")
	if err == nil {
		t.Fatal("expected check to fail")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidAssignmentTarget) {
		t.Errorf("check error = %v, want invalid assignment target", err)
	}

	var buf bytes.Buffer
	printError(&buf, err)
	for _, want := range []string{"<expr>:2:1", "SYNTAX_INVALID_ASSIGNMENT_TARGET", "1 = 2;\n^"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("printed error missing %q:\n%s", want, buf.String())
		}
	}
}

func TestReportErrorVerbose(t *testing.T) {
	_, _, err := run(t, "", "check", "-e", "1 = 2;")
	if err == nil {
		t.Fatal("expected check to fail")
	}

	var logs, out bytes.Buffer
	savedLogger := logger
	defer func() { logger, verbose = savedLogger, false }()
	logger = mdwlog.New().WithOutput(&logs).WithLevel(mdwlog.LevelDebug).WithFormat(mdwlog.FormatLogfmt)

	verbose = false
	reportError(&out, err)
	if logs.Len() != 0 {
		t.Errorf("structured log written without --verbose: %q", logs.String())
	}
	if !strings.Contains(out.String(), "SYNTAX_INVALID_ASSIGNMENT_TARGET") {
		t.Errorf("printed error = %q", out.String())
	}

	verbose = true
	reportError(&out, err)
	for _, want := range []string{`error_code="SYNTAX_INVALID_ASSIGNMENT_TARGET"`, `error_operation="parser.Parse"`, "error_line=1"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("verbose log missing %q: %q", want, logs.String())
		}
	}
}

func TestFmtWriteVerboseLogsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.let")
	if err := os.WriteFile(path, []byte("a=1;"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := run(t, "", "-v", "fmt", "-w", path)
	if err != nil {
		t.Fatalf("fmt -w error = %v", err)
	}
	if !strings.Contains(stderr, "Source rewritten") || !strings.Contains(stderr, path) {
		t.Errorf("verbose stderr = %q, want the rewrite logged", stderr)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letter.yaml")
	content := "parser:\n  max_depth: 2\nlog:\n  level: error\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := run(t, "", "--config", path, "check", "-e", "{{{x;}}}")
	if !mdwerror.HasCode(err, mdwerror.CodeNestingTooDeep) {
		t.Errorf("error = %v, want nesting too deep", err)
	}

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "check", "-e", "x;")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "letter v") {
		t.Errorf("version output = %q", out)
	}
}
