//go:build stave

package main

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

var Default = Build

var Aliases = map[string]any{
	"b":  Build,
	"t":  Test.Default,
	"fz": Test.Fuzz,
	"rt": Corpus.Default,
	"v":  Verify,
}

type (
	Test   st.Namespace
	Corpus st.Namespace
	CI     st.Namespace
)

const binary = "bin/jlpp"

// Build compiles jlpp with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building jlpp...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/jlpp")
}

// Verify checks formatting, vets, and runs the tests.
func Verify() error {
	out, err := sh.Output("gofmt", "-l", "cmd", "internal", "pkg")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	st.Deps(Test.Default)
	return nil
}

// Clean removes build artifacts and corpus reports.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", "corpus.json", "testdata/fuzz"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs jlpp to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing jlpp...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/jlpp")
}

// Default runs the tests with race detection and coverage.
func (Test) Default() error {
	jobs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race",
		"-p", jobs,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

// Printer runs only the engine packages: tree, parser, syntax model and
// lexical printer.
func (Test) Printer() error {
	return sh.RunV("go", "tool", "gotestsum", "-f", "testname", "--",
		"./pkg/jast/...", "./pkg/parser/...", "./pkg/csm/...", "./pkg/lexical/...")
}

// Fuzz fuzzes the tokenizer for $JLPP_FUZZTIME (default 30s). Every byte of
// the input must end up in exactly one token.
func (Test) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("JLPP_FUZZTIME"), "30s")
	return sh.RunV("go", "test", "-run=^$", "-fuzz=^FuzzTokenize$", "-fuzztime="+fuzzTime, "./pkg/parser")
}

// Default round-trips every Java file under $JLPP_CORPUS, preserved and
// canonical.
func (Corpus) Default() {
	st.SerialDeps(Corpus.Preserved, Corpus.Canonical)
}

// Preserved checks that the corpus prints back byte for byte.
func (Corpus) Preserved() error {
	dir, err := corpusDir()
	if err != nil {
		return err
	}
	st.Deps(Build)
	return sh.RunV(binary, "roundtrip", "--summary", dir)
}

// Canonical checks that the canonical layout of the corpus is stable.
func (Corpus) Canonical() error {
	dir, err := corpusDir()
	if err != nil {
		return err
	}
	st.Deps(Build)
	return sh.RunV(binary, "roundtrip", "--canonical", "--summary", dir)
}

// Report writes the preserved round trip of the corpus as JSON to corpus.json.
// Failures are recorded in the report rather than failing the target.
func (Corpus) Report() error {
	dir, err := corpusDir()
	if err != nil {
		return err
	}
	st.Deps(Build)

	out, runErr := sh.Output(binary, "roundtrip", "--format", "json", dir)
	if out == "" && runErr != nil {
		return runErr
	}
	if err := os.WriteFile("corpus.json", []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("write corpus.json: %w", err)
	}
	fmt.Println("Wrote corpus.json")
	return nil
}

// Gate runs what CI requires before merging.
func (CI) Gate() {
	st.SerialDeps(Verify, Build, CI.ModTidy, CI.Cross)
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	before, err := readModFiles()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := readModFiles()
	if err != nil {
		return err
	}
	if before != after {
		return errors.New("go.mod or go.sum changed after go mod tidy")
	}
	return nil
}

// Cross builds jlpp for the release platforms.
func (CI) Cross() error {
	for _, platform := range []string{"linux/amd64", "linux/arm64", "darwin/arm64", "windows/amd64"} {
		goos, goarch, _ := strings.Cut(platform, "/")
		fmt.Println("  building", platform)
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, "./cmd/jlpp"); err != nil {
			return fmt.Errorf("build %s: %w", platform, err)
		}
	}
	return nil
}

func corpusDir() (string, error) {
	dir := os.Getenv("JLPP_CORPUS")
	if dir == "" {
		return "", errors.New("set JLPP_CORPUS to a directory of Java sources")
	}
	return filepath.Abs(dir)
}

func readModFiles() (string, error) {
	var b strings.Builder
	for _, name := range []string{"go.mod", "go.sum"} {
		content, err := os.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		b.Write(content)
	}
	return b.String(), nil
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags injects version, commit and build date into cmd/jlpp.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}
