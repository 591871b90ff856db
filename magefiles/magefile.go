//go:build mage

// Package main contains Mage build targets for resume-engine developer tooling.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories the CLI writes to.
var projectDirs = []string{
	"output",
	".resume-engine",
}

// Init creates the output and history directories.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "resume-engine"
	cmdPkg  = "./cmd/resume-engine"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Property runs the property-based tests, which sit behind the property build tag.
func Property() error {
	mg.Deps(Test)
	return sh.RunV("go", "test", "-tags", "property", "./...")
}

// Sample renders examples/resume.yaml with every built-in template into output/.
func Sample() error {
	mg.Deps(Init, Build)
	bin := filepath.Join(binDir, binName)
	for _, tmpl := range []string{"basic", "two_column"} {
		out := filepath.Join("output", "resume-"+tmpl+".tex")
		if err := sh.RunV(bin, "render", "examples/resume.yaml", "--template", tmpl, "--output", out); err != nil {
			return fmt.Errorf("rendering %s: %w", tmpl, err)
		}
		fmt.Println("  ", out)
	}
	return nil
}

// statRoots are the source trees counted by Stats.
var statRoots = []string{"cmd", "internal", "pkg"}

// lineCounts holds non-blank line totals for one package directory.
type lineCounts struct {
	prod, test, tmpl int
}

// Stats prints non-blank line counts per package: Go code, Go tests, and
// LaTeX templates.
func Stats() error {
	counts := make(map[string]*lineCounts)
	for _, root := range statRoots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			var field func(*lineCounts) *int
			switch {
			case strings.HasSuffix(path, "_test.go"):
				field = func(c *lineCounts) *int { return &c.test }
			case strings.HasSuffix(path, ".go"):
				field = func(c *lineCounts) *int { return &c.prod }
			case strings.HasSuffix(path, ".tmpl"):
				field = func(c *lineCounts) *int { return &c.tmpl }
			default:
				return nil
			}
			n, err := nonBlankLines(path)
			if err != nil {
				return err
			}
			pkg := filepath.Dir(path)
			if filepath.Base(pkg) == "templates" {
				pkg = filepath.Dir(pkg)
			}
			if counts[pkg] == nil {
				counts[pkg] = &lineCounts{}
			}
			*field(counts[pkg]) += n
			return nil
		})
		if err != nil {
			return fmt.Errorf("walking %s: %w", root, err)
		}
	}

	pkgs := make([]string, 0, len(counts))
	for p := range counts {
		pkgs = append(pkgs, p)
	}
	sort.Strings(pkgs)

	var total lineCounts
	fmt.Printf("%-28s %6s %6s %6s\n", "package", "code", "tests", "tmpl")
	for _, p := range pkgs {
		c := counts[p]
		fmt.Printf("%-28s %6d %6d %6d\n", p, c.prod, c.test, c.tmpl)
		total.prod += c.prod
		total.test += c.test
		total.tmpl += c.tmpl
	}
	fmt.Printf("%-28s %6d %6d %6d\n", "total", total.prod, total.test, total.tmpl)
	return nil
}

func nonBlankLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n, nil
}
