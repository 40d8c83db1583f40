package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lc3kit/lc3kit/asm"
	"github.com/lc3kit/lc3kit/lint"
	"github.com/lc3kit/lc3kit/style"
)

func main() {
	var configPath string
	var printConfig bool
	var verbose bool

	flag.StringVar(&configPath, "config-path", "", "Settings file to use")
	flag.BoolVar(&printConfig, "print-config", false, "Print the resolved settings as TOML")
	flag.BoolVar(&verbose, "verbose", false, "Verbose mode")
	flag.Parse()

	target := "."
	switch flag.NArg() {
	case 0:
		if !printConfig {
			log.Fatalf("%v: expected a file or directory argument", os.Args[0])
		}
	case 1:
		target = flag.Arg(0)
	default:
		log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	cfg := loadConfig(configPath, target, verbose)
	if printConfig {
		if err := style.Dump(os.Stdout, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	failed := false
	findings := 0
	for _, path := range targets(target) {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		source := string(data)

		prog, err := asm.Parse(source)
		if err != nil {
			reportParseError(path, source, err)
			failed = true
			continue
		}

		diags := lint.Check(prog, cfg.Lint)
		for _, d := range diags {
			fmt.Print(d.Render(path, source))
		}
		findings += len(diags)
		if len(diags) > 0 {
			failed = true
		} else if verbose {
			fmt.Printf("%v: ok\n", path)
		}
	}

	if findings > 0 {
		fmt.Printf("%d warnings.\n", findings)
	}
	if failed {
		os.Exit(1)
	}
}

func reportParseError(path, source string, err error) {
	var syn *asm.SyntaxError
	if errors.As(err, &syn) {
		fmt.Fprint(os.Stderr, syn.Render(path, source))
		return
	}
	fmt.Fprintf(os.Stderr, "%v: %v\n", path, err)
}

// loadConfig resolves the settings: an explicit path wins, otherwise the
// nearest settings file upward from the target. A malformed file falls
// back to defaults with a warning.
func loadConfig(configPath, target string, verbose bool) style.Config {
	path := configPath
	if path == "" {
		abs, err := filepath.Abs(target)
		if err != nil {
			abs = target
		}
		var ok bool
		if path, ok = style.Discover(abs); !ok {
			if verbose {
				log.Print("no settings file found, using defaults")
			}
			return style.Default()
		}
	}

	cfg, err := style.Load(path)
	if err != nil {
		log.Printf("%v: %v, using defaults", path, err)
	} else if verbose {
		log.Printf("settings: %v", path)
	}
	return cfg
}

// targets expands a directory argument to its .asm files, not recursing
// into subdirectories. A file argument is taken as-is.
func targets(target string) (files []string) {
	info, err := os.Stat(target)
	if err != nil {
		log.Fatalf("%v: %v", target, err)
	}
	if !info.IsDir() {
		return []string{target}
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		log.Fatalf("%v: %v", target, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".asm") {
			continue
		}
		files = append(files, filepath.Join(target, entry.Name()))
	}
	return
}
