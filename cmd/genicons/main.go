// genicons writes the PWA icon set (standard and maskable, 192 and 512
// pixels) from the project's source logo.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/term"

	"github.com/snapdeck/genicons/internal/history"
	"github.com/snapdeck/genicons/internal/icongen"
	"github.com/snapdeck/genicons/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// runOpts holds the global flags.
type runOpts struct {
	Root string // project root; empty means the working directory
	Log  bool   // record the run in the history database
}

func main() {
	opts, rest, err := parseArgs(os.Args[1:])
	if err != nil {
		fatal("%v", err)
	}

	if len(rest) == 0 {
		generateCmd(opts)
		return
	}

	switch rest[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "watch":
		watchCmd(opts)
	case "manifest":
		manifestCmd(rest[1:])
	case "history":
		historyCmd(rest[1:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", rest[0])
		fmt.Fprintf(os.Stderr, "Run 'genicons help' for usage.\n")
		os.Exit(1)
	}
}

// parseArgs pulls global flags out of args and returns the remainder.
func parseArgs(args []string) (runOpts, []string, error) {
	var opts runOpts
	var rest []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--root", "-r":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--root requires a directory")
			}
			opts.Root = args[i+1]
			i++
		case "--log":
			opts.Log = true
		default:
			rest = append(rest, args[i])
		}
	}
	return opts, rest, nil
}

func resolveRoot(root string) (string, error) {
	if root == "" {
		return os.Getwd()
	}
	return filepath.Abs(root)
}

func generateCmd(opts runOpts) {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		fatal("%v", err)
	}
	if _, err := generate(root, opts.Log, os.Stdout, isTerminal(os.Stdout)); err != nil {
		fatal("%v", err)
	}
}

// generate runs the icon generator once against root, printing the
// written paths to out, and records the run when logging is enabled.
func generate(root string, logRun bool, out io.Writer, detail bool) ([]icongen.Result, error) {
	g := icongen.New(root)
	g.Out = out
	g.Detail = detail

	results, err := g.Run()
	if logRun {
		logToHistory(g, results, err)
	}
	return results, err
}

// logToHistory is best-effort: a history failure never fails the run.
func logToHistory(g *icongen.Generator, results []icongen.Result, runErr error) {
	store, err := history.NewSQLiteStore(paths.HistoryPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(newRun(g, results, runErr)); err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
	}
}

func newRun(g *icongen.Generator, results []icongen.Result, runErr error) history.Run {
	run := history.Run{Root: g.Root, Source: g.Source}
	for _, r := range results {
		run.Files = append(run.Files, history.File{Path: r.Path, Size: r.Spec.Size, Bytes: r.Bytes})
	}
	if runErr != nil {
		run.Err = runErr.Error()
	}
	return run
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("genicons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("genicons %s - Generate PWA icons from the project logo\n", version)
	fmt.Println(`
Usage:
  genicons [options]
  genicons [options] <command>

Options:
  --root, -r <dir>       Project root (default: current directory)
  --log                  Record the run in the history database

Commands:
  watch                  Regenerate whenever the source logo changes
  manifest [prefix]      Print web manifest "icons" JSON (default prefix: icons)
  history [N]            Show the last N recorded runs (default: 10)
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Files:
  <root>/snapdeck_logo.png         source logo (required)
  <root>/icons/icon-192.png        192x192, 20px padding
  <root>/icons/icon-512.png        512x512, 56px padding
  <root>/icons/maskable-192.png    192x192, 32px padding
  <root>/icons/maskable-512.png    512x512, 96px padding

Existing icons are overwritten.`)
}
