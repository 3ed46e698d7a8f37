package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/snapdeck/genicons/internal/history"
	"github.com/snapdeck/genicons/internal/icongen"
	"github.com/snapdeck/genicons/internal/manifest"
	"github.com/snapdeck/genicons/internal/paths"
	"github.com/snapdeck/genicons/internal/watch"
)

const defaultHistoryRuns = 10

func watchCmd(opts runOpts) {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		fatal("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	detail := isTerminal(os.Stdout)
	once := func() {
		if _, err := generate(root, opts.Log, os.Stdout, detail); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	once()
	fmt.Printf("Watching %s (Ctrl-C to stop)\n", paths.Rel(root, paths.Source(root)))
	if err := watch.Watch(ctx, paths.Source(root), watch.DefaultDelay, once); err != nil {
		fatal("%v", err)
	}
}

func manifestCmd(args []string) {
	prefix := paths.OutDirName
	if len(args) > 0 {
		prefix = args[0]
	}
	data, err := manifest.Marshal(manifest.Icons(icongen.DefaultSpecs(), prefix))
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(string(data))
}

func historyCmd(args []string) {
	n, err := parseCount(args)
	if err != nil {
		fatal("%v", err)
	}

	p := paths.HistoryPath()
	if _, err := os.Stat(p); os.IsNotExist(err) {
		fmt.Println("No runs recorded yet (use --log).")
		return
	}

	store, err := history.NewSQLiteStore(p)
	if err != nil {
		fatal("%v", err)
	}
	defer store.Close()

	runs, err := store.Recent(n)
	if err != nil {
		fatal("%v", err)
	}
	renderRuns(os.Stdout, runs, time.Now())
}

func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return defaultHistoryRuns, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("history count must be a positive number, got %q", args[0])
	}
	return n, nil
}

// renderRuns prints runs newest first, one header line per run followed
// by its files.
func renderRuns(w io.Writer, runs []history.Run, now time.Time) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet (use --log).")
		return
	}
	for _, r := range runs {
		when := humanize.RelTime(r.Time, now, "ago", "from now")
		status := "ok"
		if !r.OK() {
			status = "failed: " + r.Err
		}

		var total int64
		for _, f := range r.Files {
			total += f.Bytes
		}

		fmt.Fprintf(w, "%s  %s  %s  %d files, %s  %s\n",
			r.Time.Local().Format("2006-01-02 15:04:05"), when, r.Root,
			len(r.Files), humanize.Bytes(uint64(total)), status)
		for _, f := range r.Files {
			fmt.Fprintf(w, "    %-24s %s\n", f.Path, humanize.Bytes(uint64(f.Bytes)))
		}
	}
}
