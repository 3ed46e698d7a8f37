package icongen

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	_ "golang.org/x/image/webp"

	"github.com/snapdeck/genicons/internal/paths"
)

// Result describes one written icon.
type Result struct {
	Spec  Spec
	Path  string // relative to the generator root, slash-separated
	Bytes int64
}

// Generator renders Specs from Source into OutDir.
type Generator struct {
	Root   string
	Source string
	OutDir string
	Specs  []Spec

	// Out receives the list of generated files. Nil discards it.
	Out io.Writer
	// Detail appends a total size line after the list.
	Detail bool
}

// New returns a Generator for the fixed layout under root that lists
// written files on stdout.
func New(root string) *Generator {
	return &Generator{
		Root:   root,
		Source: paths.Source(root),
		OutDir: paths.OutDir(root),
		Specs:  DefaultSpecs(),
		Out:    os.Stdout,
	}
}

// Run loads the source logo and writes one PNG per spec, in order.
// Existing files are overwritten. The first failure stops the run; the
// results written so far are returned alongside the error.
func (g *Generator) Run() ([]Result, error) {
	if _, err := os.Stat(g.Source); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, g.Source)
		}
		return nil, fmt.Errorf("checking source: %w", err)
	}

	for _, s := range g.Specs {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
	}

	if err := os.MkdirAll(g.OutDir, paths.DirPerm); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	img, err := imaging.Open(g.Source)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	base := EnsureRGBA(img)

	results := make([]Result, 0, len(g.Specs))
	for _, s := range g.Specs {
		r, err := g.render(base, s)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}

	if g.Out != nil {
		Report(g.Out, results, g.Detail)
	}
	return results, nil
}

func (g *Generator) render(base *image.NRGBA, s Spec) (Result, error) {
	icon, err := FitOnSquare(base, s.Size, s.Padding, Transparent)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", s.Name, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, icon, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return Result{}, fmt.Errorf("encoding %s: %w", s.Name, err)
	}

	dst := filepath.Join(g.OutDir, s.Name)
	if err := paths.AtomicWrite(dst, buf.Bytes()); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", s.Name, err)
	}

	return Result{Spec: s, Path: paths.Rel(g.Root, dst), Bytes: int64(buf.Len())}, nil
}

// Report prints the generated files in order, one "- path" line each.
// With detail, a total line follows the list; the path lines never change.
func Report(w io.Writer, results []Result, detail bool) {
	fmt.Fprintln(w, "Generated:")
	var total int64
	for _, r := range results {
		fmt.Fprintf(w, "- %s\n", r.Path)
		total += r.Bytes
	}
	if detail {
		fmt.Fprintf(w, "%d files, %s\n", len(results), humanize.Bytes(uint64(total)))
	}
}

// Paths returns the relative paths of results.
func Paths(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Path
	}
	return out
}
