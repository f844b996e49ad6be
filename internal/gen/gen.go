package gen

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/alitto/pond"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/utahta/go-openuri"

	"github.com/KimNorgaard/go-kv3"
	"github.com/KimNorgaard/go-kv3/internal/blueprint"
	"github.com/KimNorgaard/go-kv3/internal/cfg"
)

// StdinInput is the input name that reads a blueprint from standard input.
const StdinInput = "-"

// Result represents the outcome of rendering one blueprint
type Result struct {
	// Input is the blueprint path or URL
	Input string
	// Output is the destination file, empty when printing to stdout
	Output string
	// Text is the rendered document
	Text []byte
	// Diff is the difference against the existing output in diff mode
	Diff string
	// Changed is true if the output differs from the existing file
	Changed bool
	// Err is the render or emit failure, nil on success
	Err error
}

// Generator renders blueprints into documents
type Generator struct {
	log  logrus.FieldLogger
	cfg  cfg.Root
	opts []kv3.Option
	diff bool

	// Stdin is read for the StdinInput blueprint
	Stdin io.Reader
	// Stdout receives documents and diffs
	Stdout io.Writer
}

// New returns a new Generator configured by <c>. If <diff> is true, outputs are compared with existing files
// instead of being written.
func New(log logrus.FieldLogger, c cfg.Root, diff bool) (*Generator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts, err := c.EncodeOptions()
	if err != nil {
		return nil, err
	}
	return &Generator{log: log, cfg: c, opts: opts, diff: diff, Stdin: os.Stdin, Stdout: os.Stdout}, nil
}

// Run renders every blueprint in <inputs> on a worker pool, then writes, prints or diffs the results in input
// order. Every input is attempted; the returned error reports how many failed.
func (g *Generator) Run(inputs []string) ([]Result, error) {
	inputs = lo.Uniq(inputs)
	if g.cfg.Output.Dir != "" || g.diff {
		dups := lo.FindDuplicatesBy(inputs, g.outputName)
		if len(dups) > 0 {
			return nil, errors.Newf("Run: blueprints %v map to the same output file", dups)
		}
	}

	results := make([]Result, len(inputs))
	pool := pond.New(g.cfg.Workers, 0, pond.MinWorkers(0))
	for i, in := range inputs {
		pool.Submit(func() {
			g.log.WithField("input", in).Debug("Rendering blueprint")
			results[i] = g.render(in)
		})
	}
	pool.StopAndWait()

	for i := range results {
		r := &results[i]
		if r.Err == nil {
			r.Err = g.emit(r)
		}
		if r.Err != nil {
			g.log.WithField("input", r.Input).Error(r.Err)
		}
	}

	failed := lo.CountBy(results, func(r Result) bool { return r.Err != nil })
	if failed > 0 {
		return results, errors.Newf("Run: %d of %d blueprints failed", failed, len(results))
	}
	return results, nil
}

func (g *Generator) render(in string) Result {
	r := Result{Input: in}
	if g.cfg.Output.Dir != "" || g.diff {
		r.Output = filepath.Join(g.cfg.Output.Dir, g.outputName(in))
	}

	rc, err := g.open(in)
	if err != nil {
		r.Err = errors.Wrap(err, "Open blueprint")
		return r
	}
	defer rc.Close()

	bp, err := blueprint.Load(rc)
	if err != nil {
		r.Err = err
		return r
	}
	doc, err := bp.Document(g.cfg.Header)
	if err != nil {
		r.Err = errors.Wrap(err, "Build document")
		return r
	}
	r.Text, err = kv3.Marshal(doc, g.opts...)
	if err != nil {
		r.Err = errors.Wrap(err, "Encode document")
		return r
	}

	if g.diff {
		old, err := os.ReadFile(r.Output)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			r.Err = errors.Wrap(err, "Read existing output")
			return r
		}
		r.Diff, r.Changed = Diff(r.Output, string(old), string(r.Text))
	}
	return r
}

func (g *Generator) open(in string) (io.ReadCloser, error) {
	if in == StdinInput {
		return io.NopCloser(g.Stdin), nil
	}
	return openuri.Open(in)
}

// emit writes the result of a successful render. It runs sequentially so that stdout output keeps input order.
func (g *Generator) emit(r *Result) error {
	switch {
	case g.diff:
		if r.Changed {
			if _, err := io.WriteString(g.Stdout, r.Diff); err != nil {
				return errors.Wrap(err, "Print diff")
			}
		}
		return nil
	case r.Output == "":
		if _, err := g.Stdout.Write(r.Text); err != nil {
			return errors.Wrap(err, "Print document")
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(r.Output), 0o755); err != nil {
		return errors.Wrap(err, "Create output directory")
	}
	if err := os.WriteFile(r.Output, r.Text, 0o644); err != nil {
		return errors.Wrap(err, "Write output")
	}
	g.log.WithField("output", r.Output).Info("Document written")
	return nil
}

// outputName returns the output file name for blueprint <in>: its base name with the configured extension
func (g *Generator) outputName(in string) string {
	base := lo.Ternary(in == StdinInput, "stdin", path.Base(filepath.ToSlash(in)))
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return strings.TrimSuffix(base, path.Ext(base)) + g.cfg.Output.Extension
}
