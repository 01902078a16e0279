package vtk

import (
	"bytes"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BlockFields is called once per block to emit that block's cell data
// through the open writer. The exporter never inspects field semantics;
// the callback decides what gets written and in what order.
type BlockFields func(rw *RectilinearWriter, index int, b Block) error

// Exporter writes the block files and manifest of one output step. Block
// files are written concurrently: each block touches only its own buffer
// and its own destination path, so no locking is involved. The manifest is
// written only after every block file has landed, so it never references a
// missing or partial file.
type Exporter struct {
	// Dir is the destination directory, Prefix the shared file name stem.
	Dir    string
	Prefix string
	// Log receives per file debug events. Nil means no logging.
	Log *zap.Logger
	// Workers bounds the concurrent block writes; <= 0 means unbounded.
	Workers int
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger attaches a structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Exporter) { e.Log = log }
}

// WithWorkers bounds the number of concurrent block writes.
func WithWorkers(n int) Option {
	return func(e *Exporter) { e.Workers = n }
}

func NewExporter(dir, prefix string, opts ...Option) *Exporter {
	e := &Exporter{Dir: dir, Prefix: prefix}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WriteStep writes one .vtr file per block plus the .vtm manifest tying
// them together. Any block failure aborts the step before the manifest is
// written; already-landed sibling files are left in place but unreferenced.
func (e *Exporter) WriteStep(blocks []Block, time float64, step int, fields BlockFields) error {
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}

	g := new(errgroup.Group)
	if e.Workers > 0 {
		g.SetLimit(e.Workers)
	}
	for i, b := range blocks {
		i, b := i, b
		g.Go(func() error {
			if err := e.writeBlock(i, b, time, step, fields); err != nil {
				return fmt.Errorf("block %d: %w", b.ID, err)
			}
			log.Debug("wrote block file",
				zap.Int("step", step),
				zap.Int("index", i),
				zap.Int("block_id", b.ID))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := WriteManifest(&buf, e.Prefix, len(blocks)); err != nil {
		return err
	}
	path := filepath.Join(e.Dir, e.Prefix+".vtm")
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return err
	}
	log.Debug("wrote manifest",
		zap.Int("step", step),
		zap.String("path", path),
		zap.Int("blocks", len(blocks)))
	return nil
}

// writeBlock renders one block file in memory and lands it atomically.
func (e *Exporter) writeBlock(index int, b Block, time float64, step int, fields BlockFields) error {
	var buf bytes.Buffer
	rw := NewRectilinearWriter(&buf)
	if err := rw.Start(b, time, step); err != nil {
		return err
	}
	if fields != nil {
		if err := fields(rw, index, b); err != nil {
			return err
		}
	}
	if err := rw.End(); err != nil {
		return err
	}
	name := fmt.Sprintf("%s%d.vtr", e.Prefix, index)
	return writeFileAtomic(filepath.Join(e.Dir, name), buf.Bytes())
}
