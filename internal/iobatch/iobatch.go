// Package iobatch migrates many server.xml documents concurrently and
// collects a report about every document.
package iobatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/dsconf/internal/iofs"
	"github.com/gnames/dsconf/pkg/config"
	"github.com/gnames/dsconf/pkg/migrate"
	"github.com/gnames/dsconf/pkg/serverxml"
	"github.com/gnames/dsconf/pkg/version"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Batch migrates documents to the target version of a configuration.
type Batch struct {
	to       version.Version
	from     version.Version
	detect   bool
	indent   int
	outDir   string
	jobs     int
	progress bool
}

// Option changes settings of a Batch.
type Option func(*Batch)

// OptProgress shows a progress bar while documents are migrated.
func OptProgress(b bool) Option {
	return func(bt *Batch) {
		bt.progress = b
	}
}

// New creates a Batch from configuration. An empty source version means
// the version of every document is detected.
func New(cfg *config.Config, opts ...Option) (*Batch, error) {
	to, err := version.Parse(cfg.Migrate.TargetVersion)
	if err != nil {
		return nil, err
	}
	if !serverxml.CanWrite(to) {
		return nil, serverxml.UnsupportedDirectionError(to)
	}

	res := &Batch{
		to:     to,
		from:   version.Unknown,
		detect: true,
		indent: cfg.Output.Indent,
		outDir: cfg.OutputDir,
		jobs:   cfg.JobsNumber,
	}
	if cfg.Migrate.SourceVersion != "" {
		if res.from, err = version.Parse(cfg.Migrate.SourceVersion); err != nil {
			return nil, err
		}
		res.detect = false
	}
	if res.jobs < 1 {
		res.jobs = 1
	}
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

type job struct {
	idx  int
	path string
}

// Run migrates documents found at paths. Failures of single documents
// are recorded in the report and do not stop the batch. The error is
// returned only when the context is canceled.
//
// Pipeline:
//
//	Stage 1: paths are sent to chIn
//	Stage 2: workers migrate documents → chOut
//	Stage 3: collector places results in input order
func (b *Batch) Run(ctx context.Context, paths []string) (*Report, error) {
	start := time.Now()
	chIn := make(chan job)
	chOut := make(chan Result)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for i, p := range paths {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chIn <- job{idx: i, path: p}:
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for range min(b.jobs, max(len(paths), 1)) {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return b.worker(gCtx, chIn, chOut)
		})
	}

	go func() {
		wg.Wait()
		close(chOut)
	}()

	var bar *pb.ProgressBar
	if b.progress {
		bar = pb.Full.Start(len(paths))
		bar.Set("prefix", "Migrating: ")
		bar.Set(pb.CleanOnFinish, true)
	}

	results := make([]Result, len(paths))
	g.Go(func() error {
		for r := range chOut {
			results[r.idx] = r
			if bar != nil {
				bar.Increment()
			}
		}
		return nil
	})

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, BatchError(len(paths), err)
		}
		return nil, err
	}

	res := newReport(b.to, results, time.Since(start))
	slog.Info("Batch migration finished",
		"documents", humanize.Comma(int64(res.Total)),
		"failed", humanize.Comma(int64(res.Failed)),
		"duration", res.Duration,
	)
	return res, nil
}

func (b *Batch) worker(ctx context.Context, chIn <-chan job, chOut chan<- Result) error {
	for j := range chIn {
		r := b.migrateFile(j)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chOut <- r:
		}
	}
	return nil
}

// migrateFile converts one document. Errors are kept in the result.
func (b *Batch) migrateFile(j job) Result {
	res := Result{
		idx:  j.idx,
		ID:   gnuuid.New(j.path),
		Path: j.path,
		To:   b.to.String(),
	}

	out, from, err := b.convert(j.path)
	if from.IsKnown() {
		res.From = from.String()
	}
	if err != nil {
		slog.Warn("Cannot migrate document", "path", j.path, "error", err)
		res.Error = err.Error()
		return res
	}

	res.Output = iofs.OutputPath(j.path, b.outDir, b.to)
	if err = iofs.WriteDocument(res.Output, out); err != nil {
		res.Output = ""
		res.Error = err.Error()
		return res
	}
	res.Bytes = len(out)
	res.Size = humanize.Bytes(uint64(len(out)))
	return res
}

func (b *Batch) convert(path string) (string, version.Version, error) {
	data, err := iofs.ReadDocument(path)
	if err != nil {
		return "", version.Unknown, err
	}

	from := b.from
	if b.detect {
		if from, err = serverxml.Detect(data); err != nil {
			return "", version.Unknown, err
		}
	}

	sc, err := serverxml.Parse(from, data)
	if err != nil {
		return "", from, err
	}

	sc, err = migrate.Migrate(sc, b.to)
	if err != nil {
		return "", from, err
	}

	w, err := serverxml.New(b.to, serverxml.OptIndent(b.indent))
	if err != nil {
		return "", from, err
	}
	res, err := w.ToXML(sc)
	return res, from, err
}

// WriteReport saves the report as YAML.
func WriteReport(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return iofs.WriteFileError(path, err)
	}
	return iofs.WriteDocument(path, string(data))
}

func newReport(to version.Version, results []Result, dur time.Duration) *Report {
	res := &Report{
		Date:     time.Now().Format(time.RFC3339),
		Target:   to.String(),
		Duration: gnfmt.TimeString(dur.Seconds()),
		Total:    len(results),
		Results:  results,
	}
	for _, r := range results {
		if r.Error != "" {
			res.Failed++
		}
	}
	return res
}
