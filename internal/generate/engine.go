// Package generate runs batched synthetic data generation against a model
// backend and streams the records to a tabular file.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/dataset"
	"github.com/abhisek/synthgen/internal/llm"
	"github.com/abhisek/synthgen/internal/parser"
	"github.com/abhisek/synthgen/internal/prompt"
	"github.com/abhisek/synthgen/internal/store"
)

// Connector sets up an authenticated backend for a model. It is called
// exactly once per run.
type Connector func(ctx context.Context, m config.Model) (llm.Provider, error)

// SinkFactory opens the sink for a run's output file.
type SinkFactory func(path string, withReasoning bool) dataset.Sink

// Progress is reported after every flushed batch.
type Progress struct {
	Batch   int // one-based number of the batch just flushed
	Total   int // number of batches in the run
	Records int // records written so far
	Sample  int // requested sample size
	Path    string
}

// Done reports whether this is the last batch of the run.
func (p Progress) Done() bool {
	return p.Batch == p.Total
}

// Result summarizes a run.
type Result struct {
	RunID   string
	Path    string // empty when no file was produced
	Records int
	Batches int
	Signals map[parser.Signal]int
}

// Deps are the engine's collaborators. Zero values select defaults.
type Deps struct {
	Sinks    SinkFactory
	Rand     *rand.Rand
	Now      func() time.Time
	Logger   *slog.Logger
	Progress func(Progress)
	Runs     store.RunRepo
}

// Engine runs generation jobs.
type Engine struct {
	connect  Connector
	sinks    SinkFactory
	rng      *rand.Rand
	now      func() time.Time
	logger   *slog.Logger
	parser   *parser.Parser
	progress func(Progress)
	runs     store.RunRepo
}

// New creates an Engine that obtains its backend from connect.
func New(connect Connector, deps Deps) *Engine {
	e := &Engine{
		connect:  connect,
		sinks:    deps.Sinks,
		rng:      deps.Rand,
		now:      deps.Now,
		logger:   deps.Logger,
		progress: deps.Progress,
		runs:     deps.Runs,
	}
	if e.sinks == nil {
		e.sinks = func(path string, withReasoning bool) dataset.Sink {
			return dataset.NewCSVSink(path, withReasoning)
		}
	}
	if e.rng == nil {
		e.rng = NewRand(0)
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	e.parser = parser.New(e.logger)
	return e
}

// NewRand returns a generator seeded from seed, or from the clock when
// seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Run executes the job described by cfg.
//
// An invalid config returns *config.InvalidError before any work. A backend
// that cannot be set up returns *InitError with no file system changes.
// A failed or cancelled sample returns *SampleError together with the
// partial Result; batches flushed earlier stay on disk. Failed samples are
// not retried.
func (e *Engine) Run(ctx context.Context, cfg config.GenerationConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	e.logger.Info("initializing model", "model", cfg.Model.ModelID)
	provider, err := e.connect(ctx, cfg.Model)
	if err != nil {
		return nil, &InitError{Model: cfg.Model.ModelID, Err: err}
	}

	out := cfg.Output
	if err := os.MkdirAll(out.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	batches := Plan(out.SampleSize, out.BatchSize)
	res := &Result{Batches: len(batches), Signals: make(map[parser.Signal]int)}

	var path string
	if len(batches) > 0 {
		path, err = dataset.ReserveRunFile(out.OutputDir, e.now())
		if err != nil {
			return nil, fmt.Errorf("create output file: %w", err)
		}
	}

	res.RunID = e.startRun(ctx, cfg, path)
	ctx = llm.WithPurpose(ctx, "generate")
	if res.RunID != "" {
		ctx = llm.WithRunID(ctx, res.RunID)
	}

	e.logger.Info("starting generation",
		"samples", out.SampleSize, "batches", len(batches), "path", path)

	err = e.runBatches(ctx, provider, cfg, batches, path, res)
	if path != "" && res.Path == "" {
		// The first batch never reached the file.
		if rmErr := os.Remove(path); rmErr != nil {
			e.logger.Warn("failed to remove empty output file", "path", path, "err", rmErr)
		}
	}
	e.finishRun(ctx, res, err)
	if err != nil {
		return res, err
	}

	e.logger.Info("generation complete", "records", res.Records, "path", res.Path)
	return res, nil
}

func (e *Engine) runBatches(ctx context.Context, provider llm.Provider, cfg config.GenerationConfig,
	batches []Batch, path string, res *Result) error {
	if len(batches) == 0 {
		return nil
	}

	sink := e.sinks(path, cfg.Output.SaveReasoning)
	categories := cfg.UseCase.CategoryNames()

	for _, b := range batches {
		if err := ctx.Err(); err != nil {
			return &SampleError{Batch: b.Number, Index: b.Start, Err: err}
		}

		records := make([]dataset.Record, 0, b.Size())
		for i := b.Start; i < b.End; i++ {
			rec, signal, err := e.sample(ctx, provider, cfg, categories)
			if err != nil {
				return &SampleError{Batch: b.Number, Index: i, Err: err}
			}
			res.Signals[signal]++
			records = append(records, rec)
		}

		mode := dataset.ModeAppend
		if b.Number == 0 {
			mode = dataset.ModeCreate
		}
		if err := sink.Write(records, mode); err != nil {
			return &SampleError{Batch: b.Number, Index: b.Start, Err: fmt.Errorf("write batch: %w", err)}
		}
		res.Path = sink.Path()
		res.Records += len(records)

		e.logger.Info("batch saved",
			"batch", b.Number+1, "total", len(batches), "records", res.Records, "path", res.Path)
		if e.progress != nil {
			e.progress(Progress{
				Batch:   b.Number + 1,
				Total:   len(batches),
				Records: res.Records,
				Sample:  cfg.Output.SampleSize,
				Path:    res.Path,
			})
		}
	}
	return nil
}

// sample draws the (label, category, type) triple and produces one record.
func (e *Engine) sample(ctx context.Context, provider llm.Provider, cfg config.GenerationConfig,
	categories []string) (dataset.Record, parser.Signal, error) {
	uc := cfg.UseCase

	label := uc.Labels[e.rng.IntN(len(uc.Labels))]
	category := categories[e.rng.IntN(len(categories))]
	types := uc.CategoriesTypes[category]
	typeName := types[e.rng.IntN(len(types))]

	req := llm.Request{
		Messages:  prompt.Messages(uc, prompt.Build(uc, label, category, typeName)),
		MaxTokens: cfg.Model.MaxNewTokens,
	}
	resp, err := provider.Generate(ctx, req)
	if err != nil {
		return dataset.Record{}, 0, err
	}

	parsed := e.parser.Parse(resp.Content)
	rec := dataset.NewRecord(parsed.Text, label, cfg.Model.ModelID, parsed.Reasoning, cfg.Output.SaveReasoning)
	return rec, parsed.Signal, nil
}

func (e *Engine) startRun(ctx context.Context, cfg config.GenerationConfig, path string) string {
	if e.runs == nil {
		return ""
	}
	id, err := e.runs.StartRun(ctx, store.RunStart{
		UseCase:    cfg.UseCase.UseCase,
		Model:      cfg.Model.ModelID,
		Labels:     cfg.UseCase.Labels,
		SampleSize: cfg.Output.SampleSize,
		BatchSize:  cfg.Output.BatchSize,
		OutputPath: path,
	})
	if err != nil {
		e.logger.Warn("failed to record run start", "err", err)
		return ""
	}
	return id
}

func (e *Engine) finishRun(ctx context.Context, res *Result, runErr error) {
	if e.runs == nil || res.RunID == "" {
		return
	}
	finish := store.RunFinish{Status: store.RunCompleted, Records: res.Records}
	if runErr != nil {
		finish.Status = store.RunFailed
		finish.ErrorMessage = runErr.Error()
	}
	// The run context may already be cancelled.
	if err := e.runs.FinishRun(context.WithoutCancel(ctx), res.RunID, finish); err != nil {
		e.logger.Warn("failed to record run finish", "run_id", res.RunID, "err", err)
	}
}
