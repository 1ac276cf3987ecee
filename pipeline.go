package edgemap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/edgemap/internal/filter"
	"github.com/gogpu/edgemap/internal/image"
)

// Job names one input file and the two files derived from it.
type Job struct {
	Index   int
	Input   string
	Blurred string
	Edges   string
}

// Stage identifies the step of a job that failed.
type Stage string

// Job stages that can fail. The filter stages themselves never fail.
const (
	StageDecode        Stage = "decode"
	StageEncodeBlurred Stage = "encode blurred"
	StageEncodeEdges   Stage = "encode edges"
)

// JobError reports a failed job. It unwraps to the codec error, so
// errors.Is(err, ErrFormat) and friends work through it.
type JobError struct {
	Job   Job
	Stage Stage
	Err   error
}

func (e *JobError) Error() string {
	path := e.Job.Input
	switch e.Stage {
	case StageEncodeBlurred:
		path = e.Job.Blurred
	case StageEncodeEdges:
		path = e.Job.Edges
	}
	return fmt.Sprintf("edgemap: image %d: %s %s: %v", e.Job.Index, e.Stage, path, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// ImageResult describes one successfully processed image.
type ImageResult struct {
	Job     Job
	Width   int
	Height  int
	Elapsed time.Duration
}

// Report summarizes a batch run.
type Report struct {
	Processed []ImageResult
	Failed    []*JobError
	Elapsed   time.Duration
}

// Pixels returns the total number of pixels filtered across processed
// images.
func (r *Report) Pixels() int {
	n := 0
	for _, res := range r.Processed {
		n += res.Width * res.Height
	}
	return n
}

// Pipeline runs decode, blur, edge detection and both encodes for each
// job, one image at a time. Output buffers are recycled between images of
// equal size; no pixel data carries over from one image to the next.
type Pipeline struct {
	opts pipelineOptions
	pool *image.Pool
}

// NewPipeline creates a pipeline with the given options.
func NewPipeline(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{opts: o, pool: image.NewPool(2)}
}

// Policy returns the pipeline's failure policy.
func (p *Pipeline) Policy() FailurePolicy {
	return p.opts.policy
}

func (p *Pipeline) logger() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return Logger()
}

// RunJob processes a single image. Any failure abandons the image; no
// partial result is reported as success, though an output written before
// a later encode failed is left on disk.
func (p *Pipeline) RunJob(ctx context.Context, job Job) (ImageResult, error) {
	if err := ctx.Err(); err != nil {
		return ImageResult{}, err
	}

	log := p.logger().With("index", job.Index)
	start := time.Now()

	src, err := image.Load(job.Input)
	if err != nil {
		return ImageResult{}, &JobError{Job: job, Stage: StageDecode, Err: err}
	}
	log.Info("image read", "path", job.Input, "width", src.Width(), "height", src.Height())

	blurred := p.pool.GetLike(src)
	gradient := p.pool.GetLike(src)
	defer p.pool.Put(blurred)
	defer p.pool.Put(gradient)

	t := time.Now()
	filter.ConvolveInto(blurred, src, filter.Gaussian5x5)
	log.Debug("gaussian blur done", "elapsed", time.Since(t))

	t = time.Now()
	filter.SobelInto(gradient, blurred)
	log.Debug("sobel done", "elapsed", time.Since(t))

	if err := image.Save(job.Blurred, blurred, p.opts.encode); err != nil {
		return ImageResult{}, &JobError{Job: job, Stage: StageEncodeBlurred, Err: err}
	}
	log.Info("output written", "path", job.Blurred)

	if err := image.Save(job.Edges, gradient, p.opts.encode); err != nil {
		return ImageResult{}, &JobError{Job: job, Stage: StageEncodeEdges, Err: err}
	}
	log.Info("output written", "path", job.Edges)

	return ImageResult{
		Job:     job,
		Width:   src.Width(),
		Height:  src.Height(),
		Elapsed: time.Since(start),
	}, nil
}

// Run processes jobs in order. Under FailFast the first error ends the
// batch and is returned as is. Under SkipFailed every failure is recorded
// and the joined failures are returned once all jobs have been tried.
// A cancelled context stops the batch before the next image starts.
//
// The returned Report is never nil.
func (p *Pipeline) Run(ctx context.Context, jobs []Job) (*Report, error) {
	report := &Report{}
	start := time.Now()
	defer func() { report.Elapsed = time.Since(start) }()

	var errs []error
	for _, job := range jobs {
		res, err := p.RunJob(ctx, job)
		if err == nil {
			report.Processed = append(report.Processed, res)
			continue
		}

		var jerr *JobError
		if !errors.As(err, &jerr) {
			// Context cancellation: not a job failure.
			return report, errors.Join(append(errs, err)...)
		}
		report.Failed = append(report.Failed, jerr)

		if p.opts.policy == FailFast {
			return report, err
		}
		p.logger().Warn("image skipped", "index", job.Index, "stage", string(jerr.Stage), "err", jerr.Err)
		errs = append(errs, err)
	}

	return report, errors.Join(errs...)
}
