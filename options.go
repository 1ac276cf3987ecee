package edgemap

import (
	"log/slog"

	"github.com/gogpu/edgemap/internal/image"
)

// FailurePolicy decides what a batch does when one image fails.
type FailurePolicy uint8

const (
	// FailFast stops the batch at the first failing image.
	FailFast FailurePolicy = iota

	// SkipFailed logs the failure, records it in the Report and continues
	// with the next image.
	SkipFailed
)

// String returns the policy name.
func (p FailurePolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case SkipFailed:
		return "skip-failed"
	default:
		return "unknown"
	}
}

// Option configures a Pipeline during creation.
//
// Example:
//
//	p := edgemap.NewPipeline(
//	    edgemap.WithFailurePolicy(edgemap.SkipFailed),
//	    edgemap.WithEncodeOptions(edgemap.EncodeOptions{BinaryPGM: true}),
//	)
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	policy FailurePolicy
	encode image.EncodeOptions
	logger *slog.Logger // nil means use Logger()
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		policy: FailFast,
	}
}

// WithFailurePolicy sets how Run reacts to a failing image.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(o *pipelineOptions) {
		o.policy = p
	}
}

// WithEncodeOptions sets how blurred and gradient images are written.
func WithEncodeOptions(e EncodeOptions) Option {
	return func(o *pipelineOptions) {
		o.encode = e
	}
}

// WithLogger gives the pipeline its own logger instead of the package-wide
// one. A nil logger keeps the package-wide default.
func WithLogger(l *slog.Logger) Option {
	return func(o *pipelineOptions) {
		o.logger = l
	}
}
