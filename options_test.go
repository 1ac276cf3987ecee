package edgemap

import "testing"

func TestDefaultOptions(t *testing.T) {
	p := NewPipeline()
	if p.Policy() != FailFast {
		t.Errorf("Policy() = %v, want %v", p.Policy(), FailFast)
	}
	if p.opts.encode.BinaryPGM {
		t.Error("default encoding should be plain PGM")
	}
	if p.opts.logger != nil {
		t.Error("default pipeline logger should be nil (package logger)")
	}
}

func TestOptionsApply(t *testing.T) {
	p := NewPipeline(
		WithFailurePolicy(SkipFailed),
		WithEncodeOptions(EncodeOptions{BinaryPGM: true, JPEGQuality: 80}),
	)

	if p.Policy() != SkipFailed {
		t.Errorf("Policy() = %v, want %v", p.Policy(), SkipFailed)
	}
	if !p.opts.encode.BinaryPGM || p.opts.encode.JPEGQuality != 80 {
		t.Errorf("encode options = %+v, want BinaryPGM and quality 80", p.opts.encode)
	}
}

func TestFailurePolicyString(t *testing.T) {
	tests := []struct {
		p    FailurePolicy
		want string
	}{
		{FailFast, "fail-fast"},
		{SkipFailed, "skip-failed"},
		{FailurePolicy(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("FailurePolicy(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
