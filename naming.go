package edgemap

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
)

// DefaultCount is the number of numbered inputs a batch covers when the
// caller does not say otherwise.
const DefaultCount = 31

// ErrNamingPattern is returned when a file-name pattern does not contain
// exactly one integer verb (%d, optionally with a width such as %03d).
var ErrNamingPattern = errors.New("edgemap: naming pattern must contain exactly one %d verb")

var namingVerb = regexp.MustCompile(`^[^%]*%0?[0-9]*d[^%]*$`)

// Naming holds the fmt patterns used to derive file names from an image
// number. Each pattern takes the number through a single integer verb.
type Naming struct {
	Input   string
	Blurred string
	Edges   string
}

// DefaultNaming reads a<i>.pgm and writes blurred_a<i>.pgm and
// edge_detection_a<i>.pgm.
var DefaultNaming = Naming{
	Input:   "a%d.pgm",
	Blurred: "blurred_a%d.pgm",
	Edges:   "edge_detection_a%d.pgm",
}

// Validate checks every pattern.
func (n Naming) Validate() error {
	for _, p := range []string{n.Input, n.Blurred, n.Edges} {
		if !namingVerb.MatchString(p) {
			return fmt.Errorf("%w: %q", ErrNamingPattern, p)
		}
	}
	return nil
}

// Jobs enumerates count jobs numbered first, first+1, ... with inputs in
// inDir and outputs in blurDir and edgeDir.
func (n Naming) Jobs(inDir, blurDir, edgeDir string, first, count int) ([]Job, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("edgemap: negative job count %d", count)
	}

	jobs := make([]Job, 0, count)
	for i := first; i < first+count; i++ {
		jobs = append(jobs, Job{
			Index:   i,
			Input:   filepath.Join(inDir, fmt.Sprintf(n.Input, i)),
			Blurred: filepath.Join(blurDir, fmt.Sprintf(n.Blurred, i)),
			Edges:   filepath.Join(edgeDir, fmt.Sprintf(n.Edges, i)),
		})
	}
	return jobs, nil
}

// NumberedJobs is DefaultNaming.Jobs.
func NumberedJobs(inDir, blurDir, edgeDir string, first, count int) ([]Job, error) {
	return DefaultNaming.Jobs(inDir, blurDir, edgeDir, first, count)
}
