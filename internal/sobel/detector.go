package sobel

import (
	"fmt"
	"time"
)

// Logger receives debug output from a Detector. *bslogger.Logger satisfies it.
type Logger interface {
	Debug(message string)
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger sends per-pass timing to l.
func WithLogger(l Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.logger = l
		}
	}
}

// Detector runs the two Sobel passes and the combination step over a fixed
// pool of workers. A Detector may be reused for many images but must not run
// two detections at once.
type Detector struct {
	workers int
	pool    *Pool
	logger  Logger
}

// PassStats describes one completed convolution pass.
type PassStats struct {
	Ranges   []RowRange    `json:"-"`
	Jobs     int           `json:"jobs"`
	Duration time.Duration `json:"duration_ns"`
}

// Stats describes one completed detection.
type Stats struct {
	Workers     int           `json:"workers"`
	PassX       PassStats     `json:"pass_x"`
	PassY       PassStats     `json:"pass_y"`
	CombineTime time.Duration `json:"combine_ns"`
	Total       time.Duration `json:"total_ns"`
}

// Result holds the buffers of one detection. Gx and Gy are the clamped
// directional responses, Magnitude the combined edge map.
type Result struct {
	Gx        *Image
	Gy        *Image
	Magnitude *Image
	Stats     Stats
}

// NewDetector starts a pool of workers goroutines. Call Close when done.
func NewDetector(workers int, opts ...Option) (*Detector, error) {
	pool, err := NewPool(workers)
	if err != nil {
		return nil, err
	}

	d := &Detector{
		workers: workers,
		pool:    pool,
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Workers returns the number of jobs each pass is split into.
func (d *Detector) Workers() int {
	return d.workers
}

// Close stops the worker pool.
func (d *Detector) Close() {
	d.pool.Close()
}

// Pass applies k to every interior pixel of src and writes the result into
// dst. It returns once every job of the pass has finished.
func (d *Detector) Pass(src, dst *Image, k Kernel) (PassStats, error) {
	if err := src.Validate(); err != nil {
		return PassStats{}, fmt.Errorf("invalid source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return PassStats{}, fmt.Errorf("invalid destination: %w", err)
	}
	if !src.SameShape(dst) {
		return PassStats{}, fmt.Errorf("%w: source %dx%dx%d, destination %dx%dx%d", ErrShapeMismatch,
			src.Width, src.Height, src.Channels, dst.Width, dst.Height, dst.Channels)
	}

	ranges, err := Partition(src.Height, d.workers)
	if err != nil {
		return PassStats{}, err
	}

	jobs := make([]Job, len(ranges))
	for i, r := range ranges {
		jobs[i] = NewJob(src, dst, k, r)
	}

	start := time.Now()
	d.pool.Run(jobs)

	return PassStats{
		Ranges:   ranges,
		Jobs:     len(jobs),
		Duration: time.Since(start),
	}, nil
}

// Detect computes the gradient-magnitude edge map of src.
//
// All three output buffers are allocated before the first pass. Pass Y
// starts only after every job of pass X has returned, and Combine runs only
// after pass Y.
func (d *Detector) Detect(src *Image) (*Result, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("invalid source: %w", err)
	}

	begin := time.Now()

	gx, err := NewImageLike(src)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate horizontal gradient: %w", err)
	}
	gy, err := NewImageLike(src)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate vertical gradient: %w", err)
	}
	out, err := NewImageLike(src)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate output: %w", err)
	}

	res := &Result{Gx: gx, Gy: gy, Magnitude: out}
	res.Stats.Workers = d.workers

	if res.Stats.PassX, err = d.Pass(src, gx, SobelX()); err != nil {
		return nil, fmt.Errorf("horizontal pass: %w", err)
	}
	d.logger.Debug(fmt.Sprintf("Horizontal pass: %d jobs in %s", res.Stats.PassX.Jobs, res.Stats.PassX.Duration))

	if res.Stats.PassY, err = d.Pass(src, gy, SobelY()); err != nil {
		return nil, fmt.Errorf("vertical pass: %w", err)
	}
	d.logger.Debug(fmt.Sprintf("Vertical pass: %d jobs in %s", res.Stats.PassY.Jobs, res.Stats.PassY.Duration))

	combineStart := time.Now()
	if err := Combine(gx, gy, out); err != nil {
		return nil, err
	}
	res.Stats.CombineTime = time.Since(combineStart)
	res.Stats.Total = time.Since(begin)
	d.logger.Debug(fmt.Sprintf("Combined %d bytes in %s", len(out.Pix), res.Stats.CombineTime))

	return res, nil
}

// Sobel runs a single detection with a temporary pool and returns the
// magnitude image.
func Sobel(src *Image, workers int) (*Image, error) {
	d, err := NewDetector(workers)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	res, err := d.Detect(src)
	if err != nil {
		return nil, err
	}
	return res.Magnitude, nil
}
