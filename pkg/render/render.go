// Package render partitions an image into disjoint row bands and renders
// them concurrently, one goroutine per band, each with its own
// deterministically seeded sampler so identical input with the same worker
// count always produces an identical image.
package render

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anthropics/pathtrace/pkg/camera"
	"github.com/anthropics/pathtrace/pkg/core"
)

// State is a render job's position in its lifecycle.
type State int32

const (
	Idle State = iota
	Dispatched
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dispatched:
		return "dispatched"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Job tracks the lifecycle of one Capture call so a caller (the CLI, a
// future progress bar) can poll render state without touching the pixel
// buffer it writes into.
type Job struct {
	state atomic.Int32
}

// NewJob returns a Job in the Idle state.
func NewJob() *Job { return &Job{} }

// State returns the job's current lifecycle state.
func (j *Job) State() State { return State(j.state.Load()) }

func (j *Job) transition(s State) { j.state.Store(int32(s)) }

// Options configures a Capture call.
type Options struct {
	// SamplesPerPixel is the number of jittered samples averaged per pixel.
	SamplesPerPixel int
	// Workers is the number of row bands / goroutines to use. <= 0 means
	// runtime.NumCPU().
	Workers int
	// Seed is the master seed each worker's sampler derives from.
	Seed int64
}

// Stats summarizes a completed Capture call.
type Stats struct {
	Width, Height   int
	SamplesPerPixel int
	Workers         int
	Elapsed         time.Duration
}

// RaysPerSecond reports total primary-ray throughput, excluding the
// secondary bounce rays each primary sample may spawn.
func (s Stats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	total := float64(s.Width) * float64(s.Height) * float64(s.SamplesPerPixel)
	return total / s.Elapsed.Seconds()
}

// Capture renders cam's full image against source, splitting the image
// into one contiguous row band per worker. Each band is written by
// exactly one goroutine into its own disjoint slice of pixels, so no
// synchronization is needed on the pixel buffer itself.
func Capture(job *Job, cam *camera.Camera, source camera.RadianceSource, opts Options) ([]byte, Stats, error) {
	if opts.SamplesPerPixel <= 0 {
		return nil, Stats{}, fmt.Errorf("render: SamplesPerPixel must be positive, got %d", opts.SamplesPerPixel)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	width, height := cam.Width(), cam.Height()
	pixels := make([]byte, width*height*3)

	job.transition(Dispatched)
	start := time.Now()
	job.transition(Running)

	rowsPerBand := height / workers
	if rowsPerBand == 0 {
		rowsPerBand = 1
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		startRow := w * rowsPerBand
		endRow := startRow + rowsPerBand
		if w == workers-1 || endRow > height {
			endRow = height
		}
		if startRow >= endRow {
			continue
		}

		wg.Add(1)
		go func(workerIndex, startRow, endRow int) {
			defer wg.Done()
			sampler := core.NewRandomSampler(opts.Seed, workerIndex)
			for y := startRow; y < endRow; y++ {
				for x := 0; x < width; x++ {
					color := cam.CapturePixel(x, y, source, sampler, opts.SamplesPerPixel)
					rgb := camera.QuantizeColor(color)
					offset := (y*width + x) * 3
					pixels[offset] = rgb[0]
					pixels[offset+1] = rgb[1]
					pixels[offset+2] = rgb[2]
				}
			}
		}(w, startRow, endRow)
	}
	wg.Wait()

	job.transition(Completed)

	stats := Stats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: opts.SamplesPerPixel,
		Workers:         workers,
		Elapsed:         time.Since(start),
	}
	return pixels, stats, nil
}
