package profiler

import (
	"runtime"
	"time"
)

// FrameTimes is a rolling window of frame durations, always compiled in so
// overlays can show FPS without the profile tag.
type FrameTimes struct {
	samples []time.Duration
	next    int
	n       int
	sum     time.Duration
}

func NewFrameTimes(window int) *FrameTimes {
	if window <= 0 {
		window = 60
	}
	return &FrameTimes{samples: make([]time.Duration, window)}
}

func (f *FrameTimes) Add(d time.Duration) {
	f.sum -= f.samples[f.next]
	f.samples[f.next] = d
	f.sum += d
	f.next = (f.next + 1) % len(f.samples)
	if f.n < len(f.samples) {
		f.n++
	}
}

func (f *FrameTimes) Average() time.Duration {
	if f.n == 0 {
		return 0
	}
	return f.sum / time.Duration(f.n)
}

func (f *FrameTimes) FPS() float64 {
	avg := f.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}
