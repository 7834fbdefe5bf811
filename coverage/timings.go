package coverage

import (
	"github.com/ello/elloapi/common"
	"math"
	"net/http"
	"slices"
	"time"
)

type Timing struct {
	Route    common.Route
	Request  *http.Request
	Status   int
	Duration time.Duration
}

type Timings []Timing

type TimingStats struct {
	Mean time.Duration
	// StdDev is the population standard deviation
	StdDev  time.Duration
	Minimum time.Duration
	Maximum time.Duration
	P50     time.Duration
	P90     time.Duration
	P99     time.Duration
	Count   int
}

// Stats summarises the timings - returns false when there are no timings
func (ct Timings) Stats() (TimingStats, bool) {
	if len(ct) == 0 {
		return TimingStats{}, false
	}
	durations := make([]time.Duration, len(ct))
	total := 0.0
	for i, t := range ct {
		durations[i] = t.Duration
		total += float64(t.Duration)
	}
	slices.Sort(durations)
	mean := total / float64(len(durations))
	sq := 0.0
	for _, d := range durations {
		diff := float64(d) - mean
		sq += diff * diff
	}
	return TimingStats{
		Mean:    time.Duration(math.Round(mean)),
		StdDev:  time.Duration(math.Round(math.Sqrt(sq / float64(len(durations))))),
		Minimum: durations[0],
		Maximum: durations[len(durations)-1],
		P50:     percentile(durations, 0.5),
		P90:     percentile(durations, 0.9),
		P99:     percentile(durations, 0.99),
		Count:   len(durations),
	}, true
}

// percentile interpolates linearly between the closest ranks of sorted durations
func percentile(sorted []time.Duration, p float64) time.Duration {
	pos := p * float64(len(sorted)-1)
	i := int(math.Floor(pos))
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	a, b := float64(sorted[i]), float64(sorted[i+1])
	return time.Duration(math.Round(a + (pos-float64(i))*(b-a)))
}
