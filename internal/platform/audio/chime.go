// Package audio plays the pickup chime through the system speaker.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeFreq     = 880.0
	chimeDuration = 90 * time.Millisecond
	chimeVolume   = 0.25
)

// Chime plays a short sine tone. A disabled chime, or one whose speaker
// failed to initialise, ignores Play.
type Chime struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	logger  *log.Logger
}

// NewChime creates a chime. When enabled it initialises the speaker;
// failure is logged as a warning and leaves the chime silent.
func NewChime(enabled bool, logger *log.Logger) *Chime {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Chime{mixer: &beep.Mixer{}, logger: logger}
	if !enabled {
		return c
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		logger.Warn("sound disabled", "err", err)
		return c
	}
	speaker.Play(c.mixer)
	c.enabled = true
	return c
}

// Enabled reports whether Play produces sound.
func (c *Chime) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Play queues one chime. It does not block.
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	speaker.Lock()
	c.mixer.Add(newTone(chimeFreq, chimeDuration, sampleRate))
	speaker.Unlock()
}

// Close silences the chime. The speaker itself stays open for the process.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.enabled = false
}

// tone is a sine wave with a linear fade-out.
type tone struct {
	freq  float64
	phase float64
	pos   int
	total int
	rate  beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{freq: freq, total: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		fade := 1 - float64(t.pos)/float64(t.total)
		v := chimeVolume * fade * math.Sin(2*math.Pi*t.phase)

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
