package core

import (
	"testing"
	"time"
)

func TestClockThreshold(t *testing.T) {
	tests := []struct {
		name      string
		fps       int
		speed     int
		threshold int
	}{
		{"default cadence", 60, 2, 30},
		{"speed equals fps", 30, 30, 1},
		{"speed above fps", 10, 50, 1},
		{"zero speed", 60, 0, 60},
		{"zero fps", 0, 0, 1},
		{"uneven division", 60, 7, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClock(tc.fps, tc.speed)
			if c.Threshold() != tc.threshold {
				t.Errorf("Threshold() = %d, expected %d", c.Threshold(), tc.threshold)
			}
		})
	}
}

func TestClockFrame(t *testing.T) {
	c := NewClock(60, 20) // every third frame

	var fired []int
	for i := 1; i <= 9; i++ {
		if c.Frame() {
			fired = append(fired, i)
		}
	}

	expected := []int{3, 6, 9}
	if len(fired) != len(expected) {
		t.Fatalf("fired on frames %v, expected %v", fired, expected)
	}
	for i := range expected {
		if fired[i] != expected[i] {
			t.Errorf("fired on frames %v, expected %v", fired, expected)
			break
		}
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(10, 5)
	c.Frame()
	c.Reset()

	if c.Frame() {
		t.Error("first frame after reset should not fire with threshold 2")
	}
	if !c.Frame() {
		t.Error("second frame after reset should fire")
	}
}

func TestClockRetime(t *testing.T) {
	c := NewClock(60, 2)
	c.Frame()
	c.Retime(6)
	if c.Threshold() != 10 {
		t.Errorf("Threshold() after Retime(6) = %d, expected 10", c.Threshold())
	}
	for i := 1; i < 10; i++ {
		if c.Frame() {
			t.Fatalf("frame %d fired early after retime", i)
		}
	}
	if !c.Frame() {
		t.Error("frame 10 after retime should fire")
	}

	c.Retime(0)
	if c.Threshold() != 60 {
		t.Errorf("Threshold() after Retime(0) = %d, expected 60", c.Threshold())
	}
}

func TestClockInterval(t *testing.T) {
	c := NewClock(50, 1)
	if c.Interval() != 20*time.Millisecond {
		t.Errorf("Interval() = %v, expected 20ms", c.Interval())
	}
}

func TestRuntimeConfigNormalized(t *testing.T) {
	c := RuntimeConfig{FPS: -1, Speed: 0, Scale: 0, Seed: 7}.Normalized()
	def := DefaultConfig()

	if c.FPS != def.FPS || c.Speed != def.Speed || c.Scale != def.Scale {
		t.Errorf("Normalized() = %+v, expected defaults for invalid fields", c)
	}
	if c.Seed != 7 {
		t.Errorf("Normalized() changed seed to %d", c.Seed)
	}
	if c.Clock().Threshold() != def.FPS/def.Speed {
		t.Errorf("Clock().Threshold() = %d, expected %d", c.Clock().Threshold(), def.FPS/def.Speed)
	}
}
