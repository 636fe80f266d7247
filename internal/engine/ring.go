package engine

import "github.com/vovakirdan/pixsnake/internal/geom"

// ring is a fixed-capacity double-ended queue of segments.
// Index 0 is the head, Len()-1 is the tail.
type ring struct {
	buf   []geom.Vector
	start int
	n     int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]geom.Vector, capacity)}
}

func (r *ring) Len() int {
	return r.n
}

// At returns the i-th segment counted from the head.
func (r *ring) At(i int) geom.Vector {
	return r.buf[(r.start+i)%len(r.buf)]
}

func (r *ring) Front() geom.Vector {
	return r.At(0)
}

func (r *ring) Back() geom.Vector {
	return r.At(r.n - 1)
}

func (r *ring) PushFront(v geom.Vector) {
	if r.n == len(r.buf) {
		panic("engine: segment ring overflow")
	}
	r.start = (r.start - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.start] = v
	r.n++
}

func (r *ring) PushBack(v geom.Vector) {
	if r.n == len(r.buf) {
		panic("engine: segment ring overflow")
	}
	r.buf[(r.start+r.n)%len(r.buf)] = v
	r.n++
}

func (r *ring) PopBack() geom.Vector {
	v := r.Back()
	r.n--
	return v
}

// Slice copies the segments head to tail.
func (r *ring) Slice() []geom.Vector {
	out := make([]geom.Vector, r.n)
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}
