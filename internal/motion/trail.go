package motion

import "gonum.org/v1/gonum/spatial/r2"

// TrailSpacing is the displacement a body must exceed since the last trail
// sample before a new one is taken.
const TrailSpacing = 5.0

// Trail is a fixed-capacity FIFO of past positions, oldest first.
type Trail struct {
	points []r2.Vec
	start  int
	size   int
}

func NewTrail(population int) Trail {
	if population < 0 {
		population = 0
	}
	return Trail{points: make([]r2.Vec, population)}
}

func (t *Trail) Len() int { return t.size }
func (t *Trail) Cap() int { return len(t.points) }

// Last returns the most recent sample.
func (t *Trail) Last() (r2.Vec, bool) {
	if t.size == 0 {
		return r2.Vec{}, false
	}
	return t.points[(t.start+t.size-1)%len(t.points)], true
}

// Sample records p when the trail is empty or p lies further than
// TrailSpacing from the last sample. It reports whether p was recorded.
func (t *Trail) Sample(p r2.Vec) bool {
	if len(t.points) == 0 {
		return false
	}
	if last, ok := t.Last(); ok && r2.Norm(r2.Sub(p, last)) <= TrailSpacing {
		return false
	}
	t.push(p)
	return true
}

func (t *Trail) push(p r2.Vec) {
	if t.size < len(t.points) {
		t.points[(t.start+t.size)%len(t.points)] = p
		t.size++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % len(t.points)
}

// Points returns a copy of the samples, oldest first.
func (t *Trail) Points() []r2.Vec {
	out := make([]r2.Vec, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}

func (t *Trail) Clone() Trail {
	c := Trail{points: make([]r2.Vec, len(t.points)), start: t.start, size: t.size}
	copy(c.points, t.points)
	return c
}
