package sim

import (
	"sync"

	"github.com/san-kum/orbitsim/internal/motion"
)

// deltaPool recycles the per-body staging buffers of the contact phase.
type deltaPool struct {
	pool sync.Pool
}

func newDeltaPool() *deltaPool {
	return &deltaPool{
		pool: sync.Pool{
			New: func() interface{} {
				s := make([]motion.Acceleration, 0)
				return &s
			},
		},
	}
}

// get returns a zeroed buffer of length n.
func (p *deltaPool) get(n int) []motion.Acceleration {
	s := *p.pool.Get().(*[]motion.Acceleration)
	if cap(s) < n {
		s = make([]motion.Acceleration, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = motion.Acceleration{}
	}
	return s
}

func (p *deltaPool) put(s []motion.Acceleration) {
	s = s[:0]
	p.pool.Put(&s)
}
