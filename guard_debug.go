//go:build celldebug

package nearcell

import "sync/atomic"

// guard tracks live checked accesses in celldebug builds.
// State word: 0 free, n>0 that many Views, stateMut one Update,
// stateConsumed after Unwrap.
type guard struct {
	state atomic.Int32
}

const (
	stateFree     int32 = 0
	stateMut      int32 = -1
	stateConsumed int32 = -1 << 30
)

func (g *guard) acquireShared() {
	for {
		s := g.state.Load()
		if s == stateConsumed {
			panic("nearcell: View of consumed Cell")
		}
		if s < 0 {
			panic("nearcell: View while an Update is active")
		}
		if g.state.CompareAndSwap(s, s+1) {
			return
		}
	}
}

func (g *guard) releaseShared() {
	g.state.Add(-1)
}

func (g *guard) acquireMut() {
	if g.state.CompareAndSwap(stateFree, stateMut) {
		return
	}
	s := g.state.Load()
	switch {
	case s == stateConsumed:
		panic("nearcell: Update of consumed Cell")
	case s < 0:
		panic("nearcell: Update while another Update is active")
	default:
		panic("nearcell: Update while a View is active")
	}
}

func (g *guard) releaseMut() {
	g.state.Store(stateFree)
}

func (g *guard) consume() {
	if g.state.CompareAndSwap(stateFree, stateConsumed) {
		return
	}
	if g.state.Load() == stateConsumed {
		panic("nearcell: Unwrap of consumed Cell")
	}
	panic("nearcell: Unwrap while an access is active")
}
