package rays

import (
	"sync/atomic"
	"time"

	"github.com/cpmech/gosl/chk"

	"github.com/shuleyu/RayTracing/config"
	"github.com/shuleyu/RayTracing/model"
	"github.com/shuleyu/RayTracing/sink"
)

// Engine owns the pre-allocated RayHeads arena, the output Sink, and the
// atomic bookkeeping (Cnt, Running, Estimation) that the Scheduler (spec.md
// §4.4) and the Leg Propagator (§4.3) both touch.
type Engine struct {
	Model *model.Model
	Cfg   *config.Config
	Sink  *sink.Sink

	Heads []Ray

	cnt        int64
	running    int64
	doing      int64
	done       int64
	estimation int64

	doneCh []chan struct{}
}

// NewEngine allocates the RayHeads arena and output buffers at
// cfg.PotentialSize, per spec.md §3's "Storage layout".
func NewEngine(m *model.Model, cfg *config.Config) *Engine {
	if cfg.PotentialSize <= 0 {
		chk.Panic("potentialSize must be positive")
	}
	e := &Engine{
		Model:  m,
		Cfg:    cfg,
		Sink:   sink.New(cfg.PotentialSize),
		Heads:  make([]Ray, cfg.PotentialSize),
		doneCh: make([]chan struct{}, cfg.PotentialSize),
	}
	for i := range e.doneCh {
		e.doneCh[i] = make(chan struct{})
	}
	return e
}

// AddSeed appends a seed ray (Prev == -1) at a freshly reserved slot.
func (e *Engine) AddSeed(r Ray) int {
	r.Prev = -1
	return e.addSlot(r)
}

// addSlot reserves the next slot via Cnt.fetch_add, panicking on capacity
// overflow (spec.md §7: "capacity-overflow is fatal").
func (e *Engine) addSlot(r Ray) int {
	idx := atomic.AddInt64(&e.cnt, 1) - 1
	if int(idx) >= len(e.Heads) {
		chk.Panic("potentialSize (%d) exceeded: the seeded tree grows beyond the configured capacity", len(e.Heads))
	}
	e.Heads[idx] = r
	return int(idx)
}

// AddEstimation sets the initial Estimation counter (an upper bound on the
// number of legs still possible), decremented as channels are forfeited.
func (e *Engine) AddEstimation(n int64) {
	atomic.AddInt64(&e.estimation, n)
}

// Observer is the scheduler's liveness counter: Doing - nThread.
func (e *Engine) Observer() int64 {
	return atomic.LoadInt64(&e.doing) - int64(e.Cfg.NThread)
}

// Estimation reports the current forfeited-descendants-adjusted estimate
// of remaining legs.
func (e *Engine) Estimation() int64 {
	return atomic.LoadInt64(&e.estimation)
}

// Run drives the bounded-parallelism worker pool (spec.md §4.4): while
// slots remain undispatched, keep at most nThread workers in flight, each
// owning exactly one RayHeads slot; sleep briefly when the pool is full;
// periodically join the oldest dispatched-but-unfinished workers.
func (e *Engine) Run() {
	nThread := int64(e.Cfg.NThread)
	dispatches := 0
	for {
		running := atomic.LoadInt64(&e.running)
		doing := atomic.LoadInt64(&e.doing)
		cnt := atomic.LoadInt64(&e.cnt)

		if running == 0 && doing >= cnt {
			break
		}

		if running < nThread && doing < cnt {
			idx := doing
			atomic.AddInt64(&e.doing, 1)
			atomic.AddInt64(&e.running, 1)
			go e.worker(idx)

			dispatches++
			if dispatches%10000 == 0 {
				e.joinUpTo(atomic.LoadInt64(&e.doing) - nThread)
			}
			continue
		}
		time.Sleep(time.Millisecond)
	}
	e.joinUpTo(atomic.LoadInt64(&e.cnt))
}

func (e *Engine) worker(idx int64) {
	defer close(e.doneCh[idx])
	defer atomic.AddInt64(&e.running, -1)
	e.processLeg(int(idx))
}

func (e *Engine) joinUpTo(upto int64) {
	if upto > int64(len(e.doneCh)) {
		upto = int64(len(e.doneCh))
	}
	for ; e.done < upto; e.done++ {
		<-e.doneCh[e.done]
	}
}
