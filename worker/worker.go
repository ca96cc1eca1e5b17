package worker

import (
	"errors"
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/fpsim/oerror"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to be run on the worker pool. It blocks while every worker is busy and the queue is full.
func Submit(f func()) {
	workerQueue <- f
}

// Group runs jobs on the worker pool and collects their errors. A panicking job is reported to sentry and
// recorded as an error instead of taking down its worker. The zero value is ready to use.
type Group struct {
	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
}

// Go submits f to the worker pool.
func (g *Group) Go(f func() error) {
	g.wg.Add(1)
	Submit(func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				sentry.CurrentHub().Recover(r)
				g.add(oerror.New("job panicked: %v", r))
			}
		}()
		if err := f(); err != nil {
			g.add(err)
		}
	})
}

func (g *Group) add(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Wait blocks until every submitted job has finished and returns their errors joined together.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}
