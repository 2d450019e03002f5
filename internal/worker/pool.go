// Package worker provides the bounded pool that drains the transfer
// submission queue.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrPoolClosed is returned by Submit after Stop has been called.
var ErrPoolClosed = errors.New("worker pool is closed")

// Pool runs submitted tasks on a bounded set of goroutines. It keeps min
// workers alive permanently and grows up to max while no worker is idle;
// extra workers retire after idleTimeout without work. The task queue is
// unbounded, so Submit never blocks: under saturation work queues up rather
// than being rejected.
type Pool struct {
	logger      *slog.Logger
	min         int
	max         int
	idleTimeout time.Duration

	mu      sync.Mutex
	queue   []func()
	workers int
	idle    int
	closed  bool

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

// NewPool starts a pool with min permanent workers. min is clamped to at
// least 1 and max to at least min.
func NewPool(min, max int, idleTimeout time.Duration, logger *slog.Logger) *Pool {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	p := &Pool{
		logger:      logger,
		min:         min,
		max:         max,
		idleTimeout: idleTimeout,
		wake:        make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
	p.workers = min
	p.wg.Add(min)
	for i := 0; i < min; i++ {
		go p.worker(true)
	}
	return p
}

// Submit enqueues a task and returns immediately. A new worker is spawned
// when nobody is idle and the pool is below its maximum size.
func (p *Pool) Submit(task func()) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.queue = append(p.queue, task)
	grow := p.idle == 0 && p.workers < p.max
	if grow {
		p.workers++
		p.wg.Add(1)
	}
	p.mu.Unlock()

	if grow {
		go p.worker(false)
		return nil
	}
	select {
	case p.wake <- struct{}{}:
	default:
	}
	return nil
}

// Stop closes the pool. Workers finish the queued tasks and exit; Stop
// returns once they are all done or the context expires.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()
	close(p.done)

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Workers returns the current number of workers.
func (p *Pool) Workers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workers
}

func (p *Pool) worker(core bool) {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		if len(p.queue) > 0 {
			task := p.queue[0]
			p.queue = p.queue[1:]
			p.mu.Unlock()
			p.run(task)
			continue
		}
		if p.closed {
			p.workers--
			p.mu.Unlock()
			return
		}
		p.idle++
		p.mu.Unlock()

		if core {
			select {
			case <-p.wake:
			case <-p.done:
			}
		} else {
			timer := time.NewTimer(p.idleTimeout)
			select {
			case <-p.wake:
				timer.Stop()
			case <-p.done:
				timer.Stop()
			case <-timer.C:
				p.mu.Lock()
				p.idle--
				if len(p.queue) == 0 && !p.closed {
					p.workers--
					p.mu.Unlock()
					return
				}
				p.mu.Unlock()
				continue
			}
		}
		p.mu.Lock()
		p.idle--
		p.mu.Unlock()
	}
}

// run shields the worker from panicking tasks; tasks carry their own error
// handling and a panic here is a last-resort leak.
func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", "panic", r)
		}
	}()
	task()
}
