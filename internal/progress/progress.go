// Package progress drives the simulated long-running jobs of a project
// (AI-assist, export). A job ticks from 0 to 100 and then completes once.
package progress

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrAlreadyRunning = errors.New("progress: task already running")

type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateDone    State = "done"
)

// Status is what pollers see.
type Status struct {
	Name     string `json:"name"`
	State    State  `json:"state"`
	Progress int    `json:"progress"`
}

// Task is one progress-reporting job. Only one run may be in flight.
type Task struct {
	mu       sync.Mutex
	name     string
	step     int
	state    State
	progress int
}

func New(name string, step int) *Task {
	if step <= 0 {
		step = 1
	}
	return &Task{name: name, step: step, state: StateIdle}
}

func (t *Task) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Status{Name: t.name, State: t.state, Progress: t.progress}
}

// Begin moves the task to running at 0%. A finished task may be started again.
func (t *Task) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateRunning {
		return ErrAlreadyRunning
	}
	t.state = StateRunning
	t.progress = 0
	return nil
}

// Advance adds one step, capped at 100. It reports true exactly once, on the
// call that reaches 100.
func (t *Task) Advance() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateRunning {
		return false
	}
	t.progress = min(100, t.progress+t.step)
	if t.progress < 100 {
		return false
	}
	t.state = StateDone
	return true
}

func (t *Task) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateRunning {
		t.state = StateIdle
		t.progress = 0
	}
}

// Start begins the task and advances it every interval until it completes,
// then calls onDone once. Cancelling ctx stops the ticking and returns the task
// to idle without calling onDone. The returned channel closes when the
// goroutine exits.
func (t *Task) Start(ctx context.Context, interval time.Duration, onDone func(context.Context)) (<-chan struct{}, error) {
	if err := t.Begin(); err != nil {
		return nil, err
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				t.reset()
				return
			case <-ticker.C:
				if t.Advance() {
					if onDone != nil {
						onDone(ctx)
					}
					return
				}
			}
		}
	}()
	return done, nil
}
