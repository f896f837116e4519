package progress

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestTask_AdvanceCapsAt100(t *testing.T) {
	tk := New("export", 3)
	if err := tk.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	completions := 0
	last := 0
	for i := 0; i < 40; i++ {
		if tk.Advance() {
			completions++
		}
		st := tk.Status()
		if st.Progress < last {
			t.Fatalf("progress went backwards: %d -> %d", last, st.Progress)
		}
		if st.Progress > 100 {
			t.Fatalf("progress = %d; want <= 100", st.Progress)
		}
		last = st.Progress
	}
	if completions != 1 {
		t.Errorf("completions = %d; want 1", completions)
	}
	if st := tk.Status(); st.State != StateDone || st.Progress != 100 {
		t.Errorf("status = %+v; want done at 100", st)
	}
}

func TestTask_BeginWhileRunning(t *testing.T) {
	tk := New("assist", 5)
	if err := tk.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := tk.Begin(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("err = %v; want ErrAlreadyRunning", err)
	}
	for !tk.Advance() {
	}
	if err := tk.Begin(); err != nil {
		t.Errorf("restart after done: %v", err)
	}
	if st := tk.Status(); st.Progress != 0 || st.State != StateRunning {
		t.Errorf("status = %+v; want running at 0", st)
	}
}

func TestTask_AdvanceWhenIdle(t *testing.T) {
	tk := New("assist", 5)
	if tk.Advance() {
		t.Error("Advance on idle task reported completion")
	}
	if st := tk.Status(); st.State != StateIdle || st.Progress != 0 {
		t.Errorf("status = %+v", st)
	}
}

func TestTask_StartCompletes(t *testing.T) {
	tk := New("assist", 50)
	var calls int32
	done, err := tk.Start(context.Background(), time.Millisecond, func(context.Context) {
		atomic.AddInt32(&calls, 1)
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not complete")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("onDone calls = %d; want 1", n)
	}
	if st := tk.Status(); st.State != StateDone || st.Progress != 100 {
		t.Errorf("status = %+v", st)
	}
}

func TestTask_StartCancelled(t *testing.T) {
	tk := New("export", 1)
	ctx, cancel := context.WithCancel(context.Background())
	var called atomic.Bool
	done, err := tk.Start(ctx, time.Hour, func(context.Context) { called.Store(true) })
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := tk.Start(ctx, time.Hour, nil); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start err = %v; want ErrAlreadyRunning", err)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not stop")
	}
	if called.Load() {
		t.Error("onDone called after cancel")
	}
	if st := tk.Status(); st.State != StateIdle || st.Progress != 0 {
		t.Errorf("status = %+v; want idle at 0", st)
	}
}

func TestNew_NonPositiveStep(t *testing.T) {
	tk := New("x", 0)
	_ = tk.Begin()
	tk.Advance()
	if p := tk.Status().Progress; p != 1 {
		t.Errorf("progress = %d; want 1", p)
	}
}
