// Package recorder wraps an audio capture device so that every start/stop
// cycle yields exactly one recording.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrDeviceUnavailable = errors.New("recorder: capture device unavailable")
	ErrAlreadyRecording  = errors.New("recorder: already recording")
	ErrNotRecording      = errors.New("recorder: not recording")
)

const DefaultMimeType = "audio/webm"

// Recording is the finalized capture.
type Recording struct {
	Name     string
	MimeType string
	Data     []byte
}

type Recorder struct {
	mu      sync.Mutex
	device  Device
	capture Capture
	started time.Time
	now     func() time.Time
}

func New(device Device) *Recorder {
	return &Recorder{device: device, now: time.Now}
}

// Start acquires the device. Nothing changes if acquisition fails.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.capture != nil {
		return ErrAlreadyRecording
	}
	c, err := r.device.Acquire(ctx)
	if err != nil {
		if errors.Is(err, ErrDeviceUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	r.capture = c
	r.started = r.now()
	return nil
}

// Write appends audio to the running capture.
func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.capture == nil {
		return 0, ErrNotRecording
	}
	return r.capture.Write(p)
}

// Stop releases the device and returns the one recording of this cycle.
func (r *Recorder) Stop() (Recording, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.capture == nil {
		return Recording{}, ErrNotRecording
	}
	c := r.capture
	r.capture = nil
	data, err := c.Finalize()
	if err != nil {
		return Recording{}, fmt.Errorf("finalize capture: %w", err)
	}
	mime := c.MimeType()
	if mime == "" {
		mime = DefaultMimeType
	}
	return Recording{
		Name:     "Recording-" + r.now().Format("15:04:05") + ".webm",
		MimeType: mime,
		Data:     data,
	}, nil
}

func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.capture != nil
}
