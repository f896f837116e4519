package recorder

import (
	"bytes"
	"context"
	"sync"
)

// Device is an audio capture source. Acquire blocks the device until the
// returned Capture is finalized.
type Device interface {
	Acquire(ctx context.Context) (Capture, error)
}

// Capture receives audio while a recording is running.
type Capture interface {
	Write(p []byte) (int, error)
	// Finalize releases the device and returns everything written.
	Finalize() ([]byte, error)
	MimeType() string
}

// BufferDevice captures into memory. It can be held by one recording at a time.
type BufferDevice struct {
	mu       sync.Mutex
	busy     bool
	mimeType string
}

func NewBufferDevice(mimeType string) *BufferDevice {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	return &BufferDevice{mimeType: mimeType}
}

func (d *BufferDevice) Acquire(ctx context.Context) (Capture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.busy {
		return nil, ErrDeviceUnavailable
	}
	d.busy = true
	return &bufferCapture{dev: d}, nil
}

func (d *BufferDevice) release() {
	d.mu.Lock()
	d.busy = false
	d.mu.Unlock()
}

type bufferCapture struct {
	dev  *BufferDevice
	buf  bytes.Buffer
	done bool
}

func (c *bufferCapture) Write(p []byte) (int, error) {
	if c.done {
		return 0, ErrNotRecording
	}
	return c.buf.Write(p)
}

func (c *bufferCapture) Finalize() ([]byte, error) {
	if c.done {
		return nil, ErrNotRecording
	}
	c.done = true
	c.dev.release()
	return bytes.Clone(c.buf.Bytes()), nil
}

func (c *bufferCapture) MimeType() string { return c.dev.mimeType }

// UnavailableDevice never grants access. Used when recording is disabled.
type UnavailableDevice struct{}

func (UnavailableDevice) Acquire(context.Context) (Capture, error) {
	return nil, ErrDeviceUnavailable
}
