package sensor

import "sync"

// Fake simulates a motion sensor for development hosts without GPIO
// hardware and for tests. It replays a scripted sequence of levels and
// then keeps reporting the last one; Set overrides the level at any time.
type Fake struct {
	mu     sync.Mutex
	script []bool
	level  bool
	closed bool
	// ReadErr, when set, is returned by every Read.
	ReadErr error
	// OnRead, when set, is called after each Read with the read count so far.
	OnRead func(count int)
	reads  int
}

// NewFake returns a Fake that replays the given levels in order.
// With no levels it reports inactive until Set is called.
func NewFake(levels ...bool) *Fake {
	return &Fake{script: levels}
}

// Set overrides the current level, discarding any unread script.
func (f *Fake) Set(level bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.script = nil
	f.level = level
}

// Read returns the next scripted level, or the last known level once the
// script is exhausted.
func (f *Fake) Read() (bool, error) {
	f.mu.Lock()

	if len(f.script) > 0 {
		f.level = f.script[0]
		f.script = f.script[1:]
	}

	level := f.level
	f.reads++
	count := f.reads
	onRead := f.OnRead
	err := f.ReadErr

	f.mu.Unlock()

	if onRead != nil {
		onRead(count)
	}

	if err != nil {
		return false, err
	}

	return level, nil
}

// Reads returns how many times the sensor has been sampled.
func (f *Fake) Reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.reads
}

// Close marks the sensor released. Idempotent.
func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true

	return nil
}

// Closed reports whether Close has been called.
func (f *Fake) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closed
}
