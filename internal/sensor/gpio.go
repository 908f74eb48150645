package sensor

import (
	"fmt"
	"strings"
	"sync"

	rpio "github.com/stianeikeland/go-rpio/v4"
)

// GPIO reads a PIR motion sensor wired to a Raspberry Pi pin.
// Only one GPIO instance should hold the pin at a time.
type GPIO struct {
	pin       rpio.Pin
	closeOnce sync.Once
	closeErr  error
}

// OpenGPIO maps the GPIO memory range and configures the sensor pin
// as an input with the requested pull resistor.
//
// The underlying driver only understands BCM pin numbering; a request
// for BOARD numbering is rejected rather than silently misreading pins.
func OpenGPIO(pin int, pinMode, pullMode string) (*GPIO, error) {
	if !strings.EqualFold(pinMode, "BCM") {
		return nil, fmt.Errorf("pin mode %q (only BCM is supported): %w", pinMode, ErrUnsupportedPinMode)
	}

	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open gpio memory range: %v: %w", err, ErrHardwareInit)
	}

	g := &GPIO{pin: rpio.Pin(pin)}
	g.pin.Input()

	if strings.EqualFold(pullMode, "UP") {
		g.pin.PullUp()
	} else {
		g.pin.PullDown()
	}

	return g, nil
}

// Read samples the pin level.
func (g *GPIO) Read() (bool, error) {
	return g.pin.Read() == rpio.High, nil
}

// Close unmaps the GPIO memory range. Idempotent.
func (g *GPIO) Close() error {
	g.closeOnce.Do(func() {
		g.closeErr = rpio.Close()
	})

	return g.closeErr
}
