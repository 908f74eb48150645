package sensor

import "errors"

var (
	// ErrHardwareInit indicates the sensor hardware could not be set up.
	ErrHardwareInit = errors.New("sensor hardware initialization failed")
	// ErrUnsupportedPinMode indicates a pin numbering scheme the driver cannot honor.
	ErrUnsupportedPinMode = errors.New("unsupported pin numbering mode")
)

// Input reads a binary motion sensor.
// Implementations: GPIO (hardware) and Fake (development/tests).
type Input interface {
	// Read returns the current level of the sensor,
	// true while motion is being reported.
	Read() (bool, error)

	// Close releases the sensor resource. Safe to call more than once.
	Close() error
}
