// Package rotation implements timed theme rotation with a bounded random
// draw that never repeats the immediately-previous theme. Rotation is
// checked synchronously between scare cycles, never on a separate timer.
package rotation
