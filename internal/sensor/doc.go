// Package sensor abstracts the PIR motion sensor behind the Input
// interface, with a hardware adapter on the Raspberry Pi GPIO memory
// range and a scripted fake for development and tests.
package sensor
