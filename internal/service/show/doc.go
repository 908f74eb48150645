// Package show wires the motion detector to the scare sequencer and
// runs one show variant end to end: simple playback, reaction recording
// with playback, or recording plus timed theme rotation.
//
// Startup (configuration, CLI validation, sensor init) fails fast;
// everything after the polling loop starts degrades gracefully and is
// only logged.
package show
