// Package proc abstracts launching and waiting on external media
// processes (player, recorder, framebuffer viewer) behind the Runner
// and Handle interfaces, with a real os/exec implementation, a process
// table reaper, and scriptable fakes for tests.
package proc
