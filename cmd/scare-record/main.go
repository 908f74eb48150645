// Command scare-record plays a themed scare video on motion and records
// the subject's reaction for playback.
package main

import "github.com/dhowlett/scarebox/cmd/scare-record/cmd"

func main() {
	cmd.Execute()
}
