// Command scare-rotate cycles through scare themes on a timer while
// recording and playing back reactions to each motion-triggered scare.
package main

import "github.com/dhowlett/scarebox/cmd/scare-rotate/cmd"

func main() {
	cmd.Execute()
}
