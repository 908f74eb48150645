// Command scare plays a themed scare video whenever motion is detected.
package main

import "github.com/dhowlett/scarebox/cmd/scare/cmd"

func main() {
	cmd.Execute()
}
