package proc

import (
	"fmt"
	"os"

	ps "github.com/mitchellh/go-ps"
)

// KillByName terminates every process whose executable name matches name,
// except the calling process. It returns how many processes were signaled.
//
// Used during cleanup to reap framebuffer viewers left on screen; those
// are detached from our process tree, so a handle-based kill cannot
// reach strays from previous runs.
func KillByName(name string) (int, error) {
	processes, err := ps.Processes()
	if err != nil {
		return 0, fmt.Errorf("list processes: %w", err)
	}

	self := os.Getpid()
	killed := 0

	for _, p := range processes {
		if p.Executable() != name || p.Pid() == self {
			continue
		}

		proc, err := os.FindProcess(p.Pid())
		if err != nil {
			continue
		}

		if err := proc.Kill(); err != nil {
			continue
		}

		killed++
	}

	return killed, nil
}
