package player

import (
	"os/exec"
)

// handle exposes the liveness of a spawned process.
type handle interface {
	Alive() bool
}

// spawner abstracts process creation so tests can inject fakes.
type spawner interface {
	Spawn(name string, args ...string) (handle, error)
}

type execSpawner struct{}

type execHandle struct {
	exited chan struct{}
}

func (h *execHandle) Alive() bool {
	select {
	case <-h.exited:
		return false
	default:
		return true
	}
}

// Spawn starts the process detached from this one, with all standard pipes disabled,
// and reaps it in the background to prevent zombies.
func (execSpawner) Spawn(name string, args ...string) (handle, error) {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	h := &execHandle{exited: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(h.exited)
	}()

	return h, nil
}
