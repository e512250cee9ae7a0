package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// Argv builds the argument vector handed to the target binary: the resolved
// path as argv[0], then the caller's arguments unchanged and in order.
func Argv(path string, args []string) []string {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, path)
	argv = append(argv, args...)
	return argv
}

// RunChild spawns the target as a child process with inherited stdio and
// environment, relays termination signals to it, and blocks until it exits.
// The returned code is the child's exact exit code.
func RunChild(path string, args []string) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("start %q: %w", path, err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigc:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	close(done)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// A nonzero exit belongs to the child, not to the launcher.
		return ExitCode(err), nil
	}
	if err != nil {
		return 1, fmt.Errorf("wait for %q: %w", path, err)
	}
	return 0, nil
}

// ExitCode extracts the exit code from a command error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
