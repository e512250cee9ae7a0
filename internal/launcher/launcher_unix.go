//go:build unix

package launcher

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Launch replaces the current process image with the target binary. The
// target inherits this process's descriptors, environment (including the
// augmented PATH), and process identity, so its exit status is seen
// directly by the caller. Launch only returns on failure.
func Launch(path string, args []string) error {
	if err := unix.Exec(path, Argv(path, args), os.Environ()); err != nil {
		return fmt.Errorf("exec %q: %w", path, err)
	}
	return nil
}
