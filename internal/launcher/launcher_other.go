//go:build !unix

package launcher

import "os"

// Launch reproduces the handoff contract on platforms without process-image
// replacement: spawn the target, forward signals, wait, and exit with the
// child's exact exit code. Launch only returns on failure.
func Launch(path string, args []string) error {
	code, err := RunChild(path, args)
	if err != nil {
		return err
	}
	os.Exit(code)
	return nil
}
