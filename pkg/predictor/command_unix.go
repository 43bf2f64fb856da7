//go:build unix

package predictor

import (
	"os/exec"
	"syscall"
)

// killProcessGroupOnCancel runs the child in its own process group and kills
// the whole group on cancel, so wrapper scripts do not leave workers behind.
func killProcessGroupOnCancel(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
