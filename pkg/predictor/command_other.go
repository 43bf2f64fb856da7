//go:build !unix

package predictor

import "os/exec"

// Default exec.CommandContext kill; WaitDelay bounds the wait on pipes.
func killProcessGroupOnCancel(cmd *exec.Cmd) {}
