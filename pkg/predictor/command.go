package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"
)

const (
	backendCommand = "command"

	// How long Run waits on inherited stdout/stderr after the child is killed.
	commandWaitDelay = 2 * time.Second
)

// CommandPredictor runs the classifier as a child process per batch:
// {"sequences": [...]} on stdin, a JSON array of predictions on stdout.
type CommandPredictor struct {
	path     string
	args     []string
	modelDir string
}

// NewCommandPredictor resolves name on PATH once. A missing binary is a
// startup error; it is never looked up again.
func NewCommandPredictor(name string, args []string, modelDir string) (*CommandPredictor, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("resolve predictor command %q: %w", name, err)
	}

	return &CommandPredictor{
		path:     path,
		args:     append([]string(nil), args...),
		modelDir: modelDir,
	}, nil
}

func (p *CommandPredictor) Path() string {
	return p.path
}

func (p *CommandPredictor) Predict(ctx context.Context, sequences []string) ([]RawPrediction, error) {

	input, err := json.Marshal(predictRequest{Sequences: sequences})
	if err != nil {
		return nil, &BackendError{Backend: backendCommand, Err: err}
	}

	// MODEL_DIR tells the child where the pickles live.
	cmd := exec.CommandContext(ctx, p.path, p.args...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Env = append(os.Environ(), "MODEL_DIR="+p.modelDir)
	cmd.WaitDelay = commandWaitDelay
	killProcessGroupOnCancel(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &BackendError{
			Backend:    backendCommand,
			Err:        fmt.Errorf("failed to execute %s: %w", p.path, err),
			Diagnostic: stderr.String(),
		}
	}

	var predictions []RawPrediction
	if err := json.Unmarshal(stdout.Bytes(), &predictions); err != nil {
		return nil, &BackendError{
			Backend:    backendCommand,
			Err:        fmt.Errorf("failed to decode predictor output: %w", err),
			Diagnostic: stderr.String(),
		}
	}

	return predictions, nil
}
