package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Func has the signature of Execute so sources can swap in a fake.
type Func func(ctx context.Context, name string, args ...string) ([]byte, error)

// Execute runs name with args and returns its stdout. When the command exits
// non-zero the stdout written so far is still returned next to the error,
// and the error carries the trimmed stderr.
func Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), fmt.Errorf("%v (stderr: %s)", err, msg)
		}
		return stdout.Bytes(), err
	}
	return stdout.Bytes(), nil
}
