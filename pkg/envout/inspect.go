package envout

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultTool is the image-inspection binary executed when Inspector.Tool is unset.
const DefaultTool = "buildah"

// Inspector runs an external image-inspection tool and captures its whole output.
type Inspector struct {
	// Tool is the inspection binary to execute; DefaultTool if empty.
	Tool string
}

// Inspect runs `<tool> inspect <image>`, waits for it to finish, and returns
// everything it wrote to stdout. The image reference is passed through
// verbatim. A tool that cannot be started, or that exits non-zero, is an
// InvocationError carrying the tool's stderr.
func (i *Inspector) Inspect(ctx context.Context, image string) ([]byte, error) {
	tool := i.Tool
	if tool == "" {
		tool = DefaultTool
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, tool, "inspect", image)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	logrus.Debugf("Running %s inspect %s", tool, image)
	if err := cmd.Run(); err != nil {
		return nil, &InvocationError{Tool: tool, Err: err, Stderr: strings.TrimSpace(stderr.String())}
	}
	return stdout.Bytes(), nil
}
