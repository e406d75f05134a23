package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/raphi011/consolemenu/internal/log"
)

// RunContext executes name with args in dir, with stdout and stderr attached
// to the given writers (nil discards). stderr is also captured and used as
// the error message if the command fails. An empty dir uses the current
// directory.
func RunContext(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdout = stdout
	var captured bytes.Buffer
	if stderr != nil {
		c.Stderr = io.MultiWriter(stderr, &captured)
	} else {
		c.Stderr = &captured
	}
	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errMsg := strings.TrimSpace(captured.String()); errMsg != "" {
			return fmt.Errorf("%s", errMsg)
		}
		return err
	}
	return nil
}

// Shell runs command through "sh -c" in the current directory.
func Shell(ctx context.Context, command string, stdout, stderr io.Writer) error {
	return RunContext(ctx, "", stdout, stderr, "sh", "-c", command)
}
