package cli

import (
	"io"
	"os"
)

// Streams bundles the standard streams a command runs against.
// Results go to Out; prompts, usage and diagnostics go to Err.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's own stdin, stdout and stderr.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}
