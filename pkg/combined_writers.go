package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to all of its writers, like io.MultiWriter, but a
// failing writer does not stop the rest. Errors are combined.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: append([]io.Writer(nil), writers...),
	}
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

// Write reports len(p) when at least one writer took the whole message.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	written := false
	for _, w := range cw.writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		written = true
	}
	if !written && len(cw.writers) > 0 {
		return 0, err
	}
	return len(p), err
}
