package logs

import (
	"io"
	"os"
)

// Writer is where the text handler writes. Tests fork it to a buffer.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
