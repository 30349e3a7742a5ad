package pandoc

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by Execute. Check with errors.Is.
var (
	ErrNoOutput         = errors.New("pandoc: no output specified")
	ErrNoInput          = errors.New("pandoc: no input specified")
	ErrConflictingInput = errors.New("pandoc: file input and piped input are mutually exclusive")
	ErrPandocNotFound   = errors.New("pandoc: executable not found")
)

// ExitError reports a pandoc process that started but exited with a nonzero
// status. Both output streams are carried verbatim so a failed conversion
// can be diagnosed without re-running.
type ExitError struct {
	Code   int // exit code, or -1 if the process was killed by a signal
	Stdout string
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("pandoc: exited with code %d\nstdout:\n%s\nstderr:\n%s",
		e.Code, e.Stdout, e.Stderr)
}

// InvalidUTF8Error reports captured output that was expected to be text but
// is not valid UTF-8. ValidBytes is the length of the longest valid prefix,
// which helps locate partial corruption.
type InvalidUTF8Error struct {
	ValidBytes int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("pandoc: output is not valid UTF-8 (valid up to byte %d)", e.ValidBytes)
}
