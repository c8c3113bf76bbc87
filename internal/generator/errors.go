package generator

import "fmt"

// FilesystemError reports a directory creation or file write failure. It is
// never recovered: the command aborts with a non-zero exit code.
type FilesystemError struct {
	Op   string // "mkdir" or "write"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	switch e.Op {
	case "mkdir":
		return fmt.Sprintf("creating directory %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
	}
}

func (e *FilesystemError) Unwrap() error { return e.Err }
