package ssh

import "io"

// Executor abstracts remote command execution for testability.
type Executor interface {
	Exec(command string) (*ExecResult, error)
	ExecStream(command string, stdout, stderr io.Writer) error
	Close() error
}

var _ Executor = (*Client)(nil)
