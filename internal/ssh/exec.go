package ssh

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/term"
)

// ExecResult holds the outcome of one remote command: both streams fully
// drained, and the remote process's real exit status.
type ExecResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Exec executes a command on the remote server. The command string is passed
// to the remote shell as-is, with no local quoting. A non-zero remote exit
// code is not an error here; it is carried in the result.
func (c *Client) Exec(command string) (*ExecResult, error) {
	session, err := c.NewSession()
	if err != nil {
		return nil, Classify("run command", err)
	}
	defer session.Close()

	// Run buffers both streams to completion before returning the exit
	// status, so a chatty remote process cannot deadlock on a full pipe.
	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	err = session.Run(command)

	result := &ExecResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitStatus()
			return result, nil
		}
		return result, Classify("run command", err)
	}

	return result, nil
}

// ExecStream executes a command and writes its output to the given writers
// as it arrives.
func (c *Client) ExecStream(command string, stdout, stderr io.Writer) error {
	session, err := c.NewSession()
	if err != nil {
		return Classify("run command", err)
	}
	defer session.Close()

	session.Stdout = stdout
	session.Stderr = stderr

	if err := session.Run(command); err != nil {
		return Classify("run command", err)
	}
	return nil
}

// Shell opens an interactive login shell with a PTY sized to the local
// terminal. The local terminal is put into raw mode for the duration.
func (c *Client) Shell() error {
	session, err := c.NewSession()
	if err != nil {
		return Classify("open shell", err)
	}
	defer session.Close()

	fd := int(os.Stdin.Fd())
	width, height := 80, 40
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}

		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to set raw terminal mode: %w", err)
		}
		defer term.Restore(fd, oldState)
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          1,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}

	if err := session.RequestPty("xterm", height, width, modes); err != nil {
		return fmt.Errorf("failed to request pty: %w", err)
	}

	session.Stdin = os.Stdin
	session.Stdout = os.Stdout
	session.Stderr = os.Stderr

	if err := session.Shell(); err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}

	return session.Wait()
}
