package ssh

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
)

// Kind classifies a failure so callers can switch on the category
// instead of inspecting underlying library errors.
type Kind int

const (
	// KindOther is the catch-all for unclassified failures.
	KindOther Kind = iota
	// KindConfigMissing means a required connection setting is absent.
	KindConfigMissing
	// KindLocalPathNotFound means a local file or directory does not exist.
	KindLocalPathNotFound
	// KindAuthFailed means the server rejected the credentials.
	KindAuthFailed
	// KindTransport covers handshake, network and mid-operation connection faults.
	KindTransport
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindConfigMissing:
		return "config missing"
	case KindLocalPathNotFound:
		return "local path not found"
	case KindAuthFailed:
		return "authentication failed"
	case KindTransport:
		return "connection failed"
	default:
		return "error"
	}
}

// Error is the tagged failure returned by every fallible remote operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Kind == KindOther:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind carried by err, or KindOther for untagged errors.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindOther
}

// Classify wraps an error from the SSH or SFTP layer with the matching kind.
// The x/crypto client reports authentication rejection only through the
// handshake error text, so that check has to come before the transport one.
func Classify(op string, err error) *Error {
	if err == nil {
		return nil
	}

	var re *Error
	if errors.As(err, &re) {
		return &Error{Kind: re.Kind, Op: op, Err: re.Err}
	}

	msg := err.Error()
	if strings.Contains(msg, "unable to authenticate") ||
		strings.Contains(msg, "permission denied") {
		return &Error{Kind: KindAuthFailed, Op: op, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, os.ErrDeadlineExceeded) ||
		strings.Contains(msg, "handshake failed") ||
		strings.Contains(msg, "connection lost") ||
		strings.Contains(msg, "use of closed network connection") ||
		strings.Contains(msg, "EOF") {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}

	return &Error{Kind: KindOther, Op: op, Err: err}
}
