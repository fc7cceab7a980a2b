package ssh

import (
	"errors"
	"fmt"
	"net"
	"testing"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "auth rejection from handshake",
			err:  errors.New("ssh: handshake failed: ssh: unable to authenticate, attempted methods [none password], no supported methods remain"),
			want: KindAuthFailed,
		},
		{
			name: "permission denied",
			err:  errors.New("permission denied (publickey,password)"),
			want: KindAuthFailed,
		},
		{
			name: "net error",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			want: KindTransport,
		},
		{
			name: "timeout",
			err:  timeoutError{},
			want: KindTransport,
		},
		{
			name: "handshake failure without auth cause",
			err:  errors.New("ssh: handshake failed: read tcp: connection reset by peer"),
			want: KindTransport,
		},
		{
			name: "dropped connection",
			err:  errors.New("ssh: connection lost"),
			want: KindTransport,
		},
		{
			name: "unclassified",
			err:  errors.New("something else entirely"),
			want: KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("connect", tt.err)
			if got.Kind != tt.want {
				t.Errorf("Classify(%v) kind = %v, want %v", tt.err, got.Kind, tt.want)
			}
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	if got := Classify("connect", nil); got != nil {
		t.Errorf("Classify(nil) = %v, want nil", got)
	}
}

func TestClassify_PreservesExistingKind(t *testing.T) {
	inner := &Error{Kind: KindLocalPathNotFound, Op: "upload", Err: errors.New("missing")}
	got := Classify("copy", fmt.Errorf("wrapped: %w", inner))
	if got.Kind != KindLocalPathNotFound {
		t.Errorf("expected existing kind to survive reclassification, got %v", got.Kind)
	}
	if got.Op != "copy" {
		t.Errorf("expected op to be replaced, got %q", got.Op)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Kind: KindTransport, Op: "connect", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind with cause",
			err:  &Error{Kind: KindAuthFailed, Op: "connect", Err: errors.New("rejected")},
			want: "connect: authentication failed: rejected",
		},
		{
			name: "other omits the generic label",
			err:  &Error{Kind: KindOther, Op: "upload", Err: errors.New("boom")},
			want: "upload: boom",
		},
		{
			name: "kind without cause",
			err:  &Error{Kind: KindConfigMissing, Op: "connect"},
			want: "connect: config missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindOf_Untagged(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindOther {
		t.Errorf("KindOf(plain error) = %v, want KindOther", got)
	}
}

var _ net.Error = timeoutError{}
