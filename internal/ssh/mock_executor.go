package ssh

import "io"

// MockExecutor is a test double that records commands and returns configured results.
type MockExecutor struct {
	ExecFunc       func(command string) (*ExecResult, error)
	ExecStreamFunc func(command string, stdout, stderr io.Writer) error
	Commands       []string
}

// Exec records the command and delegates to ExecFunc.
func (m *MockExecutor) Exec(command string) (*ExecResult, error) {
	m.Commands = append(m.Commands, command)
	if m.ExecFunc != nil {
		return m.ExecFunc(command)
	}
	return &ExecResult{}, nil
}

// ExecStream records the command and delegates to ExecStreamFunc.
func (m *MockExecutor) ExecStream(command string, stdout, stderr io.Writer) error {
	m.Commands = append(m.Commands, command)
	if m.ExecStreamFunc != nil {
		return m.ExecStreamFunc(command, stdout, stderr)
	}
	return nil
}

// Close is a no-op for the mock.
func (m *MockExecutor) Close() error {
	return nil
}
