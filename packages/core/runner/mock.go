package runner

import (
	"context"
	"sync"
)

// Call records one MockRunner invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
	Env  []string
}

// MockRunner records invocations instead of starting processes.
type MockRunner struct {
	mu     sync.Mutex
	calls  []Call
	Status int
	Err    error
}

// NewMockRunner returns a MockRunner reporting status 0.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// Run records the call and returns the configured status and error.
func (m *MockRunner) Run(_ context.Context, dir, name string, args, env []string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Dir: dir, Name: name, Args: args, Env: env})
	if m.Err != nil {
		return -1, m.Err
	}
	return m.Status, nil
}

// Calls returns the recorded invocations.
func (m *MockRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}
