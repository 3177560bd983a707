package clipboard

import "sync"

// MockCopier records copied texts. Err, when set, is returned from Copy and
// nothing is recorded.
type MockCopier struct {
	mu     sync.Mutex
	Err    error
	copied []string
}

// Copy records text.
func (m *MockCopier) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.copied = append(m.copied, text)
	return nil
}

// Copied returns every text recorded so far.
func (m *MockCopier) Copied() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.copied...)
}

// Last returns the most recent text, or "" if nothing was copied.
func (m *MockCopier) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.copied) == 0 {
		return ""
	}
	return m.copied[len(m.copied)-1]
}
