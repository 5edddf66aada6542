package store

// Memory is an in-memory Backend for tests and ephemeral runs.
type Memory struct {
	data []byte
}

// NewMemory provides Memory backend instance
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the last saved document
func (m *Memory) Load() ([]byte, error) {
	return m.data, nil
}

// Save retains the document
func (m *Memory) Save(data []byte) error {
	m.data = append([]byte(nil), data...)

	return nil
}
