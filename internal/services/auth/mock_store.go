package auth

// MockStore is an in-memory auth store for testing.
type MockStore struct {
	tokens map[string]string
}

func NewMockStore() *MockStore {
	return &MockStore{tokens: make(map[string]string)}
}

func (m *MockStore) SetToken(dataCenter string, token string) error {
	m.tokens[dataCenter] = token
	return nil
}

func (m *MockStore) GetToken(dataCenter string) (string, error) {
	token, ok := m.tokens[dataCenter]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (m *MockStore) DeleteToken(dataCenter string) error {
	if _, ok := m.tokens[dataCenter]; !ok {
		return ErrTokenNotFound
	}
	delete(m.tokens, dataCenter)
	return nil
}
