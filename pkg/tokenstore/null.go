package tokenstore

import "context"

// nullStore is a Null Object implementation of the Store interface. It is
// used for unauthenticated clients, avoiding nil checks at call sites.
type nullStore struct{}

// NewNull creates a Store that never holds a token: Get always returns
// ErrNoToken, Save discards its input and Clear does nothing.
func NewNull() Store {
	return &nullStore{}
}

// Get always returns ErrNoToken.
func (ns *nullStore) Get(ctx context.Context) (string, error) {
	return "", ErrNoToken
}

// Save discards the token and reports success.
func (ns *nullStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return nil
}

// Clear does nothing and returns nil.
func (ns *nullStore) Clear(ctx context.Context) error {
	return nil
}
