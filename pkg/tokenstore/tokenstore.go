// Package tokenstore persists the single opaque bearer token that
// authenticates restokit calls. The client itself never touches token
// storage; collaborators read the token here and pass it per call with
// restokit.WithToken.
package tokenstore

import (
	"context"
	"errors"
)

// ErrNoToken is returned by Get when no token has been saved, or after Clear.
var ErrNoToken = errors.New("tokenstore: no token stored")

// ErrEmptyToken is returned by Save when the provided token is empty.
var ErrEmptyToken = errors.New("tokenstore: token cannot be empty")

// Store holds exactly one opaque token string. Implementations must be safe
// for concurrent use.
type Store interface {
	// Get returns the stored token, or ErrNoToken when none is stored.
	Get(ctx context.Context) (string, error)

	// Save replaces the stored token. An empty token is rejected with
	// ErrEmptyToken.
	Save(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
