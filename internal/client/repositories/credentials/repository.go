// Package credentials persists the bearer credential across process
// restarts. One fixed key is used; absence of the row means logged out.
package credentials

import (
	"context"
)

// Repository is the persisted credential store. Token doubles as the
// api.TokenSource consulted before every outbound request.
type Repository interface {
	// Token returns the stored credential, or an empty string when absent.
	Token(ctx context.Context) (string, error)
	// Save stores the credential, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Clear removes the credential. Clearing an absent credential is a no-op.
	Clear(ctx context.Context) error
}
