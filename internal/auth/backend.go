package auth

import (
	"context"
	"strings"

	"github.com/trailhead/trailhead/internal/gateway"
)

// GatewayBackend resolves credentials against the backend over HTTP. The
// login response carries only a user id; display fields are filled in from
// what the user typed.
type GatewayBackend struct {
	GW *gateway.Client
}

func (b *GatewayBackend) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	userID, err := b.GW.Authenticate(ctx, email, password)
	if err != nil {
		return Identity{}, err
	}
	return Identity{ID: userID, Email: email, Username: usernameFromEmail(email), Token: b.GW.SessionToken()}, nil
}

func (b *GatewayBackend) Register(ctx context.Context, username, email, password string) (Identity, error) {
	userID, err := b.GW.Register(ctx, username, email, password)
	if err != nil {
		return Identity{}, err
	}
	return Identity{ID: userID, Email: email, Username: username, Token: b.GW.SessionToken()}, nil
}

func usernameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
