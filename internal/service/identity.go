package service

import (
	"context"
	"fmt"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"github.com/Primesh-FL/FormSG/core/config"
)

// Identity is an admin's profile as reported by the identity provider.
type Identity struct {
	ProviderID string
	Name       string
	Email      string
	AvatarURL  *string
	SessionID  *string
}

type IdentityProvider interface {
	AuthorizationURL(state string) (string, error)
	Authenticate(ctx context.Context, code string) (*Identity, error)
}

type workOSProvider struct {
	cfg config.WorkOSConfig
}

// NewWorkOSProvider signs admins in through WorkOS AuthKit.
func NewWorkOSProvider(cfg config.WorkOSConfig) IdentityProvider {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &workOSProvider{cfg: cfg}
}

func (p *workOSProvider) AuthorizationURL(state string) (string, error) {
	u, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    p.cfg.ClientID,
		RedirectURI: p.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return u.String(), nil
}

func (p *workOSProvider) Authenticate(ctx context.Context, code string) (*Identity, error) {
	resp, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: p.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		return nil, fmt.Errorf("authenticating with code: %w", err)
	}

	u := resp.User
	identity := &Identity{
		ProviderID: u.ID,
		Name:       displayName(u.FirstName, u.LastName, u.Email),
		Email:      u.Email,
	}
	if u.ProfilePictureURL != "" {
		identity.AvatarURL = &u.ProfilePictureURL
	}
	return identity, nil
}

func displayName(first, last, email string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	}
	return email
}
