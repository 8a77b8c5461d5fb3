package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var (
	// ErrNotConfigured means Google sign-in credentials are absent.
	ErrNotConfigured = errors.New("google oauth not configured")
	// ErrUpstream wraps failures talking to Google's endpoints.
	ErrUpstream = errors.New("google oauth upstream failure")
)

type GoogleUser struct {
	ID      string
	Email   string
	Name    string
	Picture string
}

// GoogleAuthenticator abstracts the Google authorization-code flow so
// handlers can be tested without network calls.
type GoogleAuthenticator interface {
	AuthCodeURL() string
	FetchUser(ctx context.Context, code string) (*GoogleUser, error)
}

type googleOAuth struct {
	cfg *oauth2.Config
}

func NewGoogleAuthenticator(clientID, clientSecret, redirectURL string) GoogleAuthenticator {
	return &googleOAuth{cfg: &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}}
}

func (g *googleOAuth) AuthCodeURL() string {
	return g.cfg.AuthCodeURL("", oauth2.AccessTypeOffline)
}

// FetchUser exchanges the authorization code and fetches the Google profile.
func (g *googleOAuth) FetchUser(ctx context.Context, code string) (*GoogleUser, error) {
	tok, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: exchanging code: %v", ErrUpstream, err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(g.cfg.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("%w: building userinfo client: %v", ErrUpstream, err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: fetching userinfo: %v", ErrUpstream, err)
	}

	name := info.Name
	if name == "" {
		name = "Google User"
	}

	return &GoogleUser{
		ID:      info.Id,
		Email:   info.Email,
		Name:    name,
		Picture: info.Picture,
	}, nil
}
