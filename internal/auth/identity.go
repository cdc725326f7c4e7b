package auth

import (
	"context"
	"errors"
	"fmt"

	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

//go:generate mockgen -source=$GOFILE -destination=identity_mocks_test.go -package=auth_test

var ErrBadCredentials = errors.New("bad credentials")

type Identity struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IDToken string `json:"-"`
}

// IdentityProvider authenticates users against an external account service.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	// CurrentUser resolves an identity token minted by the provider.
	CurrentUser(ctx context.Context, idToken string) (*Identity, error)
}

var _ IdentityProvider = (*FirebaseProvider)(nil)

// FirebaseProvider talks to the Firebase Identity Toolkit REST API.
type FirebaseProvider struct {
	relyingParty *identitytoolkit.RelyingpartyService
}

// NewFirebaseProvider builds a provider for the project owning apiKey.
// Extra options, like option.WithEndpoint, are passed through to the client.
func NewFirebaseProvider(ctx context.Context, apiKey string, opts ...option.ClientOption) (*FirebaseProvider, error) {
	if apiKey == "" {
		return nil, errors.New("firebase api key not set")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create identity toolkit service: %w", err)
	}

	return &FirebaseProvider{
		relyingParty: svc.Relyingparty,
	}, nil
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	resp, err := p.relyingParty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadCredentials, err)
	}
	if resp.LocalId == "" {
		return nil, fmt.Errorf("%w: empty account id", ErrBadCredentials)
	}

	return &Identity{
		UserID:  resp.LocalId,
		Email:   resp.Email,
		IDToken: resp.IdToken,
	}, nil
}

func (p *FirebaseProvider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	resp, err := p.relyingParty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	if resp.LocalId == "" {
		return nil, errors.New("sign up: empty account id")
	}

	return &Identity{
		UserID:  resp.LocalId,
		Email:   resp.Email,
		IDToken: resp.IdToken,
	}, nil
}

func (p *FirebaseProvider) CurrentUser(ctx context.Context, idToken string) (*Identity, error) {
	if idToken == "" {
		return nil, ErrInvalidToken
	}

	resp, err := p.relyingParty.GetAccountInfo(&identitytoolkit.IdentitytoolkitRelyingpartyGetAccountInfoRequest{
		IdToken: idToken,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if len(resp.Users) == 0 || resp.Users[0].LocalId == "" {
		return nil, fmt.Errorf("%w: no account for token", ErrInvalidToken)
	}

	return &Identity{
		UserID:  resp.Users[0].LocalId,
		Email:   resp.Users[0].Email,
		IDToken: idToken,
	}, nil
}
