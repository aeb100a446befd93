package usecase

import (
	"context"
	"crypto/subtle"

	"inventory-service/internal/auth"
)

// Login issues a session token when input matches the configured credentials.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	if input.Username == "" || input.Password == "" {
		return auth.LoginOutput{}, auth.ErrMissingCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(uc.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(uc.creds.Password)) == 1
	if !userOK || !passOK || uc.creds.Username == "" {
		uc.l.Infof(ctx, "uc.Login: rejected credentials for %q", input.Username)
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	tok, err := uc.jwtManager.CreateToken(input.Username)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login CreateToken: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{Token: tok.Value, ExpiresAt: tok.ExpiresAt}, nil
}
