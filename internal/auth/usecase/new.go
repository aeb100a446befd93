package usecase

import (
	"inventory-service/internal/auth"
	"inventory-service/pkg/log"
	"inventory-service/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l          log.Logger
	jwtManager scope.Manager
	creds      auth.Credentials
}

// New creates a new auth UseCase accepting only creds.
func New(l log.Logger, jwtManager scope.Manager, creds auth.Credentials) *implUseCase {
	return &implUseCase{
		l:          l,
		jwtManager: jwtManager,
		creds:      creds,
	}
}
