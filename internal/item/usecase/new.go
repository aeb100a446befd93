package usecase

import (
	"time"

	"inventory-service/internal/item/repository"
	"inventory-service/pkg/log"
)

// Defaults applied when Config leaves a field zero.
const (
	DefaultPageSize = 10
	DefaultMaxSize  = 100
)

// Config tunes list pagination.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	cfg  Config
	now  func() time.Time
}

// Option customises the use case.
type Option func(*implUseCase)

// WithClock overrides the time source used for release-year validation.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger, cfg Config, opts ...Option) *implUseCase {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = DefaultPageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = DefaultMaxSize
	}
	uc := &implUseCase{
		repo: repo,
		l:    l,
		cfg:  cfg,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
