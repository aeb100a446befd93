package console

import (
	"bufio"
	"io"
	"time"

	"inventory-service/internal/item"
	"inventory-service/pkg/log"
)

// Config is the dependency bag passed to New().
type Config struct {
	In       io.Reader
	Out      io.Writer
	Language string
}

// Console is the interactive menu front end of the item domain.
type Console struct {
	l   log.Logger
	uc  item.UseCase
	in  *bufio.Scanner
	out io.Writer
	msg messages
	now func() time.Time
}

// Option customises the console.
type Option func(*Console)

// WithClock overrides the time source used for the release-year prompt.
func WithClock(now func() time.Time) Option {
	return func(c *Console) { c.now = now }
}

// New creates a console reading from cfg.In and writing to cfg.Out.
func New(l log.Logger, uc item.UseCase, cfg Config, opts ...Option) *Console {
	c := &Console{
		l:   l,
		uc:  uc,
		in:  bufio.NewScanner(cfg.In),
		out: cfg.Out,
		msg: catalog(cfg.Language),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
