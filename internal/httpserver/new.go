package httpserver

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"inventory-service/internal/auth"
	itemUC "inventory-service/internal/item/usecase"
	"inventory-service/pkg/log"
	"inventory-service/pkg/scope"
)

// Supported API variants.
const (
	APIVersionOpen   = 1
	APIVersionSecure = 2
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	apiVersion  int

	// Storage
	db *sql.DB

	// Auth domain (API v2)
	jwtManager           scope.Manager
	credentials          auth.Credentials
	loginRateLimitPerMin int

	// Item domain
	pagination itemUC.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	APIVersion  int

	DB *sql.DB

	// Required for APIVersionSecure only.
	JWTManager           scope.Manager
	Credentials          auth.Credentials
	LoginRateLimitPerMin int

	Pagination itemUC.Config
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                    logger,
		gin:                  gin.New(),
		port:                 cfg.Port,
		mode:                 cfg.Mode,
		environment:          cfg.Environment,
		apiVersion:           cfg.APIVersion,
		db:                   cfg.DB,
		jwtManager:           cfg.JWTManager,
		credentials:          cfg.Credentials,
		loginRateLimitPerMin: cfg.LoginRateLimitPerMin,
		pagination:           cfg.Pagination,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	switch srv.apiVersion {
	case APIVersionOpen:
	case APIVersionSecure:
		if srv.jwtManager == nil {
			return errors.New("jwt manager is required for api v2")
		}
	default:
		return fmt.Errorf("unsupported api version %d", srv.apiVersion)
	}
	return nil
}
