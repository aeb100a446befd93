package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "inventory-service/internal/auth/delivery/http"
	authUC "inventory-service/internal/auth/usecase"
	itemHTTP "inventory-service/internal/item/delivery/http"
	itemRepo "inventory-service/internal/item/repository/sqlite"
	itemUC "inventory-service/internal/item/usecase"
	"inventory-service/internal/middleware"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(r, h, mw)
func (srv HTTPServer) setupItemDomain(ctx context.Context, r gin.IRouter, mw middleware.Middleware) error {
	// 1. Repository
	repo := itemRepo.New(srv.db, srv.l)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	// 2. UseCase
	uc := itemUC.New(repo, srv.l, srv.pagination)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes: /items and /items/:id
	if srv.apiVersion == APIVersionSecure {
		itemHTTP.RegisterSecureRoutes(r, h, mw)
	} else {
		itemHTTP.RegisterRoutes(r, h)
	}

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}

// setupAuthDomain registers POST /login.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, r gin.IRouter, mw middleware.Middleware) {
	uc := authUC.New(srv.l, srv.jwtManager, srv.credentials)
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(r, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}
