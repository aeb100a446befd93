package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-service/pkg/errors"
	"inventory-service/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "inventory-service"

	readyTimeout = 2 * time.Second
)

type probeResp struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	Version    string `json:"version"`
	APIVersion int    `json:"api_version"`
}

func (srv HTTPServer) probe(c *gin.Context, status string) {
	response.OK(c, probeResp{
		Status:     status,
		Service:    ServiceName,
		Version:    HealthVersion,
		APIVersion: srv.apiVersion,
	})
}

// healthCheck godoc
// @Summary  Health Check
// @Tags     Health
// @Produce  json
// @Success  200 {object} probeResp
// @Router   /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.probe(c, "healthy")
}

// readyCheck answers 503 until the database responds to a ping.
// @Summary  Readiness Check
// @Tags     Health
// @Produce  json
// @Success  200 {object} probeResp
// @Failure  503 {object} response.ErrorResp "Database unavailable"
// @Router   /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: database ping failed: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "database unavailable"))
		return
	}
	srv.probe(c, "ready")
}

// liveCheck godoc
// @Summary  Liveness Check
// @Tags     Health
// @Produce  json
// @Success  200 {object} probeResp
// @Router   /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.probe(c, "alive")
}
