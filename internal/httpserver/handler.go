package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"notion-share-sync/internal/middleware"
	"notion-share-sync/internal/model"
	shareHTTP "notion-share-sync/internal/share/delivery/http"
	"notion-share-sync/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)
	srv.gin.Use(mw.Trace(), gin.CustomRecovery(srv.recoverPanic), mw.Logging())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: %s, environment: production", srv.mode)
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s, environment: %s", srv.mode, srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	err := fmt.Errorf("panic: %v", recovered)
	srv.l.Errorf(c.Request.Context(), "%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.InternalError(c, err)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	return srv.setupShareDomain(context.Background())
}

// setupShareDomain mounts the share trigger at GET /.
func (srv HTTPServer) setupShareDomain(ctx context.Context) error {
	h := shareHTTP.New(srv.l, srv.shareUC, srv.shareConfig)
	shareHTTP.RegisterRoutes(srv.gin, h)

	guard := srv.shareConfig.Guard
	srv.l.Infof(ctx, "Share trigger registered at GET / (single_flight=%t, allowed_ips=%d, rate_limit_per_min=%d)",
		srv.shareConfig.SingleFlight, len(guard.AllowedIPs), guard.RateLimitPerMin)
	return nil
}
