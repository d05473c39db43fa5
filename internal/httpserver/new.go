package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"notion-share-sync/internal/model"
	"notion-share-sync/internal/share"
	shareHTTP "notion-share-sync/internal/share/delivery/http"
	"notion-share-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Share domain
	shareUC     share.UseCase
	shareConfig shareHTTP.Config
	categories  []model.Category
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TrustedProxies may set X-Forwarded-For / X-Real-IP. Empty trusts none.
	TrustedProxies []string

	// Share domain
	ShareUseCase share.UseCase
	ShareConfig  shareHTTP.Config
	Categories   []model.Category
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		shareUC:     cfg.ShareUseCase,
		shareConfig: cfg.ShareConfig,
		categories:  cfg.Categories,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
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
	if srv.shareUC == nil {
		return errors.New("share usecase is required")
	}
	return nil
}
