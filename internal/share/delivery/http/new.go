package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"notion-share-sync/internal/share"
	pkgLog "notion-share-sync/pkg/log"
)

// Handler is the public interface for the share HTTP delivery layer.
type Handler interface {
	Trigger(c *gin.Context)
}

// Config configures the trigger endpoint.
type Config struct {
	// SingleFlight makes overlapping triggers join the in-flight run.
	SingleFlight bool
	Guard        GuardConfig
}

type handler struct {
	l            pkgLog.Logger
	uc           share.UseCase
	guard        *Guard
	singleFlight bool
	runs         singleflight.Group
}

// New creates a new HTTP handler for the share domain.
func New(l pkgLog.Logger, uc share.UseCase, cfg Config) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		guard:        NewGuard(cfg.Guard),
		singleFlight: cfg.SingleFlight,
	}
}
