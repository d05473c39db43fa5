package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"notion-share-sync/internal/share"
	pkgLog "notion-share-sync/pkg/log"
)

const runKey = "run"

// Trigger godoc
// @Summary     Run the share workflow
// @Description Shares every unshared minutes record, then every unshared manual record, and
// @Description replies once both categories are done. Per-record failures are only logged.
// @Tags        Share
// @Produce     plain
// @Success     200 {string} string "Notion sync process completed"
// @Failure     403 {object} response.Resp "IP not allowlisted"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Router      / [GET]
func (h *handler) Trigger(c *gin.Context) {
	// the run outlives a disconnected client
	ctx := context.WithoutCancel(c.Request.Context())
	if pkgLog.TraceID(ctx) == "" {
		ctx = pkgLog.WithTraceID(ctx, "")
	}

	if !h.singleFlight {
		h.run(ctx)
		c.String(http.StatusOK, share.CompletionMessage)
		return
	}

	_, _, shared := h.runs.Do(runKey, func() (any, error) {
		h.run(ctx)
		return nil, nil
	})
	if shared {
		h.l.Infof(ctx, "share: trigger joined an in-flight run")
	}
	c.String(http.StatusOK, share.CompletionMessage)
}

func (h *handler) run(ctx context.Context) {
	if _, err := h.uc.Run(ctx, share.RunInput{}); err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
	}
}
