package middleware

import (
	"notion-share-sync/pkg/log"
)

// HeaderRequestID is read as the trace id when present and echoed back on every response.
const HeaderRequestID = "X-Request-ID"

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
