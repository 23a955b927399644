package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/sqlpage/ecode"
	"github.com/ncobase/sqlpage/logging/logger"
	"github.com/ncobase/sqlpage/net/resp"
	"github.com/ncobase/sqlpage/observes"
	"github.com/ncobase/sqlpage/paging"
	"github.com/ncobase/sqlpage/validator"
)

// Pinger reports whether the backing connections are reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves pages of one source.
type Handler struct {
	paginator *paging.Paginator[any]
	pinger    Pinger
	logger    *logger.Logger
}

// NewHandler creates a Handler. pinger may be nil.
func NewHandler(p *paging.Paginator[any], pinger Pinger, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.StdLogger()
	}
	return &Handler{paginator: p, pinger: pinger, logger: log}
}

// ListPage returns the page following page_token.
//
// GET /v1/pages?page_size=&page_token=
func (h *Handler) ListPage(c *gin.Context) {
	var params paging.Params
	errs, err := validator.ShouldBindQueryAndValidate(c, &params)
	if err != nil {
		resp.Fail(c.Writer, resp.InvalidParams(ecode.FieldIsInvalid("query"), err.Error()))
		return
	}
	if len(errs) > 0 {
		resp.Fail(c.Writer, resp.InvalidParams("", errs))
		return
	}

	page, err := h.paginator.Paginate(c.Request.Context(), params)
	if err != nil {
		if ecode.ToHTTPStatus(ecode.FromError(err)) >= http.StatusInternalServerError {
			observes.CaptureError(c.Request.Context(), err)
		}
		resp.Fail(c.Writer, resp.FromError(err))
		return
	}
	resp.Success(c.Writer, page)
}

// DecodeToken shows the progress carried by a token. The token is taken
// from the query string because it may contain '/'.
//
// GET /v1/tokens?token=
func (h *Handler) DecodeToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		resp.Fail(c.Writer, resp.InvalidParams(ecode.FieldIsRequired("token")))
		return
	}
	state, err := paging.DecodeToken(token)
	if err != nil {
		resp.Fail(c.Writer, resp.FromError(err))
		return
	}
	resp.Success(c.Writer, gin.H{
		"state": state,
		"done":  state.Done(),
	})
}

// NotFound answers requests for unknown routes.
func (h *Handler) NotFound(c *gin.Context) {
	resp.Fail(c.Writer, resp.NotFound(ecode.NotExist(c.Request.Method+" "+c.Request.URL.Path)))
}

// Health pings the backends.
//
// GET /healthz
func (h *Handler) Health(c *gin.Context) {
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request.Context()); err != nil {
			h.logger.Error(c.Request.Context(), "health check failed", "error", err)
			resp.Fail(c.Writer, resp.ServiceUnavailable(""))
			return
		}
	}
	resp.Success(c.Writer, map[string]string{"status": "healthy"})
}
