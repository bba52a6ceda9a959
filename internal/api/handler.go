package api

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/hofkit/errors"
	"github.com/kbukum/hofkit/internal/app"
	"github.com/kbukum/hofkit/server"
	"github.com/kbukum/hofkit/validation"
)

// Handler serves the /v1 routes.
type Handler struct {
	svc *app.Service
}

// NewHandler creates a Handler backed by svc.
func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the /v1 routes on r.
func (h *Handler) Register(r gin.IRouter) {
	v1 := r.Group("/v1")
	v1.POST("/zip", h.Zip)
	v1.POST("/evaluate", h.Evaluate)
	v1.POST("/longest", h.Longest)
	v1.POST("/select", h.Select)
	v1.POST("/capitalized", h.Capitalized)
	v1.POST("/flatten", h.Flatten)
	v1.GET("/operations", h.Operations)
}

// bind decodes and validates the JSON body into req, rendering any error.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("body", err.Error()).WithCause(err))
		return false
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return false
	}
	return true
}

// Zip folds the operations over the operands in place.
func (h *Handler) Zip(c *gin.Context) {
	var req ZipRequest
	if !bind(c, &req) {
		return
	}
	result, err := h.svc.Zip(c.Request.Context(), req.Operands, req.Operations)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			err = appErr.WithDetail("operands", req.Operands)
		}
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, ZipResponse{Result: result, Operands: req.Operands})
}

// Evaluate returns the partial results of the fold without touching the input.
func (h *Handler) Evaluate(c *gin.Context) {
	var req ZipRequest
	if !bind(c, &req) {
		return
	}
	trace, err := h.svc.Evaluate(c.Request.Context(), req.Operands, req.Operations)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && len(trace.Partials) > 0 {
			err = appErr.WithDetail("trace", trace)
		}
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, EvaluateResponse{Trace: trace})
}

// Longest selects among strings; mode defaults to longest.
func (h *Handler) Longest(c *gin.Context) {
	var req StringSelectRequest
	if !bind(c, &req) {
		return
	}
	if req.Mode == "" {
		req.Mode = string(app.ModeLongest)
	}
	mode, err := app.ParseMode(req.Mode)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	tie, err := h.svc.TieBreak(req.TieBreak)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	v, found, err := h.svc.SelectString(c.Request.Context(), req.Values, mode, tie)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	resp := SelectResponse{Found: found, Mode: string(mode), TieBreak: tie.String()}
	if found {
		resp.Value = v
	}
	server.RespondOK(c, resp)
}

// Select picks the greatest or least number.
func (h *Handler) Select(c *gin.Context) {
	var req SelectRequest
	if !bind(c, &req) {
		return
	}
	mode, err := app.ParseMode(req.Mode)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	tie, err := h.svc.TieBreak(req.TieBreak)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	v, found, err := h.svc.Select(c.Request.Context(), req.Values, mode, tie)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	resp := SelectResponse{Found: found, Mode: string(mode), TieBreak: tie.String()}
	if found {
		resp.Value = v
	}
	server.RespondOK(c, resp)
}

// Capitalized keeps the values whose first letter is upper-case.
func (h *Handler) Capitalized(c *gin.Context) {
	var req StringsRequest
	if !bind(c, &req) {
		return
	}
	out := h.svc.Capitalized(c.Request.Context(), req.Values)
	server.RespondOK(c, LinesResponse{Values: out, Count: len(out)})
}

// Flatten renders the entries as "key -> value" lines, sorted unless sorted is false.
func (h *Handler) Flatten(c *gin.Context) {
	var req FlattenRequest
	if !bind(c, &req) {
		return
	}
	sorted := req.Sorted == nil || *req.Sorted
	out := h.svc.Flatten(c.Request.Context(), req.Entries, sorted)
	server.RespondOK(c, LinesResponse{Values: out, Count: len(out)})
}

// Operations lists the resolvable operation names.
func (h *Handler) Operations(c *gin.Context) {
	names := h.svc.Operations()
	server.RespondOK(c, LinesResponse{Values: names, Count: len(names)})
}
