package http

import (
	"github.com/gin-gonic/gin"

	"quote-service/pkg/outcome"
	"quote-service/pkg/response"
)

// Create godoc
// @Summary     Create a new quote
// @Description Stores a new quote with the provided author and content.
// @Tags        Quote
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Quote data"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Problem "Bad Request"
// @Failure     409 {object} response.Problem "Conflict - identical quote exists"
// @Failure     500 {object} response.Problem "Internal Server Error"
// @Router      /api/v1/quotes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.WriteProblem(c, response.NewProblem(errMalformedRequest(err)))
		return
	}

	out := h.create(ctx, req.toInput())
	if !out.Succeeded() {
		h.l.Warnf(ctx, "quote.Create failed: %s", out.Err().Code)
		response.Fail(c, out.Outcome)
		return
	}

	response.Created(c, h.newCreateResp(out.Value()))
}

// List godoc
// @Summary     List quotes
// @Description Returns one page of quotes ordered by id.
// @Tags        Quote
// @Accept      json
// @Produce     json
// @Param       page_number query int false "Page number (default: 1)"
// @Param       page_size   query int false "Page size (default: 10, max: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Problem "Bad Request"
// @Failure     500 {object} response.Problem "Internal Server Error"
// @Router      /api/v1/quotes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.WriteProblem(c, response.NewProblem(errMalformedRequest(err)))
		return
	}

	out := h.list(ctx, req.toInput())
	if !out.Succeeded() {
		response.Fail(c, out.Outcome)
		return
	}

	response.OK(c, h.newListResp(out.Value()))
}

// Detail godoc
// @Summary     Get quote detail
// @Description Returns a single quote by its id.
// @Tags        Quote
// @Accept      json
// @Produce     json
// @Param       id path int true "Quote ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Problem "Bad Request"
// @Failure     404 {object} response.Problem "Not Found"
// @Failure     500 {object} response.Problem "Internal Server Error"
// @Router      /api/v1/quotes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.WriteProblem(c, response.NewProblem(errMalformedRequest(err)))
		return
	}

	out := h.detail(ctx, id)
	if !out.Succeeded() {
		response.Fail(c, out.Outcome)
		return
	}

	response.OK(c, h.newDetailResp(out.Value()))
}

// Delete godoc
// @Summary     Delete a quote
// @Description Permanently removes a quote by id.
// @Tags        Quote
// @Accept      json
// @Produce     json
// @Param       id path int true "Quote ID"
// @Success     204 "No Content"
// @Failure     400 {object} response.Problem "Bad Request"
// @Failure     404 {object} response.Problem "Not Found"
// @Failure     500 {object} response.Problem "Internal Server Error"
// @Router      /api/v1/quotes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.WriteProblem(c, response.NewProblem(errMalformedRequest(err)))
		return
	}

	h.remove(ctx, id).Match(
		func() { response.NoContent(c) },
		func(e outcome.Error) { response.WriteProblem(c, response.NewProblem(e)) },
	)
}
