package handlers

import (
	"errors"
	"net/http"

	request "depannel_dispatch/internal/adapter/http/dto/request"
	response "depannel_dispatch/internal/adapter/http/dto/response"
	"depannel_dispatch/internal/usecase"
	"depannel_dispatch/pkg"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) List(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	quotes, err := h.usecase.ListByIntervention(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) Create(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput(c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), p, in)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *QuoteHandler) Update(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	var payload request.QuoteUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput(payload.InterventionID.String())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	q, err := h.usecase.Update(c.Request.Context(), p, c.Param("id"), in)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	if err := h.usecase.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInterventionID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteItem):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_ITEM", "Quote items need a name, a positive quantity and a non-negative unit price", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidValidUntil), errors.Is(err, request.ErrInvalidValidUntil):
		return pkg.NewDomainErrorSimple("INVALID_VALID_UNTIL", "valid_until must be a future date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	}
	if appErr := mapLifecycleError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
