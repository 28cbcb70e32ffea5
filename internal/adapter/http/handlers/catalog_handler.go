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

// CatalogHandler manages problem types.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) List(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	list, err := h.usecase.ListProblemTypes(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProblemTypes(list))
}

func (h *CatalogHandler) Create(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	var payload request.ProblemTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	pt, err := h.usecase.CreateProblemType(c.Request.Context(), p, payload.ToEntity(""))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProblemType(pt))
}

func (h *CatalogHandler) Update(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	var payload request.ProblemTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	pt, err := h.usecase.UpdateProblemType(c.Request.Context(), p, payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProblemType(pt))
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	if err := h.usecase.DeleteProblemType(c.Request.Context(), p, c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProblemType), errors.Is(err, usecase.ErrInvalidProblemTypeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrManagerRequired):
		return errForbidden
	}
	if appErr := mapLifecycleError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
