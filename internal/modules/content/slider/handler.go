package slider

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sendikahub/core/internal/middleware"
	"github.com/sendikahub/core/internal/models"
	"github.com/sendikahub/core/internal/pkg/response"
)

// Handler handles homepage slider HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts public and admin slider routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/sliders")
	g.GET("", h.list)

	admin := g.Group("", authMW)
	admin.POST("", h.create)
	admin.PUT("/reorder", h.reorder)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

// list GET /sliders
//
// Anonymous visitors only see active slides.
func (h *Handler) list(c *gin.Context) {
	activeOnly := !middleware.IsAuthenticated(c)
	items, err := h.svc.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// create POST /sliders  [auth]
func (h *Handler) create(c *gin.Context) {
	var item models.Slider
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.Create(c.Request.Context(), &item); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, item)
}

type reorderDTO struct {
	IDs []string `json:"ids" binding:"required"`
}

// reorder PUT /sliders/reorder  [auth]
func (h *Handler) reorder(c *gin.Context) {
	var dto reorderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.Reorder(c.Request.Context(), dto.IDs); err != nil {
		response.InternalError(c, err)
		return
	}

	items, err := h.svc.List(c.Request.Context(), false)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// update PUT /sliders/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if updated == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, updated)
}

// delete DELETE /sliders/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}

func writeServiceError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		response.UnprocessableEntity(c, verr.Error())
		return
	}
	response.InternalError(c, err)
}
