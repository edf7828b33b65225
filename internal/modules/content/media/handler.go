package media

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sendikahub/core/internal/models"
	"github.com/sendikahub/core/internal/pkg/pagination"
	"github.com/sendikahub/core/internal/pkg/response"
)

// Handler handles media gallery HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts public and admin gallery routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/gallery")
	g.GET("", h.list)
	g.GET("/:id", h.get)

	admin := g.Group("", authMW)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

// list GET /gallery
func (h *Handler) list(c *gin.Context) {
	opts := ListOptions{
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Tag:      c.Query("tag"),
	}
	items, meta, err := h.svc.List(c.Request.Context(), opts, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, meta)
}

// get GET /gallery/:id
func (h *Handler) get(c *gin.Context) {
	item, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, item)
}

// create POST /gallery  [auth]
func (h *Handler) create(c *gin.Context) {
	var item models.Media
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

// update PUT /gallery/:id  [auth]
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

// delete DELETE /gallery/:id  [auth]
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
	switch {
	case errors.Is(err, ErrURLTaken):
		response.Conflict(c, err.Error())
	case errors.As(err, &verr):
		response.UnprocessableEntity(c, verr.Error())
	default:
		response.InternalError(c, err)
	}
}
