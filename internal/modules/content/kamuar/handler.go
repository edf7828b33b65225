package kamuar

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sendikahub/core/internal/middleware"
	"github.com/sendikahub/core/internal/models"
	"github.com/sendikahub/core/internal/modules/render"
	"github.com/sendikahub/core/internal/pkg/pagination"
	"github.com/sendikahub/core/internal/pkg/response"
)

// Handler handles Kamu-Ar article HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts public and admin article routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/kamu-ar")
	g.GET("", h.list)
	g.GET("/:slug", h.getBySlug)

	admin := g.Group("", authMW)
	admin.POST("", h.create)
	admin.PUT("/:slug", h.update)
	admin.DELETE("/:slug", h.delete)
}

// list GET /kamu-ar
func (h *Handler) list(c *gin.Context) {
	opts := ListOptions{
		Tag:        c.Query("tag"),
		PublicOnly: !middleware.IsAuthenticated(c),
	}
	if !opts.PublicOnly {
		opts.Status = c.Query("status")
	}

	items, meta, err := h.svc.List(c.Request.Context(), opts, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, meta)
}

type detail struct {
	*models.KamuArItem
	ContentHTML string `json:"content_html"`
}

// getBySlug GET /kamu-ar/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	item, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil || (!middleware.IsAuthenticated(c) && item.Status != models.StatusPublished) {
		response.NotFound(c)
		return
	}
	response.OK(c, detail{KamuArItem: item, ContentHTML: render.Markdown(item.Content)})
}

// create POST /kamu-ar  [auth]
func (h *Handler) create(c *gin.Context) {
	var item models.KamuArItem
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

// update PUT /kamu-ar/:slug  [auth]
func (h *Handler) update(c *gin.Context) {
	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), c.Param("slug"), in)
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

// delete DELETE /kamu-ar/:slug  [auth]
func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("slug"))
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
	case errors.Is(err, ErrSlugTaken):
		response.Conflict(c, err.Error())
	case errors.As(err, &verr):
		response.UnprocessableEntity(c, verr.Error())
	default:
		response.InternalError(c, err)
	}
}
