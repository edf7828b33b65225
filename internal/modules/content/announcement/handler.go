package announcement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sendikahub/core/internal/middleware"
	"github.com/sendikahub/core/internal/models"
	"github.com/sendikahub/core/internal/modules/render"
	"github.com/sendikahub/core/internal/pkg/pagination"
	"github.com/sendikahub/core/internal/pkg/redis"
	"github.com/sendikahub/core/internal/pkg/response"
)

// Handler handles announcement HTTP requests.
type Handler struct {
	svc   *Service
	redis *redis.Client
}

// NewHandler creates the announcement handler. The redis client may be nil,
// in which case view counting is not de-duplicated per visitor.
func NewHandler(svc *Service, rdb *redis.Client) *Handler {
	return &Handler{svc: svc, redis: rdb}
}

// RegisterRoutes mounts public and admin announcement routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/announcements")
	g.GET("", h.list)
	g.GET("/:slug", h.getBySlug)

	admin := g.Group("", authMW)
	admin.POST("", h.create)
	admin.PUT("/:slug", h.update)
	admin.DELETE("/:slug", h.delete)
}

// list GET /announcements
func (h *Handler) list(c *gin.Context) {
	opts := ListOptions{
		Category:   c.Query("category"),
		Tag:        c.Query("tag"),
		Featured:   boolQuery(c, "featured"),
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

// detail is the single-announcement payload with rendered markdown.
type detail struct {
	*models.Announcement
	ContentHTML string `json:"content_html"`
}

// getBySlug GET /announcements/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	item, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	authed := middleware.IsAuthenticated(c)
	if item == nil || (!authed && item.Status != models.StatusPublished) {
		response.NotFound(c)
		return
	}

	if !authed && h.shouldCountView(c, "announcement", item.ID.Hex()) {
		h.svc.IncrementViews(c.Request.Context(), item.ID)
		item.Views++
	}

	response.OK(c, detail{Announcement: item, ContentHTML: render.Markdown(item.Content)})
}

// create POST /announcements  [auth]
func (h *Handler) create(c *gin.Context) {
	var item models.Announcement
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

// update PUT /announcements/:slug  [auth]
func (h *Handler) update(c *gin.Context) {
	existing, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if existing == nil {
		response.NotFound(c)
		return
	}

	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), existing.ID.Hex(), in)
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

// delete DELETE /announcements/:slug  [auth]
func (h *Handler) delete(c *gin.Context) {
	existing, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if existing == nil {
		response.NotFound(c)
		return
	}

	if _, err := h.svc.Delete(c.Request.Context(), existing.ID.Hex()); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// shouldCountView reports whether this visitor's view should increment the
// counter. A redis NX key de-duplicates one view per IP per day.
func (h *Handler) shouldCountView(c *gin.Context, kind, id string) bool {
	if h.redis == nil {
		return true
	}
	key := fmt.Sprintf("sendika:view:%s:%s:%s:%s",
		kind, time.Now().Format("2006-01-02"), id, c.ClientIP())
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()
	fresh, err := h.redis.SetNXDaily(ctx, key)
	if err != nil {
		// Counting is best-effort; never fail the read over redis trouble.
		return true
	}
	return fresh
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

func boolQuery(c *gin.Context, name string) *bool {
	switch c.Query(name) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}
