package press

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sendikahub/core/internal/models"
	"github.com/sendikahub/core/internal/pkg/pagination"
	"github.com/sendikahub/core/internal/pkg/redis"
	"github.com/sendikahub/core/internal/pkg/response"
)

// Handler handles press coverage HTTP requests.
type Handler struct {
	svc   *Service
	redis *redis.Client
}

// NewHandler creates the press handler. The redis client may be nil, in which
// case view counting is not de-duplicated per visitor.
func NewHandler(svc *Service, rdb *redis.Client) *Handler {
	return &Handler{svc: svc, redis: rdb}
}

// RegisterRoutes mounts public and admin press routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/press")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("/:id/view", h.view)
	g.POST("/:id/share", h.share)

	admin := g.Group("", authMW)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

// list GET /press
func (h *Handler) list(c *gin.Context) {
	opts := ListOptions{
		Category: c.Query("category"),
		Type:     c.Query("type"),
	}
	items, meta, err := h.svc.List(c.Request.Context(), opts, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, meta)
}

// get GET /press/:id
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

// view POST /press/:id/view
//
// The frontend reports a read explicitly so list rendering does not
// inflate counters. One count per IP per day.
func (h *Handler) view(c *gin.Context) {
	item, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c)
		return
	}

	if h.freshHit(c, "press:view", item.ID.Hex()) {
		h.svc.IncrementViews(c.Request.Context(), item.ID)
		item.Views++
	}
	response.OK(c, gin.H{"views": item.Views})
}

// share POST /press/:id/share
func (h *Handler) share(c *gin.Context) {
	item, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c)
		return
	}

	h.svc.IncrementShares(c.Request.Context(), item.ID)
	response.OK(c, gin.H{"shares": item.Shares + 1})
}

// create POST /press  [auth]
func (h *Handler) create(c *gin.Context) {
	var item models.PressItem
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

// update PUT /press/:id  [auth]
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

// delete DELETE /press/:id  [auth]
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

func (h *Handler) freshHit(c *gin.Context, kind, id string) bool {
	if h.redis == nil {
		return true
	}
	key := fmt.Sprintf("sendika:%s:%s:%s:%s",
		kind, time.Now().Format("2006-01-02"), id, c.ClientIP())
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()
	fresh, err := h.redis.SetNXDaily(ctx, key)
	if err != nil {
		return true
	}
	return fresh
}

func writeServiceError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, ErrDuplicate):
		response.Conflict(c, err.Error())
	case errors.As(err, &verr):
		response.UnprocessableEntity(c, verr.Error())
	default:
		response.InternalError(c, err)
	}
}
