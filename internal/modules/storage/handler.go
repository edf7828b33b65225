// Package storage serves uploaded files: local disk is authoritative, an
// S3-compatible bucket can mirror uploads for CDN delivery.
package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sendikahub/core/internal/pkg/response"
	"go.uber.org/zap"
)

// allowed upload categories, each a subdirectory of the static dir
var uploadTypes = map[string]bool{
	"image":    true,
	"document": true,
	"file":     true,
}

// Handler handles file upload and serving HTTP requests.
type Handler struct {
	staticDir string
	s3        *S3Uploader
	log       *zap.Logger
}

// NewHandler creates the storage handler. The S3 uploader may be nil, in
// which case uploads are local-only.
func NewHandler(staticDir string, s3 *S3Uploader, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{staticDir: staticDir, s3: s3, log: log}
}

// RegisterRoutes mounts upload and file-serving routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/files")
	g.GET("/:type/:name", h.get)

	g.POST("/upload", authMW, h.upload)
	g.GET("/:type", authMW, h.listByType)
	g.DELETE("/:type/:name", authMW, h.delete)
}

// get GET /files/:type/:name
func (h *Handler) get(c *gin.Context) {
	typ := normalizeType(c.Param("type"))
	name := safeName(c.Param("name"))
	if typ == "" || name == "" {
		response.NotFound(c)
		return
	}

	path := filepath.Join(h.staticDir, typ, name)
	if _, err := os.Stat(path); err != nil {
		response.NotFound(c)
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000")
	c.File(path)
}

// listByType GET /files/:type  [auth]
func (h *Handler) listByType(c *gin.Context) {
	typ := normalizeType(c.Param("type"))
	if typ == "" {
		response.BadRequest(c, "invalid file type")
		return
	}

	dir := filepath.Join(h.staticDir, typ)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			response.OK(c, []gin.H{})
			return
		}
		response.InternalError(c, err)
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		info, err := ent.Info()
		if err != nil {
			continue
		}
		items = append(items, gin.H{
			"name":    ent.Name(),
			"url":     "/files/" + typ + "/" + ent.Name(),
			"size":    info.Size(),
			"created": info.ModTime().UnixMilli(),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i]["created"].(int64) > items[j]["created"].(int64)
	})
	response.OK(c, items)
}

// upload POST /files/upload?type=image  [auth]
func (h *Handler) upload(c *gin.Context) {
	typ := normalizeType(c.DefaultQuery("type", "file"))
	if typ == "" {
		response.BadRequest(c, "invalid file type")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	filename := buildFileName(fileHeader.Filename)
	dir := filepath.Join(h.staticDir, typ)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		response.InternalError(c, err)
		return
	}
	savePath := filepath.Join(dir, filename)
	if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
		response.InternalError(c, err)
		return
	}

	fileURL := "/files/" + typ + "/" + filename
	storageKind := "local"

	if h.s3 != nil {
		if s3URL, err := h.mirrorToS3(c, typ, filename, savePath, fileHeader.Header.Get("Content-Type")); err != nil {
			h.log.Warn("s3 mirror failed, keeping local copy",
				zap.String("file", filename), zap.Error(err))
		} else {
			fileURL = s3URL
			storageKind = "s3"
		}
	}

	response.Created(c, gin.H{
		"url":     fileURL,
		"name":    filename,
		"size":    fileHeader.Size,
		"storage": storageKind,
	})
}

func (h *Handler) mirrorToS3(c *gin.Context, typ, filename, path, contentType string) (string, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	key := typ + "/" + time.Now().Format("2006/01") + "/" + filename
	return h.s3.Upload(c.Request.Context(), key, payload, contentType)
}

// delete DELETE /files/:type/:name  [auth]
func (h *Handler) delete(c *gin.Context) {
	typ := normalizeType(c.Param("type"))
	name := safeName(c.Param("name"))
	if typ == "" || name == "" {
		response.BadRequest(c, "invalid path")
		return
	}

	path := filepath.Join(h.staticDir, typ, name)
	if _, err := os.Stat(path); err != nil {
		response.NotFound(c)
		return
	}
	if err := os.Remove(path); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func buildFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(original)))
	if ext == "" || len(ext) > 10 {
		ext = ".dat"
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:18] + ext
}

func normalizeType(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if !uploadTypes[raw] {
		return ""
	}
	return raw
}

// safeName rejects anything that could escape the static dir.
func safeName(raw string) string {
	name := filepath.Base(strings.TrimSpace(raw))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return ""
	}
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			continue
		}
		return ""
	}
	return name
}
