package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/domain"
	"github.com/nfrund/cbt/internal/middleware"
)

// Resource is a static file offered for download.
type Resource struct {
	// Path is the location inside the store.
	Path string
	// Filename is the name suggested to the browser.
	Filename    string
	ContentType string
}

// DefaultResources lists the downloads linked from the dashboard.
func DefaultResources() map[string]Resource {
	return map[string]Resource{
		"kisi-kisi.pdf": {Path: "kisi-kisi.pdf", Filename: "kisi-kisi.pdf", ContentType: "application/pdf"},
	}
}

// FileHandler serves allow-listed static resources as attachments.
type FileHandler struct {
	store     Store
	resources map[string]Resource
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(s Store, resources map[string]Resource) *FileHandler {
	return &FileHandler{
		store:     s,
		resources: resources,
	}
}

// DownloadURL returns the path the dashboard links to for a resource name.
func DownloadURL(name string) string {
	return "/downloads/" + name
}

// Download handles serving a file's content.
func (h *FileHandler) Download(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	name := c.Param("name")
	res, ok := h.resources[name]
	if !ok {
		return c.String(http.StatusNotFound, "File not found")
	}

	info, err := h.store.Stat(ctx, res.Path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Download resource missing from storage", slog.String("path", res.Path))
			return c.String(http.StatusNotFound, "File not found")
		}
		return fmt.Errorf("stat download %s: %w", res.Path, err)
	}

	reader, err := h.store.Open(ctx, res.Path)
	if err != nil {
		return fmt.Errorf("open download %s: %w", res.Path, err)
	}
	defer reader.Close()

	contentType := res.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
	c.Response().Header().Set(echo.HeaderContentLength, fmt.Sprintf("%d", info.Size()))
	return c.Stream(http.StatusOK, contentType, reader)
}
