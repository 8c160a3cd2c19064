package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const loadPageFailedMessage = "Error loading page"

// PageHandler serves the static front end.
type PageHandler struct {
	staticDir string
}

// NewPageHandler creates a handler rooted at staticDir.
func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

// Index serves index.html from the static directory.
func (h *PageHandler) Index(c *gin.Context) {
	body, err := os.ReadFile(filepath.Join(h.staticDir, "index.html"))
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, loadPageFailedMessage)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// Static serves unmatched GET and HEAD requests from the static directory
// and answers 404 otherwise.
func (h *PageHandler) Static(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	path, ok := h.resolve(c.Request.URL.Path)
	if !ok {
		c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	c.File(path)
}

// resolve maps a request path to a regular file inside the static directory.
func (h *PageHandler) resolve(requestPath string) (string, bool) {
	if h.staticDir == "" || strings.Contains(requestPath, "\x00") {
		return "", false
	}
	cleaned := filepath.Clean("/" + requestPath)
	if cleaned == "/" {
		return "", false
	}

	root, err := filepath.Abs(h.staticDir)
	if err != nil {
		return "", false
	}
	full := filepath.Join(root, filepath.FromSlash(cleaned))
	if !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", false
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	return full, true
}
