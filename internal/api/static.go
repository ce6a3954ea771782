package api

import (
	"embed"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// SetupStaticRoutes sets up routes for serving the widget SDK and admin UI.
func SetupStaticRoutes(r *gin.Engine) {
	r.GET("/widget.js", func(c *gin.Context) {
		c.Header("Content-Type", "application/javascript")
		c.FileFromFS("static/widget.js", http.FS(staticFS))
	})

	// Single catch-all for the admin panel
	r.GET("/admin/*filepath", func(c *gin.Context) {
		path := strings.TrimPrefix(c.Param("filepath"), "/")
		if path == "" {
			path = "index.html"
		}
		serveAdminFile(c, path)
	})
}

func serveAdminFile(c *gin.Context, filename string) {
	file, err := staticFS.Open("static/admin/" + filename)
	if err != nil {
		c.String(http.StatusNotFound, "File not found")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to read file")
		return
	}

	contentType := "text/html; charset=utf-8"
	if strings.HasSuffix(filename, ".js") {
		contentType = "application/javascript"
	} else if strings.HasSuffix(filename, ".css") {
		contentType = "text/css"
	}

	c.Data(http.StatusOK, contentType, content)
}
