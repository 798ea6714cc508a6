package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unwraps gzip-encoded request bodies so handlers always
// bind plain JSON. Bodies that claim gzip but fail to decode are rejected
// with 400.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		body := c.Request.Body
		zr, err := gzip.NewReader(body)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer zr.Close()
		defer body.Close()

		c.Request.Body = io.NopCloser(zr)
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
