package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// uncompressedPaths are served as is. promhttp negotiates its own gzip.
var uncompressedPaths = []string{"/metrics", "/healthz", "/readyz"}

// Compression gzips API responses such as package and item listings for clients that accept it.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(uncompressedPaths))
}
