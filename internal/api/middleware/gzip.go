package middleware

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
)

// GzipConfig defines response compression options.
type GzipConfig struct {
	Level int
	// ExcludedPaths are served uncompressed (e.g. /metrics compresses itself)
	ExcludedPaths []string
}

// DefaultGzipConfig returns the default compression configuration.
func DefaultGzipConfig() GzipConfig {
	return GzipConfig{
		Level:         gzip.DefaultCompression,
		ExcludedPaths: []string{"/metrics", "/stream"},
	}
}

type gzipWriter struct {
	gin.ResponseWriter
	gz      *gzip.Writer
	started bool
}

func (w *gzipWriter) start() {
	if w.started {
		return
	}
	w.started = true
	h := w.Header()
	h.Set("Content-Encoding", "gzip")
	h.Add("Vary", "Accept-Encoding")
	h.Del("Content-Length")
}

func (w *gzipWriter) Write(b []byte) (int, error) {
	w.start()
	return w.gz.Write(b)
}

func (w *gzipWriter) WriteString(s string) (int, error) {
	w.start()
	return w.gz.Write([]byte(s))
}

// Gzip compresses responses for clients that accept gzip.
func Gzip(cfg GzipConfig) gin.HandlerFunc {
	pool := sync.Pool{
		New: func() interface{} {
			gz, err := gzip.NewWriterLevel(nil, cfg.Level)
			if err != nil {
				gz = gzip.NewWriter(nil)
			}
			return gz
		},
	}

	return func(c *gin.Context) {
		if !shouldCompress(c.Request, cfg.ExcludedPaths) {
			c.Next()
			return
		}

		gz := pool.Get().(*gzip.Writer)
		gz.Reset(c.Writer)
		w := &gzipWriter{ResponseWriter: c.Writer, gz: gz}
		c.Writer = w

		defer func() {
			if w.started {
				_ = gz.Close()
			}
			gz.Reset(io.Discard)
			pool.Put(gz)
		}()

		c.Next()
	}
}

func shouldCompress(r *http.Request, excluded []string) bool {
	if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		return false
	}
	if strings.EqualFold(r.Header.Get("Connection"), "upgrade") || r.Header.Get("Upgrade") != "" {
		return false
	}
	for _, p := range excluded {
		if r.URL.Path == p || strings.HasPrefix(r.URL.Path, p+"/") {
			return false
		}
	}
	return true
}
