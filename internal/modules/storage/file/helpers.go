package file

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// buildFileName prefixes the upload time in milliseconds and collapses
// whitespace so the stored name is shell and URL safe.
func buildFileName(original string) string {
	name := filepath.Base(strings.TrimSpace(original))
	if name == "" || name == "." {
		name = "file"
	}
	name = whitespacePattern.ReplaceAllString(name, "_")
	name = sanitizeName(name)
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), name)
}

// sanitizeName strips everything outside alphanumerics, dots, hyphens and
// underscores.
func sanitizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

// objectKey places uploads under a per-kind prefix.
func objectKey(name, contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return "project-images/" + name
	}
	return "project-files/" + name
}

// detectContentType sniffs the MIME type from the fallback header, extension,
// or raw payload bytes, in that priority order.
func detectContentType(filename string, payload []byte, fallback string) string {
	contentType := strings.TrimSpace(fallback)
	if contentType != "" {
		return contentType
	}
	if ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename))); ext != "" {
		if guessed := mime.TypeByExtension(ext); guessed != "" {
			return guessed
		}
	}
	if len(payload) > 0 {
		return http.DetectContentType(payload)
	}
	return "application/octet-stream"
}
