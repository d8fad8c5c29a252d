package uploader

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
)

var titleWhitespace = regexp.MustCompile(`\s+`)

// IsArchive reports whether the file is already a compressed bundle and
// should be uploaded as-is.
func IsArchive(name, contentType string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(name)))
	if ext == ".zip" || ext == ".rar" {
		return true
	}
	return strings.Contains(strings.ToLower(contentType), "zip")
}

// ArchiveName derives the zip name from the project title, whitespace
// collapsed to underscores.
func ArchiveName(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "project"
	}
	return titleWhitespace.ReplaceAllString(title, "_") + ".zip"
}

// PackageFile wraps a loose simulation file into a single-entry zip named
// after the project. Files that are already archives pass through unchanged.
func PackageFile(title, name string, data []byte, contentType string) (string, []byte, error) {
	if IsArchive(name, contentType) {
		return filepath.Base(name), data, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create(filepath.Base(name))
	if err != nil {
		return "", nil, err
	}
	if _, err := entry.Write(data); err != nil {
		return "", nil, err
	}
	if err := zw.Close(); err != nil {
		return "", nil, err
	}
	return ArchiveName(title), buf.Bytes(), nil
}
