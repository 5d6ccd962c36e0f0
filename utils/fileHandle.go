package utils

import (
	"io"
	"os"
	"path/filepath"

	"learnhub/config"
)

// SaveLocalFile writes an upload to the local upload directory under the
// given key. Used as the fallback when the object store is not configured.
func SaveLocalFile(key string, src io.Reader) (string, error) {
	destPath := filepath.Join(config.AppConfig.UploadDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return LocalFileURL(key), nil
}

// LocalFileURL maps an upload key to the path the static file server exposes
func LocalFileURL(key string) string {
	if key == "" {
		return ""
	}
	return "/uploads/" + key
}
