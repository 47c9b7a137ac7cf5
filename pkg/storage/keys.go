package storage

import (
	"bytes"
	"errors"
	"path"
	"strings"

	"github.com/google/uuid"
)

const pdfContentType = "application/pdf"

var (
	errInvalidKey = errors.New("storage: invalid key")
	errNotPDF     = errors.New("storage: content is not a PDF")
)

var pdfMagic = []byte("%PDF-")

// checkPDF verifies the magic bytes so only rendered PDFs reach the bucket.
func checkPDF(data []byte) error {
	if !bytes.HasPrefix(data, pdfMagic) {
		return errNotPDF
	}
	return nil
}

// sanitizeSegment keeps a single path segment free of separators and traversal.
func sanitizeSegment(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "..") {
		return "", errInvalidKey
	}
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	if s == "" {
		return "", errInvalidKey
	}
	return s, nil
}

// newStorageID builds "<folder>/<uuid>_<file>" so repeated uploads never collide.
func newStorageID(folderKey, fileName string) (string, error) {
	folder, err := sanitizeSegment(folderKey)
	if err != nil {
		return "", err
	}
	name, err := sanitizeSegment(fileName)
	if err != nil {
		return "", err
	}
	return path.Join(folder, uuid.NewString()+"_"+name), nil
}

// validStorageID rejects absolute or escaping ids before they reach a backend.
func validStorageID(id string) bool {
	if id == "" || strings.HasPrefix(id, "/") || strings.Contains(id, "..") || strings.Contains(id, "\\") {
		return false
	}
	return true
}

func applyPrefix(prefix, key string) string {
	cleanPrefix := strings.Trim(prefix, "/")
	cleanKey := strings.TrimLeft(key, "/")
	if cleanPrefix == "" {
		return cleanKey
	}
	if cleanKey == "" {
		return cleanPrefix
	}
	return cleanPrefix + "/" + cleanKey
}
