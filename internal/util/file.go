package util

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
)

// Extensions accepted for uploaded notes.
var allowedNoteExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".ppt":  true,
	".pptx": true,
	".zip":  true,
}

func IsAllowedNoteFile(filename string) bool {
	return allowedNoteExtensions[strings.ToLower(filepath.Ext(filename))]
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips directory components and collapses anything outside
// [A-Za-z0-9._-] so the name is safe as a storage key segment.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	if name == "" || name == "." || name == ".." {
		return "file"
	}
	return name
}

// ValidateMimeType sniffs the first 512 bytes and checks the detected MIME
// type against a list of allowed prefixes or exact types.
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}
