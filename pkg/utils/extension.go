package utils

import (
	"sort"
	"strings"
)

// extensionKinds maps every file extension accepted for memory media to
// its media kind.
var extensionKinds = map[string]string{
	"jpg":  "image",
	"jpeg": "image",
	"png":  "image",
	"mp4":  "video",
	"webm": "video",
	"mp3":  "audio",
	"wav":  "audio",
}

// FileExtension returns the lowercased extension of name without the
// leading dot, or "" when name has none.
func FileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}

	return strings.ToLower(name[idx+1:])
}

// ExtensionAllowed reports whether ext is accepted for upload.
func ExtensionAllowed(ext string) bool {
	_, ok := extensionKinds[ext]

	return ok
}

// AllowedExtensions returns the accepted extensions in stable order, for
// use in error messages.
func AllowedExtensions() []string {
	exts := make([]string, 0, len(extensionKinds))
	for ext := range extensionKinds {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	return exts
}
