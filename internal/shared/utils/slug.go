package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid   = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens   = regexp.MustCompile(`-+`)
	folderInvalid = regexp.MustCompile(`[^a-z0-9_/-]+`)
	folderSlashes = regexp.MustCompile(`/+`)
)

// DefaultUploadFolder is used when a folder sanitises to nothing
const DefaultUploadFolder = "uploads"

// GenerateSlug turns a display name into a url-safe id.
// "Growth Plan (Pro)" → "growth-plan-pro"
func GenerateSlug(input string) string {
	// Step 1: Lowercase
	lower := strings.ToLower(strings.TrimSpace(input))

	// Step 2: Whitespace and underscores become hyphens
	hyphenated := strings.NewReplacer(" ", "-", "_", "-", "\t", "-").Replace(lower)

	// Step 3: Keep only a-z, 0-9, hyphens
	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")

	// Step 4: Collapse and trim hyphens
	return strings.Trim(slugHyphens.ReplaceAllString(cleaned, "-"), "-")
}

// SanitizeFolder normalises a caller supplied storage folder.
// Only [a-z0-9-_/] survive, ".." segments are dropped, slashes are collapsed
// and trimmed. An empty result falls back to DefaultUploadFolder.
func SanitizeFolder(folder string) string {
	lower := strings.ToLower(strings.TrimSpace(folder))
	lower = strings.ReplaceAll(lower, "\\", "/")

	segments := strings.Split(lower, "/")
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		seg = folderInvalid.ReplaceAllString(seg, "")
		if seg == "" {
			continue
		}
		kept = append(kept, seg)
	}

	cleaned := folderSlashes.ReplaceAllString(strings.Join(kept, "/"), "/")
	cleaned = strings.Trim(cleaned, "/")
	if cleaned == "" {
		return DefaultUploadFolder
	}
	return cleaned
}
