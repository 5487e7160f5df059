package slugify

import "github.com/gosimple/slug"

const maxLen = 120

// Make derives the URL-safe school slug from a display name.
func Make(name string) string {
	s := slug.Make(name)
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}
