package services

import (
	"os"
	"path/filepath"
)

// logoCandidates are the filenames probed for the header image, in order.
var logoCandidates = []string{"ef.png", "logo.png"}

// FindLogo returns the path of the first logo candidate present in dir, or
// "" when none exists. Absence is not an error: the header simply renders
// without an image.
func FindLogo(dir string) string {
	for _, name := range logoCandidates {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
