package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// TempVideoPath returns a fresh download target in the OS temp directory.
// Paths are unique per call so concurrent downloads can never collide or
// delete each other's files.
func TempVideoPath() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	return filepath.Join(os.TempDir(), fmt.Sprintf("tokbot-%s.mp4", id.String())), nil
}

// Remove deletes a temporary file at the given path and logs success or failure.
func Remove(path string) {
	err := os.Remove(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up temp file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up temp file")
}
