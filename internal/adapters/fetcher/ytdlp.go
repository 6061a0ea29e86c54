package fetcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"tokbot/internal/adapters/file"

	"github.com/rs/zerolog/log"
)

// YTDLP retrieves video media by shelling out to yt-dlp. The subprocess
// carries the CPU-bound extraction work, so the calling goroutine only
// blocks on I/O and other commands keep flowing.
type YTDLP struct {
	binary string
}

func NewYTDLP() (*YTDLP, error) {
	f := &YTDLP{}
	binaries := []string{"yt-dlp", "youtube-dl"}

	for _, binary := range binaries {
		_, err := exec.Command(binary, "--version").Output()
		if err != nil {
			log.Debug().Str("binary", binary).Msg("binary not found")
			continue
		}

		log.Debug().Str("binary", binary).Msg("binary found")
		f.binary = binary
		break
	}

	if f.binary == "" {
		return nil, errors.New("yt-dlp binary not available")
	}

	return f, nil
}

func (f *YTDLP) Fetch(ctx context.Context, url string) (string, error) {
	path, err := file.TempVideoPath()
	if err != nil {
		return "", fmt.Errorf("failed to create download path: %w", err)
	}

	cmd := exec.CommandContext(ctx, f.binary,
		"-f", "bestvideo+bestaudio/best",
		"--merge-output-format", "mp4",
		"-o", path,
		url)

	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Error().Err(err).Bytes("ytdlpOutput", out).Str("url", url).Msg("yt-dlp failed")
		// a cancelled or failed run may leave a partial file behind
		if _, statErr := os.Stat(path); statErr == nil {
			file.Remove(path)
		}
		return "", fmt.Errorf("failed to fetch video: %w", err)
	}

	// Extractors can exit cleanly without producing media.
	if _, err := os.Stat(path); err != nil {
		log.Debug().Str("url", url).Msg("no media produced")
		return "", nil
	}

	log.Debug().Str("url", url).Str("path", path).Msg("video fetched")

	return path, nil
}
