package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tokbot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tempVideo(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "video.mp4")
	require.NoError(t, os.WriteFile(path, []byte("media"), 0o600))

	return path
}

func TestDeliverer_Deliver(t *testing.T) {
	ref := domain.VideoReference{URL: "https://tiktok.com/@alice/video/123", Owner: "alice"}

	tests := []struct {
		name       string
		fetchErr   error
		noMedia    bool
		uploadErr  error
		textErr    error
		wantStatus domain.DeliveryStatus
	}{
		{
			name:       "full success",
			wantStatus: domain.Delivered,
		},
		{
			name:       "fetch failure",
			fetchErr:   errors.New("extractor exploded"),
			wantStatus: domain.Failed,
		},
		{
			name:       "no media produced",
			noMedia:    true,
			wantStatus: domain.Empty,
		},
		{
			name:       "upload failure",
			uploadErr:  errors.New("transport down"),
			wantStatus: domain.Failed,
		},
		{
			name:       "follow-up message failure",
			textErr:    errors.New("transport down"),
			wantStatus: domain.Failed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var path string
			if !tc.noMedia && tc.fetchErr == nil {
				path = tempVideo(t)
			}

			fetcher := new(mockFetcher)
			fetcher.On("Fetch", mock.Anything, ref.URL).Return(path, tc.fetchErr)

			texts := new(mockSender)
			texts.On("SendChatAction", mock.Anything, int64(100), domain.UploadingVideo).Return()
			texts.On("SendText", mock.Anything, int64(100), mock.Anything,
				domain.SendOptions{Silent: true, NoPreview: true}).Return(tc.textErr)

			videos := new(mockVideoSender)
			videos.On("SendVideoFile", mock.Anything, int64(100), path, "video.mp4").Return(tc.uploadErr)

			outcome := NewDeliverer(fetcher, texts, videos).Deliver(t.Context(), 100, ref)

			assert.Equal(t, tc.wantStatus, outcome.Status)
			if tc.wantStatus == domain.Failed {
				assert.NotEmpty(t, outcome.Reason)
			}

			if path != "" {
				assert.NoFileExists(t, path, "temp file must be gone on every exit path")
			}

			texts.AssertCalled(t, "SendChatAction", mock.Anything, int64(100), domain.UploadingVideo)
		})
	}
}

func TestDeliverer_FollowUpOmitsUnknownOwner(t *testing.T) {
	path := tempVideo(t)
	ref := domain.VideoReference{URL: "https://tiktok.com/v/1"}

	fetcher := new(mockFetcher)
	fetcher.On("Fetch", mock.Anything, ref.URL).Return(path, nil)

	texts := new(mockSender)
	texts.On("SendChatAction", mock.Anything, mock.Anything, mock.Anything).Return()
	texts.On("SendText", mock.Anything, int64(5), "link: https://tiktok.com/v/1",
		mock.Anything).Return(nil)

	videos := new(mockVideoSender)
	videos.On("SendVideoFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	outcome := NewDeliverer(fetcher, texts, videos).Deliver(t.Context(), 5, ref)

	assert.Equal(t, domain.Delivered, outcome.Status)
	texts.AssertExpectations(t)
}
