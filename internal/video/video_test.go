package video

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dpq/pkg/serrors"
)

func TestValidateUpload(t *testing.T) {
	require.NoError(t, ValidateUpload("buddy.mp4", "video/mp4", 1024))
	require.NoError(t, ValidateUpload("BUDDY.MOV", "video/quicktime", MaxUploadSize))

	cases := []struct {
		name        string
		filename    string
		contentType string
		size        int64
	}{
		{"non-video content type", "buddy.mp4", "text/plain", 1024},
		{"image content type", "buddy.mp4", "image/png", 1024},
		{"empty content type", "buddy.mp4", "", 1024},
		{"unsupported extension", "buddy.gif", "video/mp4", 1024},
		{"no extension", "buddy", "video/mp4", 1024},
		{"empty file", "buddy.mp4", "video/mp4", 0},
		{"too large", "buddy.mp4", "video/mp4", MaxUploadSize + 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.ErrorIs(t, ValidateUpload(c.filename, c.contentType, c.size), serrors.ErrBadRequest)
		})
	}
}

func TestParseTimestamps(t *testing.T) {
	stderr := `[Parsed_showinfo_1 @ 0x55] n:   0 pts:   1001 pts_time:1.001   duration...
[Parsed_showinfo_1 @ 0x55] n:   1 pts:   2502 pts_time:2.502   duration...
frame=    2 fps=0.0 q=3.1
[Parsed_showinfo_1 @ 0x55] n:   2 pts:  10010 pts_time:10.01   duration...`

	require.Equal(t, []float64{1.001, 2.502, 10.01}, parseTimestamps(stderr))
	require.Empty(t, parseTimestamps("frame=    0 fps=0.0"))
}

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("", "", 0)
	require.Equal(t, "ffmpeg", p.ffmpegPath)
	require.Equal(t, "ffprobe", p.ffprobePath)
	require.Equal(t, DefaultSceneThreshold, p.sceneThreshold)

	clamped := NewPipeline("/opt/ffmpeg", "/opt/ffprobe", 3.0)
	require.Equal(t, 1.0, clamped.sceneThreshold)
}
