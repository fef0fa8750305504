// Package video drives the ffmpeg-based video pipeline: upload validation,
// scene-change frame extraction and duration probing.
package video

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"dpq/pkg/logger"
	"dpq/pkg/serrors"
)

// DefaultSceneThreshold is the scene-change threshold used when none is
// configured.
const DefaultSceneThreshold = 0.10

// MaxUploadSize is the upload size ceiling in bytes.
const MaxUploadSize = 100 * 1024 * 1024

// allowedExtensions are the accepted upload container formats.
var allowedExtensions = map[string]struct{}{
	".mp4": {},
	".avi": {},
	".mov": {},
	".mkv": {},
	".wmv": {},
	".flv": {},
}

// ValidateUpload checks the client-provided file name, content type and size
// before any bytes are stored. Only video/* content types are accepted.
func ValidateUpload(filename, contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "video/") {
		return serrors.With(serrors.ErrBadRequest, "file must be a video, got content type %q", contentType)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return serrors.With(serrors.ErrBadRequest, "unsupported video format: %q", ext)
	}
	if size <= 0 {
		return serrors.With(serrors.ErrBadRequest, "empty video upload")
	}
	if size > MaxUploadSize {
		return serrors.With(serrors.ErrBadRequest,
			"video too large: %d bytes (max %d)", size, MaxUploadSize)
	}

	return nil
}

// Frame is one extracted scene-change frame.
type Frame struct {
	// Timestamp is the frame's position in the video, in seconds.
	Timestamp float64
	// Path is the JPEG file on disk.
	Path string
}

// Pipeline shells out to ffmpeg and ffprobe.
type Pipeline struct {
	ffmpegPath     string
	ffprobePath    string
	sceneThreshold float64
}

// NewPipeline builds a Pipeline. Empty paths fall back to binaries on PATH,
// a non-positive threshold falls back to DefaultSceneThreshold.
func NewPipeline(ffmpegPath, ffprobePath string, sceneThreshold float64) *Pipeline {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	if sceneThreshold <= 0 {
		sceneThreshold = DefaultSceneThreshold
	}
	if sceneThreshold > 1 {
		sceneThreshold = 1
	}

	return &Pipeline{
		ffmpegPath:     ffmpegPath,
		ffprobePath:    ffprobePath,
		sceneThreshold: sceneThreshold,
	}
}

var ptsTimePattern = regexp.MustCompile(`pts_time:(\d+\.\d+)`)

// parseTimestamps pulls the selected frame timestamps out of ffmpeg's
// showinfo stderr output, in order of appearance.
func parseTimestamps(stderr string) []float64 {
	matches := ptsTimePattern.FindAllStringSubmatch(stderr, -1)
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		ts, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		out = append(out, ts)
	}

	return out
}

// ExtractFrames runs ffmpeg's scene-change select filter over the video and
// writes one JPEG per selected frame into outputDir, named by timestamp
// (frame_<seconds>.jpg). At least one frame must come out.
func (p *Pipeline) ExtractFrames(ctx context.Context, videoPath, outputDir string) ([]Frame, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "creating frames directory")
	}

	cmd := exec.CommandContext(ctx, p.ffmpegPath,
		"-i", videoPath,
		"-vf", fmt.Sprintf(`select=gt(scene\,%.3f),showinfo`, p.sceneThreshold),
		"-vsync", "vfr",
		filepath.Join(outputDir, "frame_%06d.jpg"),
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// ffmpeg logs showinfo to stderr even on success; a non-zero exit is the
	// only failure signal.
	if err := cmd.Run(); err != nil {
		logger.Error(ctx, "ffmpeg frame extraction failed",
			zap.Error(err), zap.String("stderr", tail(stderr.String(), 2048)))

		return nil, serrors.Wrap(serrors.ErrInternal, err, "running ffmpeg")
	}

	timestamps := parseTimestamps(stderr.String())
	frames := make([]Frame, 0, len(timestamps))
	for i, ts := range timestamps {
		old := filepath.Join(outputDir, fmt.Sprintf("frame_%06d.jpg", i+1))
		renamed := filepath.Join(outputDir, fmt.Sprintf("frame_%.2f.jpg", ts))
		if err := os.Rename(old, renamed); err != nil {
			// ffmpeg may emit fewer files than showinfo lines at the tail.
			continue
		}
		frames = append(frames, Frame{Timestamp: ts, Path: renamed})
	}
	if len(frames) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "no frames were extracted from the video")
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].Timestamp < frames[j].Timestamp })

	logger.Info(ctx, "extracted scene-change frames",
		zap.Int("frames", len(frames)), zap.Float64("threshold", p.sceneThreshold))

	return frames, nil
}

// Duration probes the video duration in seconds.
func (p *Pipeline) Duration(ctx context.Context, videoPath string) (float64, error) {
	cmd := exec.CommandContext(ctx, p.ffprobePath,
		"-v", "quiet",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		videoPath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrInternal, err, "running ffprobe")
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrInternal, err, "parsing ffprobe duration")
	}

	return duration, nil
}

// Cleanup removes an extraction directory, logging rather than failing on
// error.
func Cleanup(ctx context.Context, framesDir string) {
	if framesDir == "" {
		return
	}
	if err := os.RemoveAll(framesDir); err != nil {
		logger.Warn(ctx, "cleaning up frames directory",
			zap.String("dir", framesDir), zap.Error(err))
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[len(s)-n:]
}
