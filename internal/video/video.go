// Package video drives ffmpeg: one segment per slide, then a single pass
// that joins the segments with transitions and lays the audio under them.
package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ivlev/deck2video/internal/config"
)

type VideoEncoder interface {
	EncodeSegment(ctx context.Context, img image.Image, videoPath string, params config.SegmentParams, filter string, cfg *config.Config) error
	Concatenate(ctx context.Context, segmentPaths []string, finalPath string, tmpDir string, cfg *config.Config) error
}

type FFmpegEncoder struct{}

// EncodeSegment pipes one raw RGBA frame into ffmpeg; the filter stretches
// it over the segment duration.
func (e *FFmpegEncoder) EncodeSegment(
	ctx context.Context,
	img image.Image,
	videoPath string,
	params config.SegmentParams,
	filter string,
	cfg *config.Config,
) error {
	inputW, inputH := img.Bounds().Dx(), img.Bounds().Dy()
	args := buildSegmentArgs(inputW, inputH, videoPath, params, filter, cfg.VideoEncoder, cfg.Quality)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe error: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start error: %w", err)
	}

	if err := writeRawRGBA(stdin, img); err != nil {
		stdin.Close()
		cmd.Wait()
		return fmt.Errorf("write raw error: %w", err)
	}
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg segment %s: %w\n%s", filepath.Base(videoPath), err, out.String())
	}
	return nil
}

func buildSegmentArgs(inputW, inputH int, videoPath string, params config.SegmentParams, filter, encoder string, quality int) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", inputW, inputH),
		"-i", "-",
		"-vf", filter,
		"-t", fmt.Sprintf("%f", params.Duration),
		"-r", fmt.Sprintf("%d", params.FPS),
		"-pix_fmt", "yuv420p",
		"-c:v", encoder,
	}
	args = append(args, qualityArgs(encoder, quality)...)
	return append(args, videoPath)
}

func qualityArgs(encoder string, quality int) []string {
	switch encoder {
	case "h264_videotoolbox":
		// VideoToolbox не везде понимает -q:v, задаем битрейт.
		return []string{"-b:v", fmt.Sprintf("%dk", quality*100)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

func writeRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}

// Concatenate joins the segments. Without transitions or audio the concat
// demuxer copies streams; otherwise a filter graph re-encodes once.
func (e *FFmpegEncoder) Concatenate(ctx context.Context, segmentPaths []string, finalPath string, tmpDir string, cfg *config.Config) error {
	if len(segmentPaths) == 0 {
		return fmt.Errorf("нет сегментов для сборки")
	}
	if err := os.MkdirAll(filepath.Dir(finalPath), 0755); err != nil {
		return err
	}

	var args []string
	if !cfg.HasTransitions() && cfg.AudioPath == "" {
		listPath := filepath.Join(tmpDir, "inputs.txt")
		if err := writeConcatList(listPath, segmentPaths); err != nil {
			return err
		}
		args = []string{"-y", "-f", "concat", "-safe", "0", "-i", listPath, "-c", "copy", finalPath}
	} else {
		args = buildConcatArgs(segmentPaths, finalPath, cfg)
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat error: %w, output: %s", err, string(out))
	}
	return nil
}

func writeConcatList(path string, segmentPaths []string) error {
	var b strings.Builder
	for _, p := range segmentPaths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "file '%s'\n", absPath)
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func buildConcatArgs(segmentPaths []string, finalPath string, cfg *config.Config) []string {
	args := []string{"-y"}
	for _, p := range segmentPaths {
		args = append(args, "-i", p)
	}

	audioIndex := -1
	if cfg.AudioPath != "" {
		audioIndex = len(segmentPaths)
		args = append(args, "-i", cfg.AudioPath)
	}

	var graph []string
	// Без графа фильтров поток указывается как 0:v, метки в скобках только у графа.
	lastOut := "0:v"
	if len(segmentPaths) > 1 {
		lastOut = "[0:v]"
		if cfg.HasTransitions() {
			offset := 0.0
			for i := 1; i < len(segmentPaths); i++ {
				offset += cfg.SlideDurations[i-1] - cfg.FadeDuration
				outName := fmt.Sprintf("[v%d]", i)
				graph = append(graph, fmt.Sprintf("%s[%d:v]xfade=transition=%s:duration=%f:offset=%f%s",
					lastOut, i, cfg.TransitionType, cfg.FadeDuration, offset, outName))
				lastOut = outName
			}
		} else {
			var inputs strings.Builder
			for i := range segmentPaths {
				fmt.Fprintf(&inputs, "[%d:v]", i)
			}
			graph = append(graph, fmt.Sprintf("%sconcat=n=%d:v=1:a=0[vconcat]", inputs.String(), len(segmentPaths)))
			lastOut = "[vconcat]"
		}
	}

	if len(graph) > 0 {
		args = append(args, "-filter_complex", strings.Join(graph, ";"))
	}
	args = append(args, "-map", lastOut)
	if audioIndex >= 0 {
		args = append(args, "-map", fmt.Sprintf("%d:a", audioIndex), "-shortest")
	}

	args = append(args, "-c:v", cfg.VideoEncoder, "-pix_fmt", "yuv420p")
	args = append(args, qualityArgs(cfg.VideoEncoder, cfg.Quality)...)
	return append(args, finalPath)
}
