package source

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// IsImage reports whether the file name has a supported raster extension.
func IsImage(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// ImageSource is a single image file or a directory of images in name order.
type ImageSource struct {
	paths []string
}

func NewImageSource(path string) (*ImageSource, error) {
	paths, err := ListImages(path)
	if err != nil {
		return nil, err
	}
	return &ImageSource{paths: paths}, nil
}

// ListImages returns path itself for a file, or the sorted images of a directory.
func ListImages(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && IsImage(entry.Name()) {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *ImageSource) PageCount() int {
	return len(s.paths)
}

func (s *ImageSource) GetPageDimensions(index int) (float64, float64, error) {
	f, err := s.open(index)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

// RenderPage decodes the image; dpi is ignored for raster files.
func (s *ImageSource) RenderPage(index int, dpi int) (image.Image, error) {
	f, err := s.open(index)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (s *ImageSource) Close() error {
	return nil
}

func (s *ImageSource) open(index int) (*os.File, error) {
	if index < 0 || index >= len(s.paths) {
		return nil, fmt.Errorf("изображение %d вне диапазона (всего %d)", index, len(s.paths))
	}
	return os.Open(s.paths[index])
}
