package mobject

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"

	"github.com/ivlev/deck2video/internal/source"
)

// Image is a raster file (png/jpeg) stretched into its bounds.
// The file is read when the object is drawn, not when it is created.
type Image struct {
	base
	Path string
}

// NewImage creates an image of w×h frame units centered in the frame.
func NewImage(path string, w, h float64) *Image {
	return &Image{
		base: newBase("image", Rect{(FrameWidth - w) / 2, (FrameHeight - h) / 2, w, h}),
		Path: path,
	}
}

func (m *Image) Clone() Mobject {
	c := *m
	return &c
}

func (m *Image) Draw(dst draw.Image, scale float64) error {
	img, err := renderPage(m.Path, 0, 0)
	if err != nil {
		return fmt.Errorf("image %s: %w", m.Path, err)
	}
	xdraw.CatmullRom.Scale(dst, m.rect.Pixels(scale), img, img.Bounds(), xdraw.Over, nil)
	return nil
}

// PDFPage is one page of a PDF document rendered through MuPDF.
type PDFPage struct {
	base
	Path string
	Page int
	DPI  int
}

func NewPDFPage(path string, page int, w, h float64) *PDFPage {
	return &PDFPage{
		base: newBase("pdf", Rect{(FrameWidth - w) / 2, (FrameHeight - h) / 2, w, h}),
		Path: path,
		Page: page,
		DPI:  150,
	}
}

func (m *PDFPage) Clone() Mobject {
	c := *m
	return &c
}

func (m *PDFPage) Draw(dst draw.Image, scale float64) error {
	img, err := renderPage(m.Path, m.Page, m.DPI)
	if err != nil {
		return fmt.Errorf("pdf %s: %w", m.Path, err)
	}
	xdraw.CatmullRom.Scale(dst, m.rect.Pixels(scale), img, img.Bounds(), xdraw.Over, nil)
	return nil
}

// QRCode encodes Content as a square QR symbol of side Size.
type QRCode struct {
	base
	Content string
}

func NewQRCode(content string, size float64) *QRCode {
	return &QRCode{
		base:    newBase("qrcode", Rect{(FrameWidth - size) / 2, (FrameHeight - size) / 2, size, size}),
		Content: content,
	}
}

func (m *QRCode) Clone() Mobject {
	c := *m
	return &c
}

func (m *QRCode) Draw(dst draw.Image, scale float64) error {
	q, err := qrcode.New(m.Content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("qrcode: %w", err)
	}
	r := m.rect.Pixels(scale)
	img := q.Image(r.Dx())
	// Символ квадратный, растягиваем только если границы неквадратные.
	xdraw.NearestNeighbor.Scale(dst, r, img, img.Bounds(), xdraw.Over, nil)
	return nil
}

// renderPage rasterizes one page of a PDF or image source.
func renderPage(path string, page, dpi int) (image.Image, error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return src.RenderPage(page, dpi)
}
