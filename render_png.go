// Native PNG snapshots of a frame. Drawn at a multiple of the output size
// and downsampled for smoother lines.

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width       int
	Height      int
	Supersample int
	FontSize    float64
}

// DefaultPNGOptions renders at the demo window size.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:       1280,
		Height:      720,
		Supersample: 2,
		FontSize:    20,
	}
}

// PNGRenderer implements Renderer on an in-memory image
type PNGRenderer struct {
	opts      PNGOptions
	img       *image.RGBA
	face      font.Face
	scale     float64
	lineWidth float64
	frames    int
}

// NewPNGRenderer prepares the canvas and the Go Regular font face
func NewPNGRenderer(opts PNGOptions) (*PNGRenderer, error) {
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	scale := float64(opts.Supersample)

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    opts.FontSize * scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return &PNGRenderer{
		opts:      opts,
		img:       image.NewRGBA(image.Rect(0, 0, opts.Width*opts.Supersample, opts.Height*opts.Supersample)),
		face:      face,
		scale:     scale,
		lineWidth: scale,
	}, nil
}

func (r *PNGRenderer) Clear(c color.RGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *PNGRenderer) Polygon(points []Point, c color.RGBA) {
	for i := range points {
		r.Line(points[i], points[(i+1)%len(points)], c)
	}
}

// Circle draws a filled disc
func (r *PNGRenderer) Circle(center Point, radius float64, c color.RGBA) {
	cx, cy, rad := center.X*r.scale, center.Y*r.scale, radius*r.scale
	for dy := -rad; dy <= rad; dy++ {
		xExtent := math.Sqrt(math.Max(0, rad*rad-dy*dy))
		for dx := -xExtent; dx <= xExtent; dx++ {
			r.img.Set(int(cx+dx), int(cy+dy), c)
		}
	}
}

// Line draws a line between two points with the renderer's thickness.
func (r *PNGRenderer) Line(a, b Point, c color.RGBA) {
	x1, y1 := a.X*r.scale, a.Y*r.scale
	x2, y2 := b.X*r.scale, b.Y*r.scale
	halfThick := r.lineWidth / 2

	dx := x2 - x1
	dy := y2 - y1
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				r.img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 + dx*t
		cy := y1 + dy*t

		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			r.img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

// Text draws a label with its top-left corner at pos
func (r *PNGRenderer) Text(pos Point, text string, c color.RGBA) {
	ascent := r.face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(pos.X * r.scale)),
			Y: fixed.I(int(pos.Y*r.scale) + ascent),
		},
	}
	d.DrawString(text)
}

func (r *PNGRenderer) Present() error {
	r.frames++
	return nil
}

// Frames returns how many frames were presented
func (r *PNGRenderer) Frames() int {
	return r.frames
}

// Image returns the last frame downsampled to the configured size
func (r *PNGRenderer) Image() *image.RGBA {
	if r.opts.Supersample == 1 {
		return r.img
	}
	final := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), r.img, r.img.Bounds(), draw.Over, nil)
	return final
}

// Encode writes the last frame as PNG
func (r *PNGRenderer) Encode(w io.Writer) error {
	return png.Encode(w, r.Image())
}
