// Package export draws recorded foot trajectories as pictures.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/adammck/footstep/components/recorder"
	"github.com/adammck/footstep/math3d"
	"github.com/adammck/footstep/terrain"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "export",
})

type Options struct {
	Width  int
	Height int

	// Space around the plot, in pixels.
	Margin int

	// Width of the trajectory lines, in pixels.
	Line float64

	Background color.RGBA
	Ground     color.RGBA

	// One per foot, in the order that the recorder sorts them. Reused if there
	// are more feet than colors.
	Colors []color.RGBA
}

func DefaultOptions() Options {
	return Options{
		Width:      1200,
		Height:     400,
		Margin:     24,
		Line:       2,
		Background: color.RGBA{0x1a, 0x1a, 0x24, 0xff},
		Ground:     color.RGBA{0x66, 0x66, 0x88, 0xff},
		Colors: []color.RGBA{
			{0x4e, 0x9a, 0xf1, 0xff},
			{0xf1, 0x8f, 0x4e, 0xff},
		},
	}
}

// frame maps world Z (horizontal) and Y (vertical) into the image. The axes are
// scaled independently, since a walk is much longer than a step is high.
type frame struct {
	minZ, maxZ float64
	minY, maxY float64
	opt        Options
}

func (f frame) point(v math3d.Vector3) (float32, float32) {
	w := float64(f.opt.Width - 2*f.opt.Margin)
	h := float64(f.opt.Height - 2*f.opt.Margin)
	x := float64(f.opt.Margin) + (v.Z-f.minZ)/(f.maxZ-f.minZ)*w
	y := float64(f.opt.Height-f.opt.Margin) - (v.Y-f.minY)/(f.maxY-f.minY)*h
	return float32(x), float32(y)
}

func bounds(rec *recorder.Recorder, opt Options) (frame, bool) {
	f := frame{
		minZ: math.Inf(1), maxZ: math.Inf(-1),
		minY: math.Inf(1), maxY: math.Inf(-1),
		opt: opt,
	}

	n := 0
	for _, name := range rec.Feet() {
		for _, s := range rec.Samples(name) {
			p := s.Pose.Position
			f.minZ = math.Min(f.minZ, p.Z)
			f.maxZ = math.Max(f.maxZ, p.Z)
			f.minY = math.Min(f.minY, p.Y)
			f.maxY = math.Max(f.maxY, p.Y)
			n += 1
		}
	}

	if n == 0 {
		return f, false
	}

	// Pad flat ranges out, so a foot which never moved is still drawn.
	if f.maxZ-f.minZ < 1 {
		f.minZ -= 0.5
		f.maxZ += 0.5
	}

	if f.maxY-f.minY < 0.1 {
		f.minY -= 0.05
		f.maxY += 0.05
	}

	return f, true
}

// SideView draws the path of every recorded foot as seen from the side. If the
// surface isn't nil, the ground under the centerline is drawn too.
func SideView(rec *recorder.Recorder, surface terrain.Surface, opt Options) (*image.RGBA, error) {
	if opt.Width <= 2*opt.Margin || opt.Height <= 2*opt.Margin {
		return nil, fmt.Errorf("image too small: %dx%d with margin %d", opt.Width, opt.Height, opt.Margin)
	}

	if len(opt.Colors) == 0 {
		return nil, errors.New("no colors")
	}

	f, ok := bounds(rec, opt)
	if !ok {
		return nil, errors.New("nothing recorded")
	}

	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	if surface != nil {
		stroke(img, ground(surface, f), opt.Line/2, opt.Ground, f)
	}

	for i, name := range rec.Feet() {
		c := opt.Colors[i%len(opt.Colors)]

		var path []math3d.Vector3
		for _, s := range rec.Samples(name) {
			path = append(path, s.Pose.Position)
		}

		stroke(img, path, opt.Line, c, f)
		label(img, name, opt.Margin, opt.Margin+(i+1)*14, c)
	}

	log.Debugf("drew %d feet spanning z=%0.2f..%0.2f", len(rec.Feet()), f.minZ, f.maxZ)
	return img, nil
}

// ground samples the height of the surface along the Z axis, once per pixel.
func ground(surface terrain.Surface, f frame) []math3d.Vector3 {
	n := f.opt.Width - 2*f.opt.Margin
	top := f.maxY + 10
	depth := top - f.minY + 10

	var out []math3d.Vector3
	for i := 0; i <= n; i++ {
		z := f.minZ + (f.maxZ-f.minZ)*float64(i)/float64(n)
		hit, ok := surface.Raycast(math3d.Vector3{X: 0, Y: top, Z: z}, math3d.Down, depth, terrain.AllLayers)
		if ok {
			out = append(out, hit.Point)
		}
	}

	return out
}

// stroke draws a polyline, as one quad per segment.
func stroke(dst draw.Image, path []math3d.Vector3, width float64, c color.RGBA, f frame) {
	if len(path) < 2 {
		return
	}

	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	hw := float32(width / 2)

	for i := 1; i < len(path); i++ {
		x0, y0 := f.point(path[i-1])
		x1, y1 := f.point(path[i])

		dx, dy := x1-x0, y1-y0
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}

		// Perpendicular, half a line wide.
		nx, ny := -dy/l*hw, dx/l*hw

		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x1+nx, y1+ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x0-nx, y0-ny)
		z.ClosePath()
	}

	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func label(dst draw.Image, text string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}

	d.DrawString(text)
}

func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes the image to a file.
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := WritePNG(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return file.Close()
}
