// Package view draws light path scenes and search diagnostics.
package view

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-lightpath/lightpath"
	"github.com/jdginn/go-lightpath/lightpath/world"
)

var (
	background    = color.White
	obstacleFill  = color.RGBA{0x70, 0x70, 0x70, 0xff}
	mirrorColor   = color.RGBA{0x1f, 0x6f, 0xd0, 0xff}
	beamColor     = color.RGBA{0xf0, 0xa0, 0x20, 0xff}
	selectedColor = color.RGBA{0xd0, 0x20, 0xa0, 0xff}
	sourceColor   = color.RGBA{0x20, 0xa0, 0x40, 0xff}
	targetColor   = color.RGBA{0xd0, 0x30, 0x30, 0xff}
)

// Scene is what a View draws.
type Scene struct {
	World  *world.World
	Source *lightpath.Point
	Target *lightpath.Point
}

// View maps a scene onto an image of XSize by YSize pixels, keeping aspect
// ratio and flipping y so that scene y points up.
type View struct {
	Scene Scene
	XSize int
	YSize int
	// Empty border around the scene, in scene units
	Margin float64
	// These cache the values needed to scale and translate from the scene to the requested image size
	scale      float64
	xTranslate float64
	yTranslate float64
}

// BoundingBox encloses the world, both end points and any extra points.
func (scene Scene) BoundingBox(extra []lightpath.Point) r2.Box {
	box := r2.Box{
		Min: r2.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	if scene.World != nil {
		box = scene.World.Bounds()
	}
	grow := func(p lightpath.Point) {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	for _, p := range []*lightpath.Point{scene.Source, scene.Target} {
		if p != nil {
			grow(*p)
		}
	}
	for _, p := range extra {
		grow(p)
	}
	if math.IsInf(box.Min.X, 1) {
		return r2.Box{Min: r2.Vec{X: -1, Y: -1}, Max: r2.Vec{X: 1, Y: 1}}
	}
	return box
}

func (view *View) computeScaleAndTranslation(extra []lightpath.Point) {
	box := view.Scene.BoundingBox(extra)
	box.Min = r2.Sub(box.Min, r2.Vec{X: view.Margin, Y: view.Margin})
	box.Max = r2.Add(box.Max, r2.Vec{X: view.Margin, Y: view.Margin})
	view.xTranslate = -box.Min.X
	view.yTranslate = -box.Min.Y
	size := r2.Sub(box.Max, box.Min)
	// a flat scene still needs a finite scale
	width, height := math.Max(size.X, 1e-9), math.Max(size.Y, 1e-9)
	view.scale = math.Min(float64(view.XSize)/width, float64(view.YSize)/height)
}

// ToPixel maps a scene point to image coordinates.
func (view *View) ToPixel(p lightpath.Point) (float64, float64) {
	if view.scale == 0 {
		view.computeScaleAndTranslation(nil)
	}
	x := (p.X + view.xTranslate) * view.scale
	y := float64(view.YSize) - (p.Y+view.yTranslate)*view.scale
	return x, y
}

// Draw renders the scene and, if res is reachable, its beam. The leg with
// index highlight (0 is source to first hit) is drawn in a separate colour;
// pass -1 for none.
func (view *View) Draw(res lightpath.Result, highlight int) image.Image {
	if view.scale == 0 {
		view.computeScaleAndTranslation(res.Path)
	}
	c := gg.NewContext(view.XSize, view.YSize)
	c.SetColor(background)
	c.Clear()

	w := view.Scene.World
	if w != nil {
		c.SetColor(obstacleFill)
		for _, circle := range w.Circles {
			x, y := view.ToPixel(circle.Center)
			c.DrawCircle(x, y, circle.Radius*view.scale)
			c.Fill()
		}
		c.SetLineWidth(2)
		for _, seg := range w.Segments {
			view.line(c, seg.A, seg.B)
		}
		c.SetColor(mirrorColor)
		c.SetLineWidth(3)
		for _, m := range w.Mirrors {
			view.line(c, m.A, m.B)
		}
	}

	if res.Reachable {
		for i := 0; i < len(res.Path)-1; i++ {
			if i == highlight {
				c.SetColor(selectedColor)
				c.SetLineWidth(4)
			} else {
				c.SetColor(beamColor)
				c.SetLineWidth(2)
			}
			view.line(c, res.Path[i], res.Path[i+1])
		}
	}

	view.dot(c, view.Scene.Source, sourceColor)
	view.dot(c, view.Scene.Target, targetColor)
	return c.Image()
}

func (view *View) line(c *gg.Context, a, b lightpath.Point) {
	x1, y1 := view.ToPixel(a)
	x2, y2 := view.ToPixel(b)
	c.DrawLine(x1, y1, x2, y2)
	c.Stroke()
}

func (view *View) dot(c *gg.Context, p *lightpath.Point, col color.Color) {
	if p == nil {
		return
	}
	x, y := view.ToPixel(*p)
	c.SetColor(col)
	c.DrawCircle(x, y, 5)
	c.Fill()
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}
