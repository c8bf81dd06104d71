package gradient

import (
	"cmp"
	"fmt"
	"image"
	stdcolor "image/color"
	"math"
	"runtime"
	"slices"
	"sort"
	"sync"

	"github.com/gogpu/gg"

	"github.com/alexisbeaulieu97/huey/internal/color"
	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

// MaxDimension bounds both sides of a rendered image.
const MaxDimension = 4000

type brush interface {
	ColorAt(x, y float64) gg.RGBA
}

// Render rasterises v onto a width x height canvas. Linear gradients run
// along the rotation angle and span the whole canvas; radial gradients are a
// circle centred on the canvas with a radius of half the shorter side.
func Render(v Value, width, height int) (*image.NRGBA, error) {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return nil, hueyerrors.NewRenderError("render",
			fmt.Errorf("canvas size %dx%d outside 1..%d", width, height, MaxDimension))
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	r, err := newRamp(v, float64(width), float64(height))
	if err != nil {
		return nil, hueyerrors.NewRenderError("render", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fill(img, r)
	return img, nil
}

// LinearEndpoints returns the gradient line for a linear gradient at rotation
// degrees, measured clockwise from "to top" as in CSS. The line passes
// through the canvas centre and is exactly long enough to reach the two
// corners it points at.
//
// With θ = rotation - 90° the line runs along (cos θ, sin θ), and the canvas
// projects onto that direction with length |w·cos θ| + |h·sin θ|. The
// |w·sin θ| + |h·cos θ| form measures the perpendicular extent instead. It
// only matches on square canvases or at diagonal angles; elsewhere it stops
// short of the corners or overshoots them.
func LinearEndpoints(rotation, width, height float64) (x0, y0, x1, y1 float64) {
	rad := (rotation - 90) * math.Pi / 180
	d := math.Abs(width*math.Cos(rad)) + math.Abs(height*math.Sin(rad))
	cx, cy := width/2, height/2
	dx, dy := math.Cos(rad)*d/2, math.Sin(rad)*d/2
	return cx - dx, cy - dy, cx + dx, cy + dy
}

// ramp maps a position along the gradient to a color. gg supplies the
// geometry through a position brush whose alpha runs from 0 to 1; alpha is
// never gamma encoded, so it carries the position unchanged. Colors are then
// blended between the bracketing stops in gamma sRGB, as canvas and CSS do.
type ramp struct {
	position brush
	stops    []rampStop
}

type rampStop struct {
	offset float64
	rgb    color.RGB
}

func (r ramp) ColorAt(x, y float64) stdcolor.NRGBA {
	return toNRGBA(r.at(r.position.ColorAt(x, y).A))
}

// at returns the color at t in [0, 1]. Positions outside the first and last
// stop take the nearest stop color.
func (r ramp) at(t float64) color.RGB {
	stops := r.stops
	idx := sort.Search(len(stops), func(i int) bool { return stops[i].offset >= t })
	switch {
	case idx == 0:
		return stops[0].rgb
	case idx == len(stops):
		return stops[len(stops)-1].rgb
	}

	lo, hi := stops[idx-1], stops[idx]
	if hi.offset == lo.offset {
		return lo.rgb
	}
	return color.Mix(lo.rgb, hi.rgb, (t-lo.offset)/(hi.offset-lo.offset)*100)
}

func newRamp(v Value, width, height float64) (ramp, error) {
	stops := make([]rampStop, 0, len(v.Stops))
	for _, s := range v.Stops {
		rgb, err := color.ParseRGBValue(s.Color)
		if err != nil {
			return ramp{}, err
		}
		stops = append(stops, rampStop{offset: math.Max(0, math.Min(1, s.Offset/100)), rgb: rgb})
	}
	if len(stops) == 0 {
		return ramp{}, fmt.Errorf("gradient has no stops")
	}
	slices.SortStableFunc(stops, func(a, b rampStop) int { return cmp.Compare(a.offset, b.offset) })

	from, to := gg.RGBA2(0, 0, 0, 0), gg.RGBA2(0, 0, 0, 1)
	if v.Type == TypeRadial {
		g := gg.NewRadialGradientBrush(width/2, height/2, 0, math.Min(width, height)/2)
		g.AddColorStop(0, from).AddColorStop(1, to)
		return ramp{position: g, stops: stops}, nil
	}

	g := gg.NewLinearGradientBrush(LinearEndpoints(v.Rotation, width, height))
	g.AddColorStop(0, from).AddColorStop(1, to)
	return ramp{position: g, stops: stops}, nil
}

// fill samples the ramp at every pixel centre. Rows are split into bands
// rendered in parallel.
func fill(img *image.NRGBA, r ramp) {
	bounds := img.Bounds()
	rows := bounds.Dy()
	workers := min(runtime.GOMAXPROCS(0), rows)
	band := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < rows; start += band {
		end := min(start+band, rows)
		wg.Go(func() {
			for y := start; y < end; y++ {
				for x := 0; x < bounds.Dx(); x++ {
					img.SetNRGBA(x, y, r.ColorAt(float64(x)+0.5, float64(y)+0.5))
				}
			}
		})
	}
	wg.Wait()
}

func toNRGBA(c color.RGB) stdcolor.NRGBA {
	return stdcolor.NRGBA{R: to8(c.R / 255), G: to8(c.G / 255), B: to8(c.B / 255), A: to8(c.A)}
}

func to8(v float64) uint8 {
	return uint8(math.Floor(math.Max(0, math.Min(1, v))*255 + 0.5))
}
