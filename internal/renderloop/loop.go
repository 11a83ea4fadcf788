// Package renderloop drives one frame of the visualizer: input, camera,
// geometry, projection and line output.
package renderloop

import (
	"image"
	"image/color"

	"github.com/iburimskiy/wormhole-visualization/internal/config"
	"github.com/iburimskiy/wormhole-visualization/internal/geometry"
	"github.com/iburimskiy/wormhole-visualization/internal/interaction"
	"github.com/iburimskiy/wormhole-visualization/internal/projector"
)

var Background = color.RGBA{R: config.BackgroundR, G: config.BackgroundG, B: config.BackgroundB, A: 255}

// Canvas receives the frame. Presentation and pacing belong to the caller.
type Canvas interface {
	Clear(c color.RGBA)
	Line(a, b image.Point, c color.RGBA)
}

// Input is polled once per frame and must not block.
type Input interface {
	Events() []interaction.Event
	NowMillis() int64
	Cursor() image.Point
}

type Loop struct {
	params     geometry.ShapeParameters
	viewport   projector.Viewport
	controller *interaction.Controller

	time   float64
	frames int
	quit   bool
}

func New(params geometry.ShapeParameters, vp projector.Viewport, nowMs int64) *Loop {
	return &Loop{
		params:     params,
		viewport:   vp,
		controller: interaction.NewController(nowMs),
	}
}

// Tick advances the animation clock by one step, dispatches pending input
// and steps the camera. It reports whether quit has been requested.
func (l *Loop) Tick(in Input) bool {
	l.time += config.TimeStep
	l.frames++

	now := in.NowMillis()
	for _, ev := range in.Events() {
		if ev.Kind == interaction.Quit {
			l.quit = true
			continue
		}
		l.controller.Handle(ev, now)
	}
	l.controller.Step(in.Cursor().X, now)

	return l.quit
}

// Render draws every ring as a closed polyline, in index order.
func (l *Loop) Render(dst Canvas) {
	dst.Clear(Background)

	cam := l.controller.Camera()
	for _, ring := range geometry.GenerateRings(l.params, l.time) {
		pts := projector.ProjectRing(ring.Points, cam.Angle, cam.Zoom, l.viewport)
		for k := range pts {
			dst.Line(pts[k], pts[(k+1)%len(pts)], ring.Color)
		}
	}
}

// Reset puts the camera back to its initial spin and zoom.
func (l *Loop) Reset(nowMs int64) { l.controller.Reset(nowMs) }

func (l *Loop) Camera() interaction.CameraState { return l.controller.Camera() }

func (l *Loop) Mode(nowMs int64) interaction.Mode { return l.controller.Mode(nowMs) }

func (l *Loop) Time() float64 { return l.time }

func (l *Loop) Frames() int { return l.frames }

func (l *Loop) Params() geometry.ShapeParameters { return l.params }

func (l *Loop) Viewport() projector.Viewport { return l.viewport }

func (l *Loop) Quit() bool { return l.quit }
