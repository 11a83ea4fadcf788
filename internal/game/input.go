package game

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wormhole-visualization/internal/interaction"
)

var mouseButtons = map[ebiten.MouseButton]interaction.Button{
	ebiten.MouseButtonLeft:   interaction.ButtonPrimary,
	ebiten.MouseButtonRight:  interaction.ButtonSecondary,
	ebiten.MouseButtonMiddle: interaction.ButtonMiddle,
}

// ebitenInput turns ebiten's per-tick input state into polled events.
type ebitenInput struct {
	start   time.Time
	pending []interaction.Event
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{start: time.Now()}
}

// push queues an event produced outside the mouse/wheel poll, e.g. a key.
func (in *ebitenInput) push(ev interaction.Event) {
	in.pending = append(in.pending, ev)
}

func (in *ebitenInput) Events() []interaction.Event {
	events := in.pending
	in.pending = nil

	if ebiten.IsWindowBeingClosed() {
		events = append(events, interaction.Event{Kind: interaction.Quit})
	}

	x, y := ebiten.CursorPosition()
	for mb, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb) {
			events = append(events, interaction.Event{Kind: interaction.PointerDown, Button: b, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			events = append(events, interaction.Event{Kind: interaction.PointerUp, Button: b, X: x, Y: y})
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		events = append(events, interaction.Event{Kind: interaction.Wheel, WheelY: wy})
	}
	return events
}

func (in *ebitenInput) NowMillis() int64 {
	return time.Since(in.start).Milliseconds()
}

func (in *ebitenInput) Cursor() image.Point {
	x, y := ebiten.CursorPosition()
	return image.Point{X: x, Y: y}
}

// screenCanvas draws the frame onto the ebiten screen image.
type screenCanvas struct {
	dst *ebiten.Image
}

func (c screenCanvas) Clear(clr color.RGBA) {
	c.dst.Fill(clr)
}

func (c screenCanvas) Line(a, b image.Point, clr color.RGBA) {
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, false)
}
