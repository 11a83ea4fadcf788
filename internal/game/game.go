// Package game runs the wormhole visualizer inside an ebiten window.
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/wormhole-visualization/internal/audio"
	"github.com/iburimskiy/wormhole-visualization/internal/config"
	"github.com/iburimskiy/wormhole-visualization/internal/geometry"
	"github.com/iburimskiy/wormhole-visualization/internal/interaction"
	"github.com/iburimskiy/wormhole-visualization/internal/projector"
	"github.com/iburimskiy/wormhole-visualization/internal/renderloop"
)

type Options struct {
	Params   geometry.ShapeParameters
	Viewport projector.Viewport
	Tone     bool
}

type Game struct {
	loop  *renderloop.Loop
	input *ebitenInput

	// spin tone
	tone *audio.SpinTone
	ctrl *beep.Ctrl

	// input edge detection
	prevKey map[ebiten.Key]bool

	showHUD bool
	started time.Time
}

func New(opts Options) *Game {
	in := newEbitenInput()
	g := &Game{
		loop:    renderloop.New(opts.Params, opts.Viewport, in.NowMillis()),
		input:   in,
		prevKey: map[ebiten.Key]bool{},
		showHUD: true,
		started: time.Now(),
	}

	if opts.Tone {
		if err := g.initTone(); err != nil {
			// Non-fatal, the visualizer runs silently
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	return g
}

func (g *Game) initTone() error {
	sr := beep.SampleRate(config.ToneSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	g.tone = audio.NewSpinTone(sr)
	g.ctrl = &beep.Ctrl{Streamer: g.tone}
	speaker.Play(g.ctrl)
	return nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.input.push(interaction.Event{Kind: interaction.Quit})
	}
	if justPressed(ebiten.KeyR) {
		g.loop.Reset(g.input.NowMillis())
	}
	if justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if justPressed(ebiten.KeyM) {
		g.toggleMute()
	}

	if g.loop.Tick(g.input) {
		return ebiten.Termination
	}

	if g.tone != nil {
		g.tone.SetVelocity(g.loop.Camera().Velocity)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Render(screenCanvas{dst: screen})

	if !g.showHUD {
		return
	}
	cam := g.loop.Camera()
	status := fmt.Sprintf("%s | zoom %.1f | spin %+.4f rad/frame | %s | drag to spin, wheel to zoom, R reset, H hide, Esc quit",
		g.loop.Mode(g.input.NowMillis()), cam.Zoom, cam.Velocity, formatDuration(time.Since(g.started)))
	if g.ctrl != nil && g.ctrl.Paused {
		status += " | muted"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.loop.Viewport()
	return vp.Width, vp.Height
}

func (g *Game) toggleMute() {
	if g.ctrl == nil {
		return
	}
	speaker.Lock()
	g.ctrl.Paused = !g.ctrl.Paused
	speaker.Unlock()
}

// Close stops the spin tone. The window is released by ebiten.RunGame.
func (g *Game) Close() {
	if g.ctrl == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	g.ctrl = nil
	g.tone = nil
}
