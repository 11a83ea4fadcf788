package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/wormhole-visualization/internal/config"
	"github.com/iburimskiy/wormhole-visualization/internal/game"
	"github.com/iburimskiy/wormhole-visualization/internal/geometry"
	"github.com/iburimskiy/wormhole-visualization/internal/projector"
	"github.com/iburimskiy/wormhole-visualization/internal/prompt"
)

var (
	shape = geometry.ShapeParameters{
		ThroatRadius:      config.DefaultThroatRadius,
		HeightScale:       config.DefaultHeightScale,
		RingCount:         config.DefaultRingCount,
		AngularResolution: config.DefaultAngularResolution,
	}
	width, height int
	noPrompt      bool
	console       bool
	tone          bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "wormhole",
		Short: "Interactive wireframe of an Einstein-Rosen bridge",
		Long: `wormhole - Einstein-Rosen Bridge wireframe

Asks for the shape (throat radius, height scale, ring count, points per
ring) and spins the resulting surface.

Controls:
  Mouse drag  - Spin
  Wheel       - Zoom
  R           - Reset view
  H           - Toggle HUD
  M           - Mute spin tone
  Esc/Q       - Quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.Flags().Float64Var(&shape.ThroatRadius, "throat", shape.ThroatRadius, "Throat radius")
	cmd.Flags().Float64Var(&shape.HeightScale, "height-scale", shape.HeightScale, "Bridge height scale")
	cmd.Flags().IntVar(&shape.RingCount, "rings", shape.RingCount, "Number of cross-section slices")
	cmd.Flags().IntVar(&shape.AngularResolution, "resolution", shape.AngularResolution, "Points per ring")
	cmd.Flags().IntVar(&width, "width", config.WindowWidth, "Window width")
	cmd.Flags().IntVar(&height, "height", config.WindowHeight, "Window height")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "Use flag values without asking")
	cmd.Flags().BoolVar(&console, "console", false, "Ask on the terminal instead of dialogs")
	cmd.Flags().BoolVar(&tone, "tone", false, "Play a drone that follows the spin")

	if err := cmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	// Flag values double as the prompt defaults, so they must be sane.
	if err := shape.Validate(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", width, height)
	}

	params := shape
	if !noPrompt {
		var p prompt.Prompter = prompt.Dialog{Title: config.WindowTitle}
		if console {
			p = prompt.NewConsole(os.Stdin, os.Stdout)
		}
		params = prompt.Collect(p, shape)
	}
	if err := params.Validate(); err != nil {
		return err
	}
	log.Printf("Shape: throat=%g scale=%g rings=%d resolution=%d",
		params.ThroatRadius, params.HeightScale, params.RingCount, params.AngularResolution)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)

	g := game.New(game.Options{
		Params:   params,
		Viewport: projector.Viewport{Width: width, Height: height},
		Tone:     tone,
	})
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
