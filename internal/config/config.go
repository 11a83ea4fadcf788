package config

const (
	WindowWidth  = 1920
	WindowHeight = 1080
	WindowTitle  = "Einstein-Rosen Bridge Simulation"

	TPS = 60

	// Shape defaults offered by the startup prompts
	DefaultThroatRadius      = 50.0
	DefaultHeightScale       = 1.5
	DefaultRingCount         = 150
	DefaultAngularResolution = 80

	// Animation clock advance per frame, independent of wall time
	TimeStep = 0.02

	// Background clear colour
	BackgroundR = 5
	BackgroundG = 5
	BackgroundB = 15

	// Spin tone
	ToneSampleRate  = 44100
	ToneBaseHz      = 55.0
	ToneHzPerRadian = 4000.0
	ToneMaxHz       = 440.0
	ToneAmplitude   = 0.08
)
