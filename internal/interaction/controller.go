// Package interaction owns the camera and turns pointer input into rotation.
package interaction

const (
	DefaultSpin = 0.0075
	DragGain    = 0.005
	Decay       = 0.98
	ReturnRate  = 0.01
	ReturnDelay = 1000 // ms without interaction before auto-spin resumes

	ZoomStep    = 0.5
	MinZoom     = 1.0
	MaxZoom     = 20.0
	InitialZoom = 5.0
)

type EventKind int

const (
	Quit EventKind = iota
	PointerDown
	PointerUp
	Wheel
)

type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Event is one polled input event. X and Y are screen coordinates.
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   int
	WheelY float64
}

type Mode int

const (
	Coasting Mode = iota
	Dragging
	Returning
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "dragging"
	case Returning:
		return "returning"
	default:
		return "coasting"
	}
}

// CameraState is the view the projector consumes. Angle is unbounded.
type CameraState struct {
	Angle    float64
	Velocity float64
	Zoom     float64
}

type PointerState struct {
	Dragging  bool
	LastX     int
	IdleSince int64 // ms, last drag start or end
}

type Controller struct {
	camera  CameraState
	pointer PointerState
}

func NewController(nowMs int64) *Controller {
	c := &Controller{}
	c.Reset(nowMs)
	return c
}

// Reset restores the initial view: default spin, initial zoom, no drag.
func (c *Controller) Reset(nowMs int64) {
	c.camera = CameraState{Velocity: DefaultSpin, Zoom: InitialZoom}
	c.pointer = PointerState{IdleSince: nowMs}
}

func (c *Controller) Camera() CameraState   { return c.camera }
func (c *Controller) Pointer() PointerState { return c.pointer }

// Mode reports which rule currently drives the velocity.
func (c *Controller) Mode(nowMs int64) Mode {
	switch {
	case c.pointer.Dragging:
		return Dragging
	case nowMs-c.pointer.IdleSince > ReturnDelay:
		return Returning
	default:
		return Coasting
	}
}

// Handle applies a discrete event. Quit is ignored here; the loop owns it.
func (c *Controller) Handle(ev Event, nowMs int64) {
	switch ev.Kind {
	case PointerDown:
		if ev.Button != ButtonPrimary {
			return
		}
		c.pointer.Dragging = true
		c.pointer.LastX = ev.X
		c.pointer.IdleSince = nowMs
	case PointerUp:
		if ev.Button != ButtonPrimary {
			return
		}
		c.pointer.Dragging = false
		c.pointer.IdleSince = nowMs
	case Wheel:
		c.camera.Zoom = ClampZoom(c.camera.Zoom + ev.WheelY*ZoomStep)
	}
}

// Step advances one frame. pointerX is the current cursor column.
func (c *Controller) Step(pointerX int, nowMs int64) {
	if c.pointer.Dragging {
		dx := pointerX - c.pointer.LastX
		c.camera.Velocity = float64(dx) * DragGain
		c.camera.Angle += c.camera.Velocity
		c.pointer.LastX = pointerX
		return
	}

	c.camera.Angle += c.camera.Velocity
	c.camera.Velocity *= Decay

	if nowMs-c.pointer.IdleSince > ReturnDelay {
		c.camera.Velocity += (DefaultSpin - c.camera.Velocity) * ReturnRate
	}
}

func ClampZoom(z float64) float64 {
	return max(MinZoom, min(z, MaxZoom))
}
