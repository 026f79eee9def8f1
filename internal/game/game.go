package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/spindrift/internal/control"
	"github.com/iburimskiy/spindrift/internal/spindrift"
)

const (
	overlayX          = 12
	overlayY          = 12
	overlayLineHeight = 16
)

// binding maps a key to the command it triggers.
type binding struct {
	key ebiten.Key
	cmd control.Command
}

var bindings = []binding{
	{ebiten.KeyR, control.Reset},
	{ebiten.KeyEscape, control.TogglePause},
	{ebiten.KeySpace, control.ToggleLock},
	{ebiten.KeyM, control.ToggleRandomColors},
	{ebiten.KeyP, control.TogglePolicy},
	{ebiten.Key3, control.ShapeTriangle},
	{ebiten.Key4, control.ShapeSquare},
	{ebiten.Key5, control.ShapePentagon},
	{ebiten.Key6, control.ShapeHexagon},
	{ebiten.KeyC, control.CustomSides},
	{ebiten.KeyK, control.PickShapeColor},
	{ebiten.KeyB, control.PickBackgroundColor},
	{ebiten.KeyArrowUp, control.SpeedUp},
	{ebiten.KeyArrowDown, control.SpeedDown},
	{ebiten.KeyArrowRight, control.LayersUp},
	{ebiten.KeyArrowLeft, control.LayersDown},
	{ebiten.KeyBracketRight, control.DecayUp},
	{ebiten.KeyBracketLeft, control.DecayDown},
	{ebiten.KeyEqual, control.SizeUp},
	{ebiten.KeyMinus, control.SizeDown},
	{ebiten.KeyPeriod, control.CadenceUp},
	{ebiten.KeyComma, control.CadenceDown},
	{ebiten.KeyS, control.Snapshot},
	{ebiten.KeyH, control.ToggleOverlay},
}

// Game runs a Driver inside ebiten's loop: one driver tick per Update.
type Game struct {
	driver *spindrift.Driver
	ctrl   *control.Controller
	log    *zap.Logger

	width, height int
}

func New(d *spindrift.Driver, ctrl *control.Controller, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{driver: d, ctrl: ctrl, log: log}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Results from dialogs and snapshots land between ticks.
	g.ctrl.Poll()

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.ctrl.Apply(b.cmd)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Apply(control.Reverse)
	}

	g.driver.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	spindrift.Render(g.driver.LastFrame(), surface{dst: screen})

	if !g.ctrl.OverlayVisible() {
		return
	}
	for i, line := range g.ctrl.Overlay() {
		ebitenutil.DebugPrintAt(screen, line, overlayX, overlayY+i*overlayLineHeight)
	}
}

// Layout follows the window size so the polygons stay centred on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.driver.Resize(outsideWidth, outsideHeight)
		g.log.Debug("surface resized", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
	}
	return outsideWidth, outsideHeight
}
