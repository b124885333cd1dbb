package game

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/reckoning/internal/telemetry"
	"github.com/samdwyer/reckoning/internal/ui"
	"github.com/samdwyer/reckoning/internal/world"
)

// confuseTurns is how long the 'c' key disorients the player.
const confuseTurns = 5

// Game drives a Session from terminal input.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	message  string
	running  bool
}

// New creates a new game instance for the given config.
func New(ctx context.Context, cfg Config) (*Game, error) {
	session, err := NewSession(ctx, cfg)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	defer g.screen.Close()

	for g.running {
		if ctx.Err() != nil {
			break
		}
		g.renderer.Render(g.frame())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	span.SetAttributes(
		attribute.Int64("session.seed", g.session.Seed()),
		attribute.Int("session.turns", g.session.Turn),
		attribute.String("session.state", g.session.State.String()),
	)
	return nil
}

// frame collects what the renderer needs from the session.
func (g *Game) frame() ui.Frame {
	f := ui.Frame{
		Grid:    g.session.Grid,
		Terrain: g.session.Terrain(),
		Ground:  tcell.ColorDefault,
		Player:  g.session.Player,
		Enemies: g.session.Enemies,
		Status:  []string{g.session.Status()},
	}
	if biome := g.session.Biome(); biome != nil {
		f.Ground = biome.GroundColor()
	}
	if g.message != "" {
		f.Status = append(f.Status, g.message)
	}
	return f
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'k':
			g.tryMove(ctx, 0, -1)
		case 'j':
			g.tryMove(ctx, 0, 1)
		case 'h':
			g.tryMove(ctx, -1, 0)
		case 'l':
			g.tryMove(ctx, 1, 0)
		case 'y':
			g.tryMove(ctx, -1, -1)
		case 'u':
			g.tryMove(ctx, 1, -1)
		case 'b':
			g.tryMove(ctx, -1, 1)
		case 'n':
			g.tryMove(ctx, 1, 1)
		case '.':
			g.tryMove(ctx, 0, 0)
		case 'c':
			g.session.ConfusePlayer(confuseTurns)
			g.message = "Your head spins."
		}
	}
}

// tryMove asks the session to move the player and records a status message.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	out, err := g.session.MovePlayer(ctx, dx, dy)
	switch {
	case errors.Is(err, ErrSessionOver):
		g.message = "You have fallen. Press q to quit."
	case err != nil:
		g.message = err.Error()
	case g.session.State == StateDefeated:
		g.message = "You have fallen. Press q to quit."
	case out.Deflected:
		g.message = "You stumble sideways."
	case !out.Moved && (dx != 0 || dy != 0):
		g.message = "Something blocks your way: " + g.blockerName(out, dx, dy)
	default:
		g.message = ""
	}
}

// blockerName names the tile that stopped an undeflected step.
func (g *Game) blockerName(out world.Outcome, dx, dy int) string {
	n := g.session.Grid.Size()
	x, y := world.Wrap(out.X+dx, n), world.Wrap(out.Y+dy, n)
	if e := g.session.EnemyAt(x, y); e != nil {
		return e.Name
	}
	return g.session.Terrain().Def(g.session.Grid.Classify(x, y).Kind).Name
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
