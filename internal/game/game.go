package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pelletmaze/internal/entity"
	"github.com/samdwyer/pelletmaze/internal/gamedata"
	"github.com/samdwyer/pelletmaze/internal/input"
	"github.com/samdwyer/pelletmaze/internal/telemetry"
	"github.com/samdwyer/pelletmaze/internal/ui"
)

// Game ties the engine to a terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *Engine
	board    *Scoreboard
	running  bool
}

// New loads game data and opens the terminal.
func New(ctx context.Context, cfg Config) (*Game, error) {
	levels, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load levels: %w", err)
	}
	level := levels.GetByID(cfg.LevelID)
	if level == nil {
		return nil, fmt.Errorf("unknown level %q", cfg.LevelID)
	}
	player, err := gamedata.LoadPlayer()
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	pursuers, err := gamedata.LoadPursuerRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load pursuers: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	board := NewScoreboard()
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, ui.NewAssets(player, pursuers)),
		engine:   NewEngine(ctx, cfg, level, player, pursuers, board),
		board:    board,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")

	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("session.id", g.engine.SessionID()),
		attribute.String("level.id", g.cfg.LevelID),
		attribute.Int("level.walls", len(g.engine.Level().Walls())),
		attribute.Int("level.pellets", len(g.engine.Level().Pellets())),
		attribute.Int("pursuers", len(g.engine.Pursuers())),
		attribute.Int64("tick_ms", g.cfg.TickRate.Milliseconds()),
	)
	initSpan.End()

	// Per-tick events such as power-ups attach to the session span.
	ctx, span := tracer.Start(ctx, "game.session")
	span.SetAttributes(attribute.String("session.id", g.engine.SessionID()))
	defer span.End()

	go g.readInput(g.engine.Queue())

	ticker := time.NewTicker(g.cfg.TickRate)
	defer ticker.Stop()

	now := time.Now()
	for g.running {
		g.render(now)

		select {
		case <-ctx.Done():
			g.running = false
		case now = <-ticker.C:
			g.engine.Tick(ctx, now)
			if g.engine.QuitRequested() {
				g.running = false
			}
		}
	}

	return nil
}

func (g *Game) render(now time.Time) {
	hud := ui.HUD{Score: g.board.Score()}
	switch g.engine.Phase() {
	case PhaseReady:
		hud.Message = "PRESS ENTER TO START"
	case PhasePlaying:
		hud.Status = scaredStatus(g.engine.Pursuers(), now)
	case PhaseWon:
		hud.Message = fmt.Sprintf("YOU WIN! SCORE %d  ENTER TO PLAY AGAIN", g.board.Score())
	case PhaseLost:
		hud.Message = fmt.Sprintf("GAME OVER  SCORE %d  ENTER TO RETRY", g.board.Score())
	}
	g.renderer.Render(g.engine.Level(), g.engine.Player(), g.engine.Pursuers(), hud)
}

// scaredStatus reports how many pursuers are scared and how long until the
// last of them recovers. It is empty when none are scared.
func scaredStatus(pursuers []*entity.Pursuer, now time.Time) string {
	var n int
	var until time.Time
	for _, p := range pursuers {
		if !p.Scared {
			continue
		}
		n++
		if p.ScaredUntil().After(until) {
			until = p.ScaredUntil()
		}
	}
	if n == 0 {
		return ""
	}
	left := until.Sub(now)
	if left < 0 {
		left = 0
	}
	return fmt.Sprintf("SCARED x%d %.1fs", n, left.Seconds())
}

// readInput turns terminal events into queued input. It runs on its own
// goroutine and exits when the screen is closed.
func (g *Game) readInput(q *input.Queue) {
	var buttonDown bool
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if e, ok := keyEvent(ev.Key(), ev.Rune()); ok {
				q.Push(e)
			}
		case *tcell.EventMouse:
			e, ok, down := mouseEvent(ev, buttonDown)
			buttonDown = down
			if ok {
				q.Push(e)
			}
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
}

// keyEvent maps a key to an input event. Terminals report no key releases,
// so every mapped key is a press.
func keyEvent(key tcell.Key, r rune) (input.Event, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit(), true
	case tcell.KeyEnter:
		return input.Restart(), true
	case tcell.KeyUp:
		return input.Direction(entity.DirUp, true), true
	case tcell.KeyDown:
		return input.Direction(entity.DirDown, true), true
	case tcell.KeyLeft:
		return input.Direction(entity.DirLeft, true), true
	case tcell.KeyRight:
		return input.Direction(entity.DirRight, true), true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W', ' ':
			return input.Direction(entity.DirUp, true), true
		case 's', 'S':
			return input.Direction(entity.DirDown, true), true
		case 'a', 'A':
			return input.Direction(entity.DirLeft, true), true
		case 'd', 'D':
			return input.Direction(entity.DirRight, true), true
		case 'r', 'R':
			return input.Restart(), true
		case 'q', 'Q':
			return input.Quit(), true
		}
	}
	return input.Event{}, false
}

// mouseEvent maps button 1 activity to pointer events. It also returns the
// new button state; ok is false when nothing should be queued.
func mouseEvent(ev *tcell.EventMouse, wasDown bool) (e input.Event, ok, down bool) {
	down = ev.Buttons()&tcell.Button1 != 0
	x, y := ev.Position()
	pos := ui.ScreenToWorld(x, y)

	switch {
	case down && !wasDown:
		return input.Pointer(entity.PointerDown, pos.X, pos.Y), true, down
	case down:
		return input.Pointer(entity.PointerMove, pos.X, pos.Y), true, down
	case wasDown:
		return input.Pointer(entity.PointerUp, pos.X, pos.Y), true, down
	default:
		return input.Event{}, false, down
	}
}
