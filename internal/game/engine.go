package game

import (
	"context"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/pelletmaze/internal/collision"
	"github.com/samdwyer/pelletmaze/internal/entity"
	"github.com/samdwyer/pelletmaze/internal/gamedata"
	"github.com/samdwyer/pelletmaze/internal/geom"
	"github.com/samdwyer/pelletmaze/internal/input"
	"github.com/samdwyer/pelletmaze/internal/telemetry"
	"github.com/samdwyer/pelletmaze/internal/world"
)

// ScaredPursuerPoints is awarded for eating a scared pursuer.
const ScaredPursuerPoints = 200

// Engine runs the simulation one fixed step at a time. It owns all game state
// and is not safe for concurrent use; only its input queue is.
type Engine struct {
	cfg         Config
	levelDef    *gamedata.LevelDef
	playerDef   *gamedata.PlayerDef
	pursuerDefs *gamedata.PursuerRegistry
	sink        ScoreSink

	queue    *input.Queue
	resolver *collision.Resolver
	rng      *rand.Rand
	debug    *log.Logger
	session  string

	level    *world.Level
	player   *entity.Player
	pursuers []*entity.Pursuer
	phase    Phase
	score    int
	ticks    int
	quit     bool
}

// NewEngine creates an engine for one level. The level is built and the
// actors placed, but play starts only after Restart.
// A nil sink gets a fresh Scoreboard.
func NewEngine(ctx context.Context, cfg Config, level *gamedata.LevelDef, player *gamedata.PlayerDef, pursuers *gamedata.PursuerRegistry, sink ScoreSink) *Engine {
	if sink == nil {
		sink = NewScoreboard()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	debugOut := io.Discard
	if cfg.Debug {
		debugOut = log.Writer()
	}

	e := &Engine{
		cfg:         cfg,
		levelDef:    level,
		playerDef:   player,
		pursuerDefs: pursuers,
		sink:        sink,
		queue:       input.NewQueue(),
		resolver:    collision.NewResolver(cfg.Padding),
		rng:         rand.New(rand.NewSource(seed)),
		debug:       log.New(debugOut, "[pelletmaze] ", log.Lmicroseconds),
		session:     uuid.NewString(),
		level:       world.NewLevel(ctx, level.Layout()),
		player:      entity.NewPlayer(level.Player.CellPos().Center(), player.Radius, player.Speed),
		phase:       PhaseReady,
	}
	e.spawnPursuers()
	return e
}

// Queue returns the input queue drained by Tick.
func (e *Engine) Queue() *input.Queue { return e.queue }

// Level returns the live level.
func (e *Engine) Level() *world.Level { return e.level }

// Player returns the player.
func (e *Engine) Player() *entity.Player { return e.player }

// Pursuers returns the pursuers still in play.
func (e *Engine) Pursuers() []*entity.Pursuer { return e.pursuers }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the score of the current round.
func (e *Engine) Score() int { return e.score }

// SessionID identifies this engine in traces.
func (e *Engine) SessionID() string { return e.session }

// QuitRequested returns true once a quit event has been drained.
func (e *Engine) QuitRequested() bool { return e.quit }

// Restart rebuilds the level, puts every actor back on its spawn, clears the
// score and starts a new round.
func (e *Engine) Restart(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.restart")
	defer span.End()

	prev := e.phase
	e.level.Restart(ctx)
	e.player.Reset()
	e.spawnPursuers()
	e.score = 0
	e.ticks = 0
	if r, ok := e.sink.(interface{ Reset() }); ok {
		r.Reset()
	}
	e.phase = PhasePlaying

	span.SetAttributes(
		attribute.String("session.id", e.session),
		attribute.String("level.id", e.levelDef.ID),
		attribute.String("previous_phase", prev.String()),
		attribute.Int("pursuers", len(e.pursuers)),
	)
}

func (e *Engine) spawnPursuers() {
	e.pursuers = e.pursuers[:0]
	if e.pursuerDefs.Count() == 0 {
		return
	}
	for i, spawn := range e.levelDef.PursuerSpawns {
		def := e.pursuerDefs.At(i % e.pursuerDefs.Count())
		e.pursuers = append(e.pursuers, entity.NewPursuer(def, spawn.CellPos().Center()))
	}
}

// Tick advances the simulation by one step at simulation time now.
func (e *Engine) Tick(ctx context.Context, now time.Time) {
	for _, p := range e.pursuers {
		p.Expire(now)
	}

	e.drainInput(ctx)
	if e.phase != PhasePlaying {
		return
	}
	e.ticks++

	walls := e.level.Walls()

	e.player.ResolveVelocity()
	for _, axis := range e.player.AxisOrder() {
		e.resolver.TryMove(&e.player.Mover, axis, walls)
	}
	e.player.KeepPrimaryAxis()
	e.clampToMap()
	e.player.UpdatePosition()
	e.player.UpdateOrientation()
	e.debug.Printf("player bounds %+v velocity %+v", e.player.Bounds(), e.player.Velocity)

	for _, p := range e.pursuers {
		p.Steer(e.resolver.BlockedDirections(&p.Mover, walls), e.rng)
		e.resolver.TryMove(&p.Mover, geom.AxisX, walls)
		e.resolver.TryMove(&p.Mover, geom.AxisY, walls)
		p.UpdatePosition()
	}

	caught := e.checkHazards(ctx, now)

	switch {
	case caught:
		e.end(ctx, false)
	case e.level.Cleared():
		e.end(ctx, true)
	}
}

func (e *Engine) drainInput(ctx context.Context) {
	for _, ev := range e.queue.Drain() {
		switch ev.Kind {
		case input.KindRestart:
			e.Restart(ctx)
		case input.KindQuit:
			e.quit = true
		case input.KindDirection:
			if e.phase == PhasePlaying {
				e.player.ApplyDirection(ev.Direction, ev.Pressed)
			}
		case input.KindPointer:
			if e.phase == PhasePlaying {
				e.debug.Printf("pointer %v at (%.0f, %.0f)", ev.Pointer, ev.X, ev.Y)
				e.player.ApplyPointer(ev.Pointer, ev.X, ev.Y)
			}
		}
	}
}

// clampToMap keeps the player inside the map rectangle. A step that would
// cross an edge is cancelled and the player is snapped flush to it.
func (e *Engine) clampToMap() {
	m := &e.player.Mover
	area := e.level.Bounds()
	b := m.Bounds()

	switch {
	case b.Left+m.Velocity.X < area.Left:
		m.Velocity.X = 0
		m.Position.X = area.Left + m.Radius
	case b.Right+m.Velocity.X > area.Right:
		m.Velocity.X = 0
		m.Position.X = area.Right - m.Radius
	}
	switch {
	case b.Top+m.Velocity.Y < area.Top:
		m.Velocity.Y = 0
		m.Position.Y = area.Top + m.Radius
	case b.Bottom+m.Velocity.Y > area.Bottom:
		m.Velocity.Y = 0
		m.Position.Y = area.Bottom - m.Radius
	}
}

// checkHazards scores everything the player touches this tick and removes
// what was eaten. It returns true if an unscared pursuer caught the player.
func (e *Engine) checkHazards(ctx context.Context, now time.Time) bool {
	span := trace.SpanFromContext(ctx)
	pos, radius := e.player.Position, e.player.Radius

	var eatenPellets []int
	for i, pellet := range e.level.Pellets() {
		if geom.CirclesHit(pos, radius, pellet.Center, world.PelletRadius) {
			eatenPellets = append(eatenPellets, i)
			e.addPoints(world.PelletPoints)
		}
	}

	var eatenPowerUps []int
	for i, powerUp := range e.level.PowerUps() {
		if geom.CirclesHit(pos, radius, powerUp.Center, world.PowerUpRadius) {
			eatenPowerUps = append(eatenPowerUps, i)
			e.addPoints(world.PowerUpPoints)
			for _, p := range e.pursuers {
				p.Frighten(now, e.cfg.ScaredDuration)
			}
			span.AddEvent("power_up.eaten", trace.WithAttributes(
				attribute.String("session.id", e.session),
				attribute.Int("score", e.score),
			))
		}
	}

	caught := false
	remaining := e.pursuers[:0:0]
	for _, p := range e.pursuers {
		if caught || !collision.CirclesHit(&e.player.Mover, &p.Mover) {
			remaining = append(remaining, p)
			continue
		}
		e.debug.Printf("pursuer %s contact, overlap ratio %.3f", p.Name(),
			collision.RectOverlapRatio(e.player.Bounds(), p.Bounds()))

		if !p.Scared {
			caught = true
			remaining = append(remaining, p)
			continue
		}
		e.addPoints(ScaredPursuerPoints)
		span.AddEvent("pursuer.eaten", trace.WithAttributes(
			attribute.String("session.id", e.session),
			attribute.String("pursuer", p.Def.ID),
			attribute.Int("score", e.score),
		))
	}

	e.level.RemovePellets(eatenPellets)
	e.level.RemovePowerUps(eatenPowerUps)
	e.pursuers = remaining
	return caught
}

func (e *Engine) addPoints(points int) {
	e.score += points
	e.sink.AddPoints(points)
}

func (e *Engine) end(ctx context.Context, won bool) {
	e.phase = PhaseLost
	if won {
		e.phase = PhaseWon
	} else {
		e.player.Kill()
	}
	e.sink.GameOver(e.score, won)

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("session.id", e.session),
		attribute.String("level.id", e.levelDef.ID),
		attribute.String("outcome", e.phase.String()),
		attribute.Int("score", e.score),
		attribute.Int("ticks", e.ticks),
		attribute.Int("pellets_left", len(e.level.Pellets())),
	)
	span.End()
}
