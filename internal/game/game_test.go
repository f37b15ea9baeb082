package game

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pelletmaze/internal/entity"
	"github.com/samdwyer/pelletmaze/internal/gamedata"
	"github.com/samdwyer/pelletmaze/internal/geom"
	"github.com/samdwyer/pelletmaze/internal/input"
	"github.com/samdwyer/pelletmaze/internal/ui"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		r      rune
		wantOK bool
		wantEv input.Event
	}{
		{"arrow up", tcell.KeyUp, 0, true, input.Direction(entity.DirUp, true)},
		{"arrow down", tcell.KeyDown, 0, true, input.Direction(entity.DirDown, true)},
		{"arrow left", tcell.KeyLeft, 0, true, input.Direction(entity.DirLeft, true)},
		{"arrow right", tcell.KeyRight, 0, true, input.Direction(entity.DirRight, true)},
		{"w", tcell.KeyRune, 'w', true, input.Direction(entity.DirUp, true)},
		{"space", tcell.KeyRune, ' ', true, input.Direction(entity.DirUp, true)},
		{"S", tcell.KeyRune, 'S', true, input.Direction(entity.DirDown, true)},
		{"a", tcell.KeyRune, 'a', true, input.Direction(entity.DirLeft, true)},
		{"d", tcell.KeyRune, 'd', true, input.Direction(entity.DirRight, true)},
		{"enter", tcell.KeyEnter, 0, true, input.Restart()},
		{"r", tcell.KeyRune, 'r', true, input.Restart()},
		{"escape", tcell.KeyEscape, 0, true, input.Quit()},
		{"q", tcell.KeyRune, 'q', true, input.Quit()},
		{"unmapped rune", tcell.KeyRune, 'x', false, input.Event{}},
		{"unmapped key", tcell.KeyTab, 0, false, input.Event{}},
	}

	for _, tt := range tests {
		got, ok := keyEvent(tt.key, tt.r)
		if ok != tt.wantOK {
			t.Errorf("%s: keyEvent() ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if got != tt.wantEv {
			t.Errorf("%s: keyEvent() = %+v, want %+v", tt.name, got, tt.wantEv)
		}
	}
}

func TestMouseEvent(t *testing.T) {
	// Cell (1, 2) on screen is map tile (0, 0).
	press := tcell.NewEventMouse(1, 2, tcell.Button1, tcell.ModNone)
	ev, ok, down := mouseEvent(press, false)
	if !ok || !down || ev.Pointer != entity.PointerDown {
		t.Fatalf("mouseEvent(press) = (%+v, %v, %v), want pointer down", ev, ok, down)
	}
	if ev.X != 20 || ev.Y != 20 {
		t.Errorf("press position = (%v, %v), want (20, 20)", ev.X, ev.Y)
	}

	drag := tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone)
	ev, ok, down = mouseEvent(drag, true)
	if !ok || !down || ev.Pointer != entity.PointerMove || ev.X != 100 {
		t.Errorf("mouseEvent(drag) = (%+v, %v, %v), want pointer move at x=100", ev, ok, down)
	}

	release := tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone)
	ev, ok, down = mouseEvent(release, true)
	if !ok || down || ev.Pointer != entity.PointerUp {
		t.Errorf("mouseEvent(release) = (%+v, %v, %v), want pointer up", ev, ok, down)
	}

	ev, ok, down = mouseEvent(release, false)
	if ok || down {
		t.Errorf("mouseEvent(hover) = (%+v, %v, %v), want nothing queued", ev, ok, down)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickRate != 16*time.Millisecond {
		t.Errorf("TickRate = %v, want 16ms", cfg.TickRate)
	}
	if cfg.Padding != 4 {
		t.Errorf("Padding = %v, want 4", cfg.Padding)
	}
	if cfg.ScaredDuration != 5*time.Second {
		t.Errorf("ScaredDuration = %v, want 5s", cfg.ScaredDuration)
	}
	if cfg.LevelID != "classic" {
		t.Errorf("LevelID = %q, want classic", cfg.LevelID)
	}
	if cfg.Seed != 0 || cfg.Debug {
		t.Errorf("Seed/Debug = %d/%v, want 0/false", cfg.Seed, cfg.Debug)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PELLETMAZE_SEED", "42")
	t.Setenv("PELLETMAZE_TICK_MS", "20")
	t.Setenv("PELLETMAZE_PADDING", "2.5")
	t.Setenv("PELLETMAZE_SCARED_MS", "3000")
	t.Setenv("PELLETMAZE_LEVEL", "box")
	t.Setenv("PELLETMAZE_DEBUG", "true")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	want := Config{
		Seed:           42,
		TickRate:       20 * time.Millisecond,
		Padding:        2.5,
		ScaredDuration: 3 * time.Second,
		LevelID:        "box",
		Debug:          true,
	}
	if cfg != want {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestConfigFromEnvZeroPadding(t *testing.T) {
	t.Setenv("PELLETMAZE_PADDING", "0")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	if cfg.Padding != 0 {
		t.Errorf("Padding = %v, want 0", cfg.Padding)
	}
}

func TestConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"PELLETMAZE_SEED", "abc"},
		{"PELLETMAZE_TICK_MS", "0"},
		{"PELLETMAZE_TICK_MS", "fast"},
		{"PELLETMAZE_PADDING", "wide"},
		{"PELLETMAZE_PADDING", "NaN"},
		{"PELLETMAZE_PADDING", "-20"},
		{"PELLETMAZE_PADDING", "Inf"},
		{"PELLETMAZE_PADDING", "-Inf"},
		{"PELLETMAZE_SCARED_MS", "-1"},
		{"PELLETMAZE_DEBUG", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := ConfigFromEnv(); err == nil {
				t.Errorf("ConfigFromEnv() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}

func TestScoreboard(t *testing.T) {
	s := NewScoreboard()
	s.AddPoints(10)
	s.AddPoints(50)
	if s.Score() != 60 {
		t.Errorf("Score() = %d, want 60", s.Score())
	}
	if over, _ := s.Result(); over {
		t.Error("Result() over before GameOver")
	}

	s.GameOver(60, false)
	if over, won := s.Result(); !over || won {
		t.Errorf("Result() = (%v, %v), want (true, false)", over, won)
	}

	s.Reset()
	if s.Score() != 0 {
		t.Errorf("Score() after Reset = %d, want 0", s.Score())
	}
	if over, _ := s.Result(); over {
		t.Error("Result() over after Reset")
	}
}

func TestScaredStatus(t *testing.T) {
	now := time.Unix(100, 0)
	def := &testPursuer
	a := entity.NewPursuer(def, geom.Vector2{X: 20, Y: 20})
	b := entity.NewPursuer(def, geom.Vector2{X: 60, Y: 20})
	pursuers := []*entity.Pursuer{a, b}

	if got := scaredStatus(pursuers, now); got != "" {
		t.Errorf("scaredStatus() with none scared = %q, want empty", got)
	}

	a.Frighten(now, 2*time.Second)
	b.Frighten(now, 3500*time.Millisecond)
	tests := []struct {
		at   time.Time
		want string
	}{
		{now, "SCARED x2 3.5s"},
		{now.Add(time.Second), "SCARED x2 2.5s"},
		{now.Add(4 * time.Second), "SCARED x2 0.0s"},
	}
	for _, tt := range tests {
		if got := scaredStatus(pursuers, tt.at); got != tt.want {
			t.Errorf("scaredStatus(%v) = %q, want %q", tt.at.Sub(now), got, tt.want)
		}
	}

	a.Expire(now.Add(2 * time.Second))
	if got := scaredStatus(pursuers, now.Add(2*time.Second)); got != "SCARED x1 1.5s" {
		t.Errorf("scaredStatus() after one recovers = %q, want %q", got, "SCARED x1 1.5s")
	}
}

func newSimulatedGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	screen, err := ui.Wrap(tcell.NewSimulationScreen("UTF-8"))
	if err != nil {
		t.Fatalf("ui.Wrap() error = %v", err)
	}
	player := &gamedata.PlayerDef{Radius: 15, Speed: 5}
	pursuers := gamedata.NewPursuerRegistry([]gamedata.PursuerDef{testPursuer})
	level := pelletRow
	board := NewScoreboard()
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, ui.NewAssets(player, pursuers)),
		engine:   NewEngine(context.Background(), cfg, &level, player, pursuers, board),
		board:    board,
		running:  true,
	}
}

func TestRunRestoresTerminalOnPanic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.TickRate = time.Millisecond
	// Negative padding inverts the padded bounds, which panics inside Tick.
	cfg.Padding = -20
	g := newSimulatedGame(t, cfg)
	g.engine.Restart(context.Background())
	g.engine.Queue().Push(input.Direction(entity.DirRight, true))

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Run() should have panicked")
			}
		}()
		_ = g.Run(context.Background())
	}()

	waitClosed(t, g.screen)
}

func TestRunClosesScreenOnCancel(t *testing.T) {
	g := newSimulatedGame(t, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	waitClosed(t, g.screen)
}

// waitClosed fails unless PollEvent reaches nil, which only a finalized
// screen returns.
func waitClosed(t *testing.T, screen *ui.Screen) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		for screen.PollEvent() != nil {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("screen still open after Run returned")
	}
}
