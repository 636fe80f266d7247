package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/pixsnake/internal/config"
	"github.com/vovakirdan/pixsnake/internal/core"
	"github.com/vovakirdan/pixsnake/internal/level"
	"github.com/vovakirdan/pixsnake/internal/storage"
)

type stubFrontend struct{ id string }

func (f stubFrontend) ID() string                               { return f.id }
func (f stubFrontend) Title() string                            { return strings.ToUpper(f.id) }
func (f stubFrontend) Run(ctx context.Context, s *Session) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register(func() Frontend { return stubFrontend{id: "stub-a"} })
	Register(func() Frontend { return stubFrontend{id: "stub-b"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Error("Exists() reports the wrong registrations")
	}

	f, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if f.ID() != "stub-b" {
		t.Errorf("Create() returned %q", f.ID())
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("expected an error for an unknown frontend")
	}

	var ids []string
	for _, f := range List() {
		if strings.HasPrefix(f.ID(), "stub-") {
			ids = append(ids, f.ID()+"="+f.Title())
		}
	}
	if strings.Join(ids, ",") != "stub-a=STUB-A,stub-b=STUB-B" {
		t.Errorf("List() = %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(func() Frontend { return stubFrontend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register(func() Frontend { return stubFrontend{id: "stub-dup"} })
}

func TestRegisterEmptyIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering an empty ID should panic")
		}
	}()
	Register(func() Frontend { return stubFrontend{} })
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	lvl, err := level.Lookup("open")
	if err != nil {
		t.Fatalf("level.Lookup() error: %v", err)
	}
	rt := core.DefaultConfig()
	rt.Seed = 100
	return NewSession(lvl, rt)
}

func TestSessionSeedsAdvancePerRound(t *testing.T) {
	s := newTestSession(t)

	if s.Seed() != 100 {
		t.Errorf("first seed = %d, expected 100", s.Seed())
	}
	if _, err := s.NewGame(); err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	if s.Seed() != 101 {
		t.Errorf("second seed = %d, expected 101", s.Seed())
	}
	if s.Rounds() != 1 {
		t.Errorf("Rounds() = %d, expected 1", s.Rounds())
	}
}

func TestSessionTimeSeed(t *testing.T) {
	s := newTestSession(t)
	s.Runtime.Seed = 0

	first := s.Seed()
	if first == 0 {
		t.Fatal("zero seed should be replaced")
	}
	if s.Seed() != first {
		t.Error("seed must stay fixed within a round")
	}
}

func TestSessionRecord(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	defer store.Close()

	s := newTestSession(t)
	s.Store = store

	if _, ok := s.Last(); ok {
		t.Error("Last() should be empty before any game")
	}

	g, err := s.NewGame()
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	store.SaveScore("open", 12, 16)

	res, err := s.Record(g)
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if res.Score != 0 || res.Length != 4 || res.Best != 12 {
		t.Errorf("Record() = %+v", res)
	}

	last, ok := s.Last()
	if !ok || last != res {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
}

func TestSessionRecordWithoutStore(t *testing.T) {
	s := newTestSession(t)
	g, _ := s.NewGame()

	res, err := s.Record(g)
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if res.Best != res.Score {
		t.Errorf("Best = %d, expected the game's own score", res.Best)
	}
}

func TestSessionSpeed(t *testing.T) {
	s := newTestSession(t)
	if s.Speed(50, 0) != s.Runtime.Speed {
		t.Error("disabled progression should keep the base speed")
	}

	s.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     config.ScalingConfig{SpeedMultiplier: 1},
	}
	if got := s.Speed(10, 0); got != 2*s.Runtime.Speed {
		t.Errorf("Speed() = %d, expected %d", got, 2*s.Runtime.Speed)
	}
}
