package registry

import (
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string                         { return g.id }
func (g fakeGame) Title() string                      { return "Fake " + g.id }
func (fakeGame) Reset(core.RuntimeConfig)             {}
func (fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (fakeGame) Render(*core.Screen)                  {}
func (fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	calls := 0
	Register("zz-fake", func() Game {
		calls++
		return fakeGame{id: "zz-fake"}
	})
	if calls != 0 {
		t.Errorf("Register built %d instances, want none", calls)
	}

	if !Exists("zz-fake") {
		t.Fatal("registered game not found")
	}
	g, err := Create("zz-fake")
	if err != nil || g.ID() != "zz-fake" {
		t.Fatalf("Create = %v, %v", g, err)
	}

	// Every Create returns a fresh instance
	if g2, _ := Create("zz-fake"); g2.Title() != "Fake zz-fake" {
		t.Errorf("second instance title = %q", g2.Title())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("unknown game created")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return fakeGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	Register("zz-dup", func() Game { return fakeGame{id: "zz-dup"} })
}
