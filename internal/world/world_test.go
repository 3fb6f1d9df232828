package world

import (
	"testing"

	"github.com/silbinarywolf/toy-offside-board/internal/ent"
)

var testTokenSize = ent.Size{Width: 30, Height: 30}

func newTestScene() *Scene {
	return New(640, 480, testTokenSize, DefaultLayout(640, 480, testTokenSize))
}

func TestDefaultLayout(t *testing.T) {
	scene := newTestScene()
	if len(scene.Defenders) != 5 {
		t.Fatalf("expected 5 defending tokens, got %d", len(scene.Defenders))
	}
	if len(scene.Attackers) != 2 {
		t.Fatalf("expected 2 attacking tokens, got %d", len(scene.Attackers))
	}
	goalkeepers := 0
	for _, token := range scene.Defenders {
		if token.Role == ent.RoleGoalkeeper {
			goalkeepers++
			if want := (ent.Point{X: 290, Y: 30}); token.Position != want {
				t.Errorf("goalkeeper at %v, expected %v", token.Position, want)
			}
		}
		if token.Size != testTokenSize {
			t.Errorf("token %s has size %v", token.Identity, token.Size)
		}
	}
	if goalkeepers != 1 {
		t.Errorf("expected exactly one goalkeeper, got %d", goalkeepers)
	}
	for _, token := range scene.Attackers {
		if token.Role != ent.RoleAttacker {
			t.Errorf("token %s in attackers has role %s", token.Identity, token.Role)
		}
	}
	if got := scene.Find("9"); got == nil || got.Position != (ent.Point{X: 256, Y: 240}) {
		t.Errorf("unexpected position for number 9: %+v", got)
	}
}

func TestTokenAtPrefersDefenders(t *testing.T) {
	layout := Layout{
		{Role: ent.RoleAttacker, Identity: "9", Position: ent.Point{X: 100, Y: 100}},
		{Role: ent.RoleDefender, Identity: "5", Position: ent.Point{X: 110, Y: 110}},
	}
	scene := New(640, 480, testTokenSize, layout)

	// overlap region belongs to both tokens
	if got := scene.TokenAt(ent.Point{X: 120, Y: 120}); got == nil || got.Identity != "5" {
		t.Errorf("expected defender to win overlapping hit-test, got %v", got)
	}
	if got := scene.TokenAt(ent.Point{X: 100, Y: 100}); got == nil || got.Identity != "9" {
		t.Errorf("expected attacker outside the overlap, got %v", got)
	}
	if got := scene.TokenAt(ent.Point{X: -1, Y: -1}); got != nil {
		t.Errorf("expected no token off the board, got %v", got)
	}
}

func TestThresholdIsOneShot(t *testing.T) {
	scene := newTestScene()
	if _, ok := scene.TakeThreshold(); ok {
		t.Fatalf("new scene should not have a pending threshold")
	}
	scene.ShowThreshold(120)
	y, ok := scene.TakeThreshold()
	if !ok || y != 120 {
		t.Fatalf("expected pending threshold at 120, got %d (%v)", y, ok)
	}
	if _, ok := scene.TakeThreshold(); ok {
		t.Errorf("threshold should be cleared after it is taken")
	}
}

func TestSnapshotRestore(t *testing.T) {
	scene := newTestScene()
	data, err := scene.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	before := scene.Find("7").Position

	scene.Find("7").MoveTo(ent.Point{X: -20, Y: 900})
	scene.Find("1").Translate(ent.Point{X: 5, Y: 5})

	if err := scene.Restore(data); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if got := scene.Find("7"); got.Position != before {
		t.Errorf("number 7 restored to %v, expected %v", got.Position, before)
	}
	if got := scene.Find("1"); got.Position != (ent.Point{X: 290, Y: 30}) || got.Role != ent.RoleGoalkeeper {
		t.Errorf("goalkeeper not restored: %+v", got)
	}
	if len(scene.Defenders) != 5 || len(scene.Attackers) != 2 {
		t.Errorf("restore changed roster: %d defenders, %d attackers", len(scene.Defenders), len(scene.Attackers))
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	scene := newTestScene()
	if err := scene.Restore([]byte{1, 2}); err == nil {
		t.Errorf("expected error restoring truncated snapshot")
	}
	if len(scene.Attackers) != 2 {
		t.Errorf("failed restore should leave scene untouched")
	}
}
