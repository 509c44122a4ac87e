package engine

import (
	"testing"

	"github.com/lixenwraith/dungeon-survival/component"
	"github.com/lixenwraith/dungeon-survival/core"
	"github.com/lixenwraith/dungeon-survival/dungeon"
	"github.com/lixenwraith/dungeon-survival/input"
	"github.com/lixenwraith/dungeon-survival/parameter"
)

// recordingSoundPlayer captures cues for assertions.
type recordingSoundPlayer struct {
	played []core.SoundType
}

func (r *recordingSoundPlayer) Play(st core.SoundType) bool {
	r.played = append(r.played, st)
	return true
}

func countStairs(items []component.Item) int {
	n := 0
	for _, it := range items {
		if it.Type == component.ItemStairs {
			n++
		}
	}
	return n
}

func TestInitLevelPopulation(t *testing.T) {
	for _, level := range []int{1, 2, 5} {
		w := NewWorld(11, nil)
		w.Level = level
		w.InitLevel()

		wantEnemies := parameter.EnemyBaseCount + parameter.EnemyCountPerLevel*level
		if len(w.Enemies) != wantEnemies {
			t.Errorf("level %d: %d enemies, want %d", level, len(w.Enemies), wantEnemies)
		}

		wantItems := parameter.ItemBaseCount + parameter.ItemCountPerLevel*level + 1
		if len(w.Items) != wantItems {
			t.Errorf("level %d: %d items, want %d", level, len(w.Items), wantItems)
		}
		if n := countStairs(w.Items); n != 1 {
			t.Errorf("level %d: %d stairs, want exactly 1", level, n)
		}
	}
}

func TestInitLevelSpawnsOnFloor(t *testing.T) {
	w := NewWorld(13, nil)

	if w.Grid.IsWall(w.Player.X, w.Player.Y) {
		t.Error("player spawned inside a wall")
	}
	for _, e := range w.Enemies {
		if w.Grid.IsWall(e.X, e.Y) {
			t.Errorf("enemy spawned in a wall at (%d,%d)", e.X, e.Y)
		}
	}
	for _, it := range w.Items {
		if w.Grid.IsWall(it.X, it.Y) {
			t.Errorf("item spawned in a wall at (%d,%d)", it.X, it.Y)
		}
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	w := NewWorld(1, nil)
	w.Grid = dungeon.ParseGrid([]string{
		"#####",
		"#.#.#",
		"#####",
	})
	w.Player.X, w.Player.Y = 1, 1
	w.Items = nil

	w.ApplyIntent(input.Intent{Type: input.IntentMove, DX: 1, DY: 0})
	if w.Player.X != 1 || w.Player.Y != 1 {
		t.Fatalf("player moved into a wall, now at (%d,%d)", w.Player.X, w.Player.Y)
	}

	w.ApplyIntent(input.Intent{Type: input.IntentMove, DX: 0, DY: -1})
	if w.Player.Y != 1 {
		t.Fatal("player moved through the border")
	}
}

func TestMoveIgnoredAfterGameOver(t *testing.T) {
	w := NewWorld(1, nil)
	w.Grid = dungeon.ParseGrid([]string{
		"#####",
		"#...#",
		"#####",
	})
	w.Player.X, w.Player.Y = 1, 1
	w.Items = nil
	w.GameOver = true

	w.ApplyIntent(input.Intent{Type: input.IntentMove, DX: 1, DY: 0})
	if w.Player.X != 1 {
		t.Fatal("move applied after game over")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	w := NewWorld(1, nil)
	w.Level = 4
	w.Player.Health = 55

	// Restart while alive is ignored
	w.ApplyIntent(input.Intent{Type: input.IntentRestart})
	if w.Level != 4 || w.Player.Health != 55 {
		t.Fatal("restart applied while the game was running")
	}

	w.GameOver = true
	seqBefore := w.LevelSeq
	w.ApplyIntent(input.Intent{Type: input.IntentRestart})

	if w.GameOver {
		t.Error("game over flag survived restart")
	}
	if w.Level != 1 {
		t.Errorf("level %d after restart, want 1", w.Level)
	}
	if w.Player.Health != parameter.PlayerStartingHealth {
		t.Errorf("health %d after restart, want %d", w.Player.Health, parameter.PlayerStartingHealth)
	}
	if w.LevelSeq <= seqBefore {
		t.Error("restart must advance the level sequence so the camera snaps")
	}
}

func TestPickupAppliedAndRemoved(t *testing.T) {
	sounds := &recordingSoundPlayer{}
	w := NewWorld(1, sounds)
	w.Grid = dungeon.ParseGrid([]string{
		"#####",
		"#...#",
		"#####",
	})
	w.Player.X, w.Player.Y = 1, 1
	w.Player.Health = 50
	w.Items = []component.Item{
		component.NewItem(2, 1, component.ItemHealthPotion),
		component.NewItem(3, 1, component.ItemFood),
	}

	w.ApplyIntent(input.Intent{Type: input.IntentMove, DX: 1, DY: 0})

	if w.Player.Health != 50+parameter.PotionHealAmount {
		t.Errorf("health %d after potion, want %d", w.Player.Health, 50+parameter.PotionHealAmount)
	}
	if len(w.Items) != 1 || w.Items[0].Type != component.ItemFood {
		t.Fatalf("items after pickup: %v", w.Items)
	}
	if len(sounds.played) != 1 || sounds.played[0] != core.SoundPotion {
		t.Errorf("cues played: %v, want one potion cue", sounds.played)
	}
}

func TestStackedPickupsResolveTogether(t *testing.T) {
	w := NewWorld(1, nil)
	w.Grid = dungeon.ParseGrid([]string{
		"#####",
		"#...#",
		"#####",
	})
	w.Player.X, w.Player.Y = 1, 1
	atk := w.Player.Attack
	w.Items = []component.Item{
		component.NewItem(2, 1, component.ItemWeapon),
		component.NewItem(2, 1, component.ItemWeapon),
	}

	w.ApplyIntent(input.Intent{Type: input.IntentMove, DX: 1, DY: 0})

	if len(w.Items) != 0 {
		t.Fatalf("%d items remain on a tile the player entered", len(w.Items))
	}
	if w.Player.Attack != atk+2*parameter.WeaponAttackBonus {
		t.Errorf("attack %d, want both weapons applied", w.Player.Attack)
	}
}

func TestStairsAdvanceLevel(t *testing.T) {
	sounds := &recordingSoundPlayer{}
	w := NewWorld(1, sounds)
	w.Grid = dungeon.ParseGrid([]string{
		"#####",
		"#...#",
		"#####",
	})
	w.Player.X, w.Player.Y = 1, 1
	w.Player.Health = 73
	w.Player.Attack = 15
	w.Items = []component.Item{component.NewItem(2, 1, component.ItemStairs)}
	seqBefore := w.LevelSeq

	w.ApplyIntent(input.Intent{Type: input.IntentMove, DX: 1, DY: 0})

	if w.Level != 2 {
		t.Fatalf("level %d after stairs, want 2", w.Level)
	}
	if w.LevelSeq != seqBefore+1 {
		t.Error("level sequence did not advance")
	}
	if w.Player.Health != 73 || w.Player.Attack != 15 {
		t.Error("player stats must carry across levels")
	}
	if n := countStairs(w.Items); n != 1 {
		t.Errorf("%d stairs on the new level, want 1", n)
	}
	wantEnemies := parameter.EnemyBaseCount + parameter.EnemyCountPerLevel*2
	if len(w.Enemies) != wantEnemies {
		t.Errorf("%d enemies on level 2, want %d", len(w.Enemies), wantEnemies)
	}
	if len(sounds.played) != 1 || sounds.played[0] != core.SoundLevel {
		t.Errorf("cues played: %v, want one level cue", sounds.played)
	}
}

func TestSetGameOverFiresOnce(t *testing.T) {
	sounds := &recordingSoundPlayer{}
	w := NewWorld(1, sounds)
	cuesBefore := len(sounds.played)

	w.SetGameOver()
	w.SetGameOver()

	if !w.GameOver {
		t.Fatal("game over not set")
	}
	if got := len(sounds.played) - cuesBefore; got != 1 {
		t.Errorf("death cue played %d times, want 1", got)
	}
}

func TestCameraTargetClamping(t *testing.T) {
	w := NewWorld(1, nil)
	w.Grid = dungeon.ParseGrid([]string{
		"##########",
		"#........#",
		"#........#",
		"#........#",
		"##########",
	})
	w.ViewportWidth, w.ViewportHeight = 6, 4

	// Player near origin: target clamps to 0
	w.Player.X, w.Player.Y = 1, 1
	w.UpdateCameraTarget()
	if w.CameraTargetX != 0 || w.CameraTargetY != 0 {
		t.Errorf("target (%v,%v), want origin clamp", w.CameraTargetX, w.CameraTargetY)
	}

	// Player near the far corner: target clamps to map minus viewport
	w.Player.X, w.Player.Y = 8, 3
	w.UpdateCameraTarget()
	if w.CameraTargetX != 4 || w.CameraTargetY != 1 {
		t.Errorf("target (%v,%v), want (4,1)", w.CameraTargetX, w.CameraTargetY)
	}

	// Viewport larger than the map floors at zero
	w.ViewportWidth, w.ViewportHeight = 50, 50
	w.UpdateCameraTarget()
	if w.CameraTargetX != 0 || w.CameraTargetY != 0 {
		t.Errorf("oversized viewport target (%v,%v), want (0,0)", w.CameraTargetX, w.CameraTargetY)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	w := NewWorld(1, nil)
	snap := w.Snapshot()

	if len(snap.Enemies) != len(w.Enemies) || len(snap.Items) != len(w.Items) {
		t.Fatal("snapshot collection sizes differ from world")
	}

	// Mutating the world must not reach into a taken snapshot
	if len(w.Enemies) > 0 {
		before := snap.Enemies[0].Health
		w.Enemies[0].Health = -999
		if snap.Enemies[0].Health != before {
			t.Error("snapshot shares enemy storage with the world")
		}
	}
}
