package systems

import (
	"strings"
	"testing"

	"github.com/tbeech/molehollow/archetypes"
	"github.com/tbeech/molehollow/assets/animations"
	"github.com/tbeech/molehollow/components"
	"github.com/tbeech/molehollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// setDelta pins the frame clock so systems observe a fixed step.
func setDelta(e *ecs.ECS, dt float64) {
	td := GetOrCreateTime(e)
	td.Started = true
	td.Delta = dt
}

func spawnAnimated(t *testing.T, e *ecs.ECS, policy animations.Policy, frameCount int) *donburi.Entry {
	t.Helper()
	def, err := animations.NewDefinition("critter", 0, frameCount-1, 0.1, policy)
	if err != nil {
		t.Fatalf("NewDefinition failed: %v", err)
	}
	entry := archetypes.AnimatedSprite.Spawn(e)
	components.Animation.SetValue(entry, components.AnimationData{
		Anim: animations.NewAnimation(def),
		Name: "test",
	})
	components.SpriteMeta.SetValue(entry, components.SpriteMetaData{
		SheetName: "critter",
		Index:     def.Frames[0],
	})
	return entry
}

func tick(e *ecs.ECS, dt float64) {
	setDelta(e, dt)
	UpdateAnimations(e)
}

func TestUpdateAnimationsRewritesIndexAndClearsMarker(t *testing.T) {
	e := newTestECS()
	entry := spawnAnimated(t, e, animations.Repeat, 4)
	entry.AddComponent(tags.SpriteBound)

	tick(e, 0.1)

	meta := components.SpriteMeta.Get(entry)
	if meta.Index != 1 {
		t.Errorf("Expected index 1 after one interval, got %d", meta.Index)
	}
	if entry.HasComponent(tags.SpriteBound) {
		t.Error("Expected bound marker to be cleared when the index changes")
	}
}

func TestUpdateAnimationsKeepsMarkerWhileFrameHolds(t *testing.T) {
	e := newTestECS()
	entry := spawnAnimated(t, e, animations.Repeat, 4)
	entry.AddComponent(tags.SpriteBound)

	tick(e, 0.04)

	meta := components.SpriteMeta.Get(entry)
	if meta.Index != 0 {
		t.Errorf("Expected index to hold at 0, got %d", meta.Index)
	}
	if !entry.HasComponent(tags.SpriteBound) {
		t.Error("Expected bound marker to survive a tick without frame change")
	}
}

func TestOnceCompletionDetachesAnimation(t *testing.T) {
	e := newTestECS()
	entry := spawnAnimated(t, e, animations.Once, 2)

	tick(e, 0.1) // advance to final frame
	if !entry.HasComponent(components.Animation) {
		t.Fatal("Animation must stay attached until completion")
	}

	tick(e, 0.1) // final frame's interval elapses
	if !entry.Valid() {
		t.Fatal("Once completion must keep the entity")
	}
	if entry.HasComponent(components.Animation) {
		t.Error("Expected Animation component removed on Once completion")
	}

	// The entity keeps showing its final frame.
	meta := components.SpriteMeta.Get(entry)
	if meta.Index != 1 {
		t.Errorf("Expected frozen index 1, got %d", meta.Index)
	}

	// Further passes must not touch the frozen entity.
	tick(e, 0.1)
	if !entry.Valid() {
		t.Error("Frozen entity must survive later animation passes")
	}
}

func TestDespawnCompletionRemovesEntity(t *testing.T) {
	e := newTestECS()
	entry := spawnAnimated(t, e, animations.Despawn, 2)

	tick(e, 0.1)
	if !entry.Valid() {
		t.Fatal("Entity must survive until the final frame has displayed")
	}

	tick(e, 0.1)
	if entry.Valid() {
		t.Error("Expected entity removed on Despawn completion")
	}

	count := 0
	components.Animation.Each(e.World, func(*donburi.Entry) { count++ })
	if count != 0 {
		t.Errorf("Expected no animated entities left, got %d", count)
	}
}

func TestUpdateAnimationsHandlesManyEntities(t *testing.T) {
	e := newTestECS()
	repeat := spawnAnimated(t, e, animations.Repeat, 4)
	despawn := spawnAnimated(t, e, animations.Despawn, 2)
	once := spawnAnimated(t, e, animations.Once, 2)

	for i := 0; i < 3; i++ {
		tick(e, 0.1)
	}

	if !repeat.Valid() || !repeat.HasComponent(components.Animation) {
		t.Error("Repeat entity must keep animating")
	}
	if despawn.Valid() {
		t.Error("Despawn entity should be gone")
	}
	if !once.Valid() || once.HasComponent(components.Animation) {
		t.Error("Once entity should be frozen without its Animation component")
	}
}

func insertTestLibrary(t *testing.T, e *ecs.ECS) {
	t.Helper()
	library := GetOrCreateAnimationLibrary(e)

	walk, err := animations.NewDefinition("critter", 0, 3, 0.1, animations.Repeat)
	if err != nil {
		t.Fatalf("NewDefinition failed: %v", err)
	}
	sleep, err := animations.NewDefinition("critter", 4, 7, 0.1, animations.Once)
	if err != nil {
		t.Fatalf("NewDefinition failed: %v", err)
	}
	library.Insert("critter_walk", walk)
	library.Insert("critter_sleep", sleep)
}

func TestSetAnimationSwitches(t *testing.T) {
	e := newTestECS()
	insertTestLibrary(t, e)
	entry := spawnAnimated(t, e, animations.Repeat, 4)
	entry.AddComponent(tags.SpriteBound)

	if err := SetAnimation(e, entry, "critter_sleep"); err != nil {
		t.Fatalf("SetAnimation failed: %v", err)
	}

	ad := components.Animation.Get(entry)
	if ad.Name != "critter_sleep" {
		t.Errorf("Expected animation name critter_sleep, got %q", ad.Name)
	}
	meta := components.SpriteMeta.Get(entry)
	if meta.Index != 4 {
		t.Errorf("Expected first frame of the new animation (4), got %d", meta.Index)
	}
	if entry.HasComponent(tags.SpriteBound) {
		t.Error("Expected bound marker cleared on animation switch")
	}
}

func TestSetAnimationSameNameDoesNotRestart(t *testing.T) {
	e := newTestECS()
	insertTestLibrary(t, e)
	entry := spawnAnimated(t, e, animations.Repeat, 4)

	if err := SetAnimation(e, entry, "critter_walk"); err != nil {
		t.Fatalf("SetAnimation failed: %v", err)
	}
	tick(e, 0.1) // advance playback to frame 1

	if err := SetAnimation(e, entry, "critter_walk"); err != nil {
		t.Fatalf("SetAnimation failed: %v", err)
	}
	ad := components.Animation.Get(entry)
	if ad.Anim.Index() != 1 {
		t.Errorf("Expected playback position preserved at frame 1, got %d", ad.Anim.Index())
	}
}

func TestSetAnimationUnknownName(t *testing.T) {
	e := newTestECS()
	insertTestLibrary(t, e)
	entry := spawnAnimated(t, e, animations.Repeat, 4)

	err := SetAnimation(e, entry, "critter_moonwalk")
	if err == nil {
		t.Fatal("Expected error for unknown animation name")
	}
	if !strings.Contains(err.Error(), "critter_moonwalk") {
		t.Errorf("Expected error to name the animation, got %v", err)
	}
}

func TestSetAnimationReattachesAfterOnce(t *testing.T) {
	e := newTestECS()
	insertTestLibrary(t, e)
	entry := spawnAnimated(t, e, animations.Repeat, 4)

	if err := SetAnimation(e, entry, "critter_sleep"); err != nil {
		t.Fatalf("SetAnimation failed: %v", err)
	}
	// Run the four-frame Once animation to completion and detachment.
	for i := 0; i < 5; i++ {
		tick(e, 0.1)
	}
	if entry.HasComponent(components.Animation) {
		t.Fatal("Expected Animation detached after Once completion")
	}

	if err := SetAnimation(e, entry, "critter_sleep"); err != nil {
		t.Fatalf("SetAnimation failed to reattach: %v", err)
	}
	if !entry.HasComponent(components.Animation) {
		t.Fatal("Expected Animation component reattached")
	}
	meta := components.SpriteMeta.Get(entry)
	if meta.Index != 4 {
		t.Errorf("Expected replay from frame 4, got %d", meta.Index)
	}
}
