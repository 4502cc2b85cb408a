package systems

import (
	"testing"

	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/systems/factory"
)

func TestShootRevertsToIdle(t *testing.T) {
	w := newTestWorld(t, 1)
	player := factory.CreatePlayer(w, 1, cfg.SideHome, 150, 225)
	state := components.State.Get(player)

	if !Shoot(player) {
		t.Fatal("shoot refused")
	}
	for i := 0; i < cfg.Player.ShootFrames; i++ {
		UpdateCharacters(w)
	}
	if state.CurrentState != cfg.StateShooting {
		t.Fatalf("after %d frames: got=%s want=shooting", cfg.Player.ShootFrames, state.CurrentState)
	}
	UpdateCharacters(w)
	if state.CurrentState != cfg.StateIdle || state.StateTimer != 0 {
		t.Fatalf("after %d frames: got=%s timer=%d want idle", cfg.Player.ShootFrames+1, state.CurrentState, state.StateTimer)
	}
}

func TestShootRestartsClock(t *testing.T) {
	w := newTestWorld(t, 1)
	player := factory.CreatePlayer(w, 1, cfg.SideHome, 150, 225)
	state := components.State.Get(player)

	Shoot(player)
	for i := 0; i < 15; i++ {
		UpdateCharacters(w)
	}
	Shoot(player)
	if state.StateTimer != 0 || state.CurrentState != cfg.StateShooting {
		t.Fatalf("second shot: %+v", *state)
	}
	for i := 0; i < cfg.Player.ShootFrames; i++ {
		UpdateCharacters(w)
	}
	if state.CurrentState != cfg.StateShooting {
		t.Fatal("second shot cut short")
	}
}

func TestMoveStepsTowardTarget(t *testing.T) {
	w := newTestWorld(t, 1)
	player := factory.CreatePlayer(w, 1, cfg.SideHome, 400, 225)

	if !RequestMove(player, 300, 225) {
		t.Fatal("move refused")
	}
	UpdateCharacters(w)

	ch := components.Character.Get(player)
	if !approx(ch.Position.X, 400-cfg.Player.MaxSpeed) || ch.Position.Y != 225 {
		t.Fatalf("position: got=(%f,%f)", ch.Position.X, ch.Position.Y)
	}
	if ch.Facing != cfg.DirectionLeft {
		t.Fatalf("facing: got=%f want left", ch.Facing)
	}
	if got := components.State.Get(player).CurrentState; got != cfg.StateMoving {
		t.Fatalf("state: got=%s want=moving", got)
	}
}

func TestMoveArrivesExactly(t *testing.T) {
	w := newTestWorld(t, 1)
	player := factory.CreatePlayer(w, 1, cfg.SideHome, 400, 225)
	RequestMove(player, 433, 229)

	for i := 0; i < 5; i++ {
		UpdateCharacters(w)
	}
	ch := components.Character.Get(player)
	if ch.Position.X != 433 || ch.Position.Y != 229 {
		t.Fatalf("position: got=(%f,%f) want=(433,229)", ch.Position.X, ch.Position.Y)
	}
	if components.Intent.Get(player).HasTarget {
		t.Fatal("target kept after arrival")
	}
}

func TestMoveStaysOnPitch(t *testing.T) {
	w := newTestWorld(t, 1)
	player := factory.CreatePlayer(w, 1, cfg.SideHome, 100, 225)
	ch := components.Character.Get(player)

	for i := 0; i < 60; i++ {
		RequestMove(player, -100, -50)
		UpdateCharacters(w)
		if ch.Position.X < ch.Radius || ch.Position.X > testWidth-ch.Radius {
			t.Fatalf("frame %d: x=%f off pitch", i, ch.Position.X)
		}
		if ch.Position.Y < ch.Radius || ch.Position.Y > testHeight-ch.Radius {
			t.Fatalf("frame %d: y=%f off pitch", i, ch.Position.Y)
		}
	}
	if ch.Position.X != ch.Radius || ch.Position.Y != ch.Radius {
		t.Fatalf("position: got=(%f,%f) want=(%f,%f)", ch.Position.X, ch.Position.Y, ch.Radius, ch.Radius)
	}
}

func TestMovingDecaysToIdleWithoutIntent(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w := newTestWorld(t, seed)
		player := factory.CreatePlayer(w, 1, cfg.SideHome, 400, 225)
		state := components.State.Get(player)

		RequestMove(player, 100, 225)
		UpdateCharacters(w)
		for i := 0; i < cfg.Player.IdleGraceFrames && state.CurrentState == cfg.StateMoving; i++ {
			UpdateCharacters(w)
		}
		if state.CurrentState != cfg.StateIdle {
			t.Fatalf("seed %d: still %s after %d frames without intent", seed, state.CurrentState, cfg.Player.IdleGraceFrames)
		}
	}
}

func TestMovingHeldWhileIntentArrives(t *testing.T) {
	w := newTestWorld(t, 4)
	player := factory.CreatePlayer(w, 1, cfg.SideHome, 400, 225)
	state := components.State.Get(player)

	for i := 0; i < 100; i++ {
		RequestMove(player, 200, 225)
		UpdateCharacters(w)
		if state.CurrentState != cfg.StateMoving {
			t.Fatalf("frame %d: got=%s want=moving", i, state.CurrentState)
		}
	}
	if state.StateTimer != 100 {
		t.Fatalf("timer: got=%d want=100", state.StateTimer)
	}
}

func TestRequestMoveRejectsGoalkeeper(t *testing.T) {
	w := newTestWorld(t, 1)
	keeper := spawnKeeper(t, w)

	if RequestMove(keeper, 100, 100) || Shoot(keeper) {
		t.Fatal("goalkeeper accepted player input")
	}
	if RequestMove(nil, 1, 1) || Shoot(nil) {
		t.Fatal("nil entry accepted input")
	}
}

func TestGoalkeeperTracksWithinLane(t *testing.T) {
	w := newTestWorld(t, 1)
	keeper := spawnKeeper(t, w)
	placeBall(t, w, 400, 400, 0, 0)
	ch := components.Character.Get(keeper)
	state := components.State.Get(keeper)
	lane := components.Keeper.Get(keeper)

	UpdateCharacters(w)
	if !approx(ch.Position.Y, 225+cfg.Keeper.MaxSpeed) {
		t.Fatalf("first step: got=%f want=%f", ch.Position.Y, 225+cfg.Keeper.MaxSpeed)
	}
	if state.CurrentState != cfg.StateTracking {
		t.Fatalf("state: got=%s want=tracking", state.CurrentState)
	}

	for i := 0; i < 100; i++ {
		UpdateCharacters(w)
	}
	if ch.Position.Y != lane.LaneMaxY || ch.Position.X != lane.LaneX {
		t.Fatalf("position: got=(%f,%f) want=(%f,%f)", ch.Position.X, ch.Position.Y, lane.LaneX, lane.LaneMaxY)
	}
	if lane.LaneMaxY != 225+cfg.Keeper.LaneHalfSpan {
		t.Fatalf("lane max: got=%f", lane.LaneMaxY)
	}
	if state.CurrentState != cfg.StateIdle {
		t.Fatalf("state at lane end: got=%s want=idle", state.CurrentState)
	}
}
