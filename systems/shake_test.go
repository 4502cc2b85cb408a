package systems

import (
	"math"
	"testing"
)

func TestScreenShakeRunsOut(t *testing.T) {
	w := newTestWorld(t, 7)
	TriggerScreenShake(w, 20, 15)
	shake := screenShake(w)

	want := 20.0
	for i := 0; i < 15; i++ {
		if x, y := ShakeOffset(w); math.Abs(x) > shake.Intensity/2 || math.Abs(y) > shake.Intensity/2 {
			t.Fatalf("frame %d: offset (%f,%f) exceeds half intensity %f", i, x, y, shake.Intensity/2)
		}
		UpdateScreenShake(w)
		want *= 0.9
	}

	if shake.Duration != 0 {
		t.Fatalf("duration after 15 frames: got=%d want=0", shake.Duration)
	}
	if !approx(shake.Intensity, want) {
		t.Fatalf("intensity: got=%f want=%f", shake.Intensity, want)
	}
	for i := 0; i < 5; i++ {
		if x, y := ShakeOffset(w); x != 0 || y != 0 {
			t.Fatalf("offset after shake ended: (%f,%f)", x, y)
		}
	}

	// Further updates leave a finished shake alone.
	UpdateScreenShake(w)
	if shake.Duration != 0 || !approx(shake.Intensity, want) {
		t.Fatalf("finished shake changed: %+v", *shake)
	}
}

func TestScreenShakeLastTriggerWins(t *testing.T) {
	w := newTestWorld(t, 7)
	TriggerScreenShake(w, 20, 15)
	TriggerScreenShake(w, 5, 3)

	shake := screenShake(w)
	if shake.Intensity != 5 || shake.Duration != 3 {
		t.Fatalf("got %+v, want intensity 5 duration 3", *shake)
	}
}

func TestShakeOffsetIdleIsZero(t *testing.T) {
	w := newTestWorld(t, 7)
	if x, y := ShakeOffset(w); x != 0 || y != 0 {
		t.Fatalf("idle offset: (%f,%f)", x, y)
	}
}
