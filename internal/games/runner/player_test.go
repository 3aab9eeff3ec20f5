package runner

import (
	"testing"
)

func newTestPlayer() *Player {
	// 40x15 playfield: ground row 13, top row 1, play height 12
	return NewPlayer(40, 15, 1, 0.18, 0.36)
}

func TestPlayerStartsGrounded(t *testing.T) {
	p := newTestPlayer()

	if p.X != 10 {
		t.Errorf("X = %d, expected 10 (a quarter of the width)", p.X)
	}
	if p.Y != 13 {
		t.Errorf("Y = %d, expected ground row 13", p.Y)
	}
	if !p.OnGround {
		t.Error("player should start on the ground")
	}
	if p.JumpsUsed != 0 {
		t.Errorf("JumpsUsed = %d, expected 0", p.JumpsUsed)
	}
}

func TestJumpVelocitiesDerivedFromPlayHeight(t *testing.T) {
	// play height 12, gravity 1:
	// V1 = -round(sqrt(2*1*0.18*12)) = -round(2.078) = -2
	// V2 = -round(sqrt(2*1*0.36*12)) = -round(2.939) = -3
	p := newTestPlayer()

	if p.firstJumpVY != -2 {
		t.Errorf("firstJumpVY = %d, expected -2", p.firstJumpVY)
	}
	if p.doubleJumpVY != -3 {
		t.Errorf("doubleJumpVY = %d, expected -3", p.doubleJumpVY)
	}

	// A taller playfield must yield stronger velocities, never a constant.
	tall := NewPlayer(40, 40, 1, 0.18, 0.36)
	if tall.firstJumpVY >= p.firstJumpVY {
		t.Errorf("taller playfield should jump harder: %d vs %d", tall.firstJumpVY, p.firstJumpVY)
	}
}

func TestJumpBudget(t *testing.T) {
	p := newTestPlayer()

	if kind := p.Jump(); kind != JumpFirst {
		t.Fatalf("first jump = %v, expected JumpFirst", kind)
	}
	if p.OnGround {
		t.Error("player should be airborne after first jump")
	}
	if p.JumpsUsed != 1 || p.VY != p.firstJumpVY {
		t.Errorf("after first jump: JumpsUsed=%d VY=%d", p.JumpsUsed, p.VY)
	}

	if kind := p.Jump(); kind != JumpDouble {
		t.Fatalf("second jump = %v, expected JumpDouble", kind)
	}
	if p.JumpsUsed != 2 || p.VY != p.doubleJumpVY {
		t.Errorf("after double jump: JumpsUsed=%d VY=%d", p.JumpsUsed, p.VY)
	}

	// Third attempt is a no-op: no velocity change, no state change
	vyBefore := p.VY
	if kind := p.Jump(); kind != JumpNone {
		t.Fatalf("third jump = %v, expected JumpNone", kind)
	}
	if p.VY != vyBefore || p.JumpsUsed != 2 {
		t.Errorf("third jump must not change state: JumpsUsed=%d VY=%d", p.JumpsUsed, p.VY)
	}
}

func TestJumpsUsedAlwaysInBudget(t *testing.T) {
	p := newTestPlayer()

	for tick := 0; tick < 200; tick++ {
		if tick%3 == 0 {
			p.Jump()
		}
		p.StepGravity()
		if p.JumpsUsed < 0 || p.JumpsUsed > 2 {
			t.Fatalf("tick %d: JumpsUsed = %d outside {0,1,2}", tick, p.JumpsUsed)
		}
	}
}

func TestGravityLandsAndResetsBudget(t *testing.T) {
	p := newTestPlayer()
	p.Jump()

	landed := false
	for tick := 0; tick < 50; tick++ {
		p.StepGravity()
		if p.Y > p.ground {
			t.Fatalf("tick %d: Y = %d below ground %d", tick, p.Y, p.ground)
		}
		if p.OnGround {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("player never landed")
	}
	if p.Y != p.ground || p.VY != 0 {
		t.Errorf("landing should snap: Y=%d VY=%d", p.Y, p.VY)
	}
	if p.JumpsUsed != 0 {
		t.Errorf("landing should reset jump budget, JumpsUsed = %d", p.JumpsUsed)
	}
}

func TestGravityClampsAtTopBound(t *testing.T) {
	// Absurd rise fractions launch the player past the top of the field
	p := NewPlayer(40, 15, 1, 8.0, 9.0)
	p.Jump()

	for tick := 0; tick < 10; tick++ {
		p.StepGravity()
		if p.Y < p.topY {
			t.Fatalf("tick %d: Y = %d above top bound %d", tick, p.Y, p.topY)
		}
		if p.Y == p.topY {
			if p.VY != 0 {
				t.Errorf("top snap should zero velocity, VY = %d", p.VY)
			}
			return
		}
	}
	t.Fatal("player never reached the top bound")
}

func TestMoveClampsToLane(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 50; i++ {
		p.MoveLeft()
	}
	if p.X != 1 {
		t.Errorf("X = %d, expected left clamp at 1", p.X)
	}

	for i := 0; i < 100; i++ {
		p.MoveRight()
	}
	if p.X != 38 {
		t.Errorf("X = %d, expected right clamp at width-2 = 38", p.X)
	}
}
