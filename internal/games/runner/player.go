package runner

import (
	"math"

	"github.com/vovakirdan/hopline/internal/core"
)

// JumpKind reports what a jump attempt did.
type JumpKind int

const (
	JumpNone   JumpKind = iota // budget exhausted, nothing happened
	JumpFirst                  // left the ground
	JumpDouble                 // mid-air second jump
)

// Player tracks the marker's lane position and vertical motion.
// All positions are screen coordinates; Y grows downward, so jump
// velocities are negative.
type Player struct {
	X         int  // Lane column
	Y         int  // Vertical position within [topY, groundY]
	VY        int  // Vertical velocity, gravity pulls it positive
	OnGround  bool
	JumpsUsed int // 0..2; resets only when the player lands

	minX, maxX   int
	topY, ground int
	gravity      int
	firstJumpVY  int
	doubleJumpVY int
}

// NewPlayer places the player on the ground a quarter of the way in.
// Jump velocities are derived from the configured peak heights: the velocity
// that makes a body under constant gravity rise h cells is -sqrt(2*g*h), so
// the double jump at twice the rise fraction reaches roughly twice as high.
func NewPlayer(screenW, screenH, gravity int, firstRise, secondRise float64) *Player {
	ground := screenH - 2
	top := 1
	playH := float64(ground - top)

	return &Player{
		X:            screenW / 4,
		Y:            ground,
		OnGround:     true,
		minX:         1,
		maxX:         screenW - 2,
		topY:         top,
		ground:       ground,
		gravity:      gravity,
		firstJumpVY:  -int(math.Round(math.Sqrt(2 * float64(gravity) * firstRise * playH))),
		doubleJumpVY: -int(math.Round(math.Sqrt(2 * float64(gravity) * secondRise * playH))),
	}
}

// MoveLeft shifts the player one column left, clamped to the playfield.
func (p *Player) MoveLeft() {
	p.X = core.Clamp(p.X-1, p.minX, p.maxX)
}

// MoveRight shifts the player one column right, clamped to the playfield.
func (p *Player) MoveRight() {
	p.X = core.Clamp(p.X+1, p.minX, p.maxX)
}

// Jump spends one unit of the two-jump budget.
// On the ground it launches the first jump; airborne with one jump used it
// fires the stronger double jump; otherwise it is a no-op.
func (p *Player) Jump() JumpKind {
	switch {
	case p.OnGround:
		p.VY = p.firstJumpVY
		p.OnGround = false
		p.JumpsUsed = 1
		return JumpFirst
	case p.JumpsUsed == 1:
		p.VY = p.doubleJumpVY
		p.JumpsUsed = 2
		return JumpDouble
	default:
		return JumpNone
	}
}

// StepGravity advances vertical motion by one tick.
// Landing snaps to the ground, zeroes velocity and restores the jump budget;
// the top bound snaps without restoring it, so the player cannot escape the
// playfield upward.
func (p *Player) StepGravity() {
	p.Y += p.VY
	p.VY += p.gravity

	if p.Y >= p.ground {
		p.Y = p.ground
		p.VY = 0
		p.OnGround = true
		p.JumpsUsed = 0
	} else if p.Y < p.topY {
		p.Y = p.topY
		p.VY = 0
	}
}

// GroundY returns the ground row for this playfield.
func (p *Player) GroundY() int {
	return p.ground
}
