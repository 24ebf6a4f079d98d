package entity

import (
	"math"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/core"
)

// Anim is the player's animation state, exposed for renderers.
type Anim uint8

const (
	AnimStanding Anim = iota
	AnimJumping
	AnimGrabbing
)

func (a Anim) String() string {
	switch a {
	case AnimStanding:
		return "standing"
	case AnimJumping:
		return "jumping"
	case AnimGrabbing:
		return "grabbing"
	default:
		return "unknown"
	}
}

// StepEvents reports what happened to the player during one Step.
type StepEvents struct {
	Hit      bool   // touched an enemy
	Defeated bool   // hitpoints ran out and the player was knocked down
	Grabbed  Handle // balloon grabbed this tick, NoHandle otherwise
	Released bool   // let go of a balloon this tick
}

// Player is the climber. It lives outside the Registry and refers to the
// balloon it holds by handle only.
//
// X, Y is the top-left corner. The floor line is worldH - H.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	cfg            config.PlayerConfig
	worldW, worldH float64

	falling      bool
	held         Handle
	anim         Anim
	grabCooldown int
	jumpCooldown int
	hitpoints    int
}

// NewPlayer creates a player standing at the configured start position.
func NewPlayer(cfg config.PlayerConfig, worldW, worldH float64) *Player {
	p := &Player{cfg: cfg, worldW: worldW, worldH: worldH}
	p.Reset()
	return p
}

// Reset puts the player back at the start with full hitpoints.
func (p *Player) Reset() {
	p.W, p.H = p.cfg.Width, p.cfg.Height
	p.X, p.Y = p.cfg.StartX, p.cfg.StartY
	p.VX, p.VY = 0, 0
	p.falling = false
	p.held = NoHandle
	p.anim = AnimStanding
	p.grabCooldown, p.jumpCooldown = 0, 0
	p.hitpoints = p.cfg.MaxHitpoints
}

func (p *Player) Kind() Kind { return KindPlayer }

func (p *Player) Pos() (float64, float64) { return p.X, p.Y }

// Bounds returns the player's box, or an empty box for a nil player.
func (p *Player) Bounds() core.Box {
	if p == nil {
		return core.Box{}
	}
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Shift moves the player vertically with the world scroll.
func (p *Player) Shift(dy float64) { p.Y += dy }

// Center returns the middle of the player's box.
func (p *Player) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// Anchor is where the player's hands are: the top-center of the box.
func (p *Player) Anchor() (float64, float64) {
	return p.X + p.W/2, p.Y
}

func (p *Player) Anim() Anim { return p.anim }

func (p *Player) Grabbing() bool { return p.held != NoHandle }

// Held returns the handle of the balloon being held, or NoHandle.
func (p *Player) Held() Handle { return p.held }

func (p *Player) Falling() bool { return p.falling }

func (p *Player) Hitpoints() int { return p.hitpoints }

func (p *Player) GrabCooldown() int { return p.grabCooldown }

func (p *Player) JumpCooldown() int { return p.jumpCooldown }

func (p *Player) floorY() float64 { return p.worldH - p.H }

// OnFloor reports whether the player stands on the floor line.
func (p *Player) OnFloor() bool { return p.Y >= p.floorY() }

// MoveLeft teleports one step left, clamped to the world.
func (p *Player) MoveLeft() {
	p.X = core.ClampF(p.X-p.cfg.MoveSpeed, 0, p.worldW-p.W)
	p.VX = 0
}

// MoveRight teleports one step right, clamped to the world.
func (p *Player) MoveRight() {
	p.X = core.ClampF(p.X+p.cfg.MoveSpeed, 0, p.worldW-p.W)
	p.VX = 0
}

// MoveDown drops the player a quarter step.
func (p *Player) MoveDown() {
	p.Y = math.Min(p.Y+p.cfg.MoveSpeed/4, p.floorY())
}

// Jump launches the player upward. It lets go of a held balloon and blocks
// re-grabbing for the grab cooldown. It reports whether the jump happened.
func (p *Player) Jump() bool {
	if p.jumpCooldown != 0 || p.Y <= 0 || p.falling {
		return false
	}
	p.Release()
	p.VY = -p.cfg.JumpSpeed
	p.falling = true
	p.anim = AnimJumping
	p.grabCooldown = p.cfg.GrabCooldown
	return true
}

// Grab takes hold of b and starts it rising.
func (p *Player) Grab(b *Balloon) {
	p.VX, p.VY = 0, 0
	p.held = b.Handle()
	p.falling = false
	p.anim = AnimGrabbing
	p.jumpCooldown = p.cfg.JumpCooldown
	b.Touch()
}

// Release lets go of the held balloon, if any. Both cooldowns are cleared
// so the player can jump or grab again right away.
func (p *Player) Release() bool {
	if p.held == NoHandle {
		return false
	}
	p.held = NoHandle
	p.grabCooldown, p.jumpCooldown = 0, 0
	p.anim = AnimJumping
	return true
}

// Step advances the player by one tick against the entities in reg.
func (p *Player) Step(in core.InputFrame, reg *Registry) StepEvents {
	var ev StepEvents
	wasGrabbing := p.Grabbing()

	p.applyInput(in)

	if p.jumpCooldown > 0 {
		p.jumpCooldown--
	}

	p.collide(reg, &ev)

	if p.Grabbing() {
		if p.ride(reg) {
			return ev
		}
		p.Release()
	}
	ev.Released = wasGrabbing

	if p.grabCooldown > 0 {
		p.grabCooldown--
	}
	p.stepY()
	p.stepX()
	return ev
}

func (p *Player) applyInput(in core.InputFrame) {
	if in.RequestJump {
		p.Jump()
	}
	if in.TapValid {
		p.tapMove(in.TapX, in.TapY)
		return
	}
	if in.Has(core.ActionLeft) {
		p.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		p.MoveRight()
	}
	if in.Has(core.ActionUp) || in.Has(core.ActionJump) {
		p.Jump()
	}
	if in.Has(core.ActionDown) {
		p.MoveDown()
	}
}

// tapMove steers toward a tap in world units. Taps close to the player's
// center are ignored so that holding still does not jitter.
func (p *Player) tapMove(tx, ty float64) {
	cx, cy := p.Center()
	dx := tx - cx
	if math.Abs(dx) <= math.Max(p.cfg.TapDeadzone, p.cfg.MoveSpeed) {
		p.VX = 0
	} else {
		vx := core.Sign(dx) * p.cfg.MoveSpeed * math.Min(math.Abs(dx)/p.cfg.TapRamp, 1)
		if nx := p.X + vx; nx >= 0 && nx <= p.worldW-p.W {
			p.VX = vx
		} else {
			p.VX = 0
		}
	}
	if ty-cy < -p.cfg.TapJumpThreshold {
		p.Jump()
	}
}

func (p *Player) collide(reg *Registry, ev *StepEvents) {
	var grab *Balloon
	touchedEnemy := false

	for _, e := range reg.FindOverlapping(p, NoHandle) {
		switch e := e.(type) {
		case *Enemy:
			touchedEnemy = true
			p.hitpoints--
		case *Balloon:
			if grab == nil && !e.Popped() {
				grab = e
			}
		default:
			panic("entity: unexpected entity type in collision")
		}
	}

	if touchedEnemy {
		ev.Hit = true
		if p.hitpoints <= 0 {
			p.knockDown()
			ev.Defeated = true
			return
		}
	} else {
		p.hitpoints = p.cfg.MaxHitpoints
	}

	if grab != nil && !p.Grabbing() && p.grabCooldown == 0 {
		p.Grab(grab)
		ev.Grabbed = grab.Handle()
	}
}

// knockDown drops the player onto the floor line.
func (p *Player) knockDown() {
	p.Release()
	p.Y = p.floorY()
	p.VX, p.VY = 0, 0
	p.falling = false
	p.anim = AnimStanding
}

// ride keeps the player on its balloon. It reports false when the balloon
// is gone, popped or no longer within reach.
func (p *Player) ride(reg *Registry) bool {
	b := reg.Balloon(p.held)
	if b == nil || b.Popped() || !core.Overlaps(p, b) {
		return false
	}

	p.Y -= b.RisingSpeed
	p.VX = 0

	ax, ay := p.Anchor()
	tx, ty := b.Attachment()
	if d := tx - ax; math.Abs(d) > p.cfg.NudgeDeadband {
		p.X += core.Sign(d) * p.cfg.NudgeStep
	}
	if d := ty - ay; math.Abs(d) > p.cfg.NudgeDeadband {
		p.Y += core.Sign(d) * p.cfg.NudgeStep
	}
	return true
}

func (p *Player) stepY() {
	p.VY += p.cfg.Gravity
	if tv := p.cfg.TerminalVelocity; tv > 0 && p.VY > tv {
		p.VY = tv
	}
	p.Y += p.VY

	if p.Y >= p.floorY() {
		p.Y = p.floorY()
		p.VY = 0
		p.falling = false
		p.anim = AnimStanding
	}
}

func (p *Player) stepX() {
	nx := p.X + p.VX
	if nx < 0 || nx > p.worldW-p.W {
		p.VX = 0
		return
	}
	p.X = nx
}
