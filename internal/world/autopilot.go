package world

import (
	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/entity"
)

// Autopilot plays the game with a fixed strategy: walk under the lowest
// balloon, jump straight up for it, and jump off once the ride is JumpAt of
// the way to popping. It drives headless simulations.
type Autopilot struct {
	JumpAt float64
}

// Input produces the input for the next tick of w.
func (a Autopilot) Input(w *World) core.InputFrame {
	in := core.NewInputFrame()
	if w.State() != StateActive {
		return in
	}
	p := w.Player()

	if p.Grabbing() {
		held := w.Registry().Balloon(p.Held())
		if held != nil && held.Progress() >= a.JumpAt && p.JumpCooldown() == 0 {
			in.Set(core.ActionJump)
		}
		return in
	}

	if !p.OnFloor() {
		return in
	}
	target := nextBalloon(w, p)
	if target == nil {
		return in
	}
	tx, _ := target.Attachment()
	ax, _ := p.Anchor()
	step := w.Config().Player.MoveSpeed
	switch {
	case tx < ax-step:
		in.Set(core.ActionLeft)
	case tx > ax+step:
		in.Set(core.ActionRight)
	default:
		in.Set(core.ActionJump)
	}
	return in
}

// nextBalloon returns the closest idle or rising balloon whose string is
// above the player's feet.
func nextBalloon(w *World, p *entity.Player) *entity.Balloon {
	var best *entity.Balloon
	feet := p.Y + p.H
	for _, e := range w.Registry().All() {
		b, ok := e.(*entity.Balloon)
		if !ok || b.Popped() || b.Handle() == p.Held() {
			continue
		}
		if b.Bounds().LowY >= feet {
			continue
		}
		if best == nil || b.Y > best.Y {
			best = b
		}
	}
	return best
}
