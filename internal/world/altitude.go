package world

// UpdateAltitude scrolls the world when the player climbs above the
// midline. The deficit n is added to the altitude accumulator and to the
// y of the player and of every registry entity in one pass, so relative
// positions never change. It returns n, or 0 when nothing scrolled.
func (w *World) UpdateAltitude() float64 {
	mid := w.cfg.World.Midline
	if w.player.Y >= mid {
		return 0
	}

	n := mid - w.player.Y
	w.altitude += n
	w.player.Shift(n)
	w.reg.ShiftAll(n)
	return n
}
