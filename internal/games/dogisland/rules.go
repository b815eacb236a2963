package dogisland

// applyRules runs the game-rule collisions in their fixed order:
// factory pickup, island delivery, pirate theft.
func (g *Game) applyRules() {
	g.pickup()
	g.deliver()
	g.theft()
}

// pickup loads medicine while the ship overlaps the factory.
func (g *Game) pickup() {
	if g.player.HasMedicine || !g.player.Rect.Intersects(g.world.Factory) {
		return
	}
	g.player.HasMedicine = true
	logger.Debug("medicine picked up", "tick", g.tick)
}

// deliver wakes the dogs of every island the ship overlaps. Medicine is
// consumed only when at least one dog wakes up.
func (g *Game) deliver() {
	for _, island := range g.world.Islands {
		if !g.player.HasMedicine {
			return
		}
		if !g.player.Rect.Intersects(island.Rect) {
			continue
		}
		woken := island.Wake()
		if woken == 0 {
			continue
		}
		g.score += woken * g.cfg.Scoring.PointsPerDog
		g.player.HasMedicine = false
		logger.Debug("medicine delivered",
			"island", island.Key, "woken", woken, "score", g.score)
	}
}

// theft lets a chasing pirate take the medicine on contact.
// The pirate goes back to its patrol straight away.
func (g *Game) theft() {
	if !g.pirate.IsChasing() || !g.player.HasMedicine {
		return
	}
	if !g.pirate.Rect.Intersects(g.player.Rect) {
		return
	}
	g.player.HasMedicine = false
	g.pirate.resume(len(g.world.Islands))
	logger.Debug("medicine stolen", "tick", g.tick, "pirate", g.pirate.modeName())
}
