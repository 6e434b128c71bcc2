package flappy

// runSimulation advances one frame of play. Motion is applied before the
// collision test, so a fast player can pass through a thin obstacle.
func (s *Scene) runSimulation(dt float64) {
	if s.gameplay != GameplayPlaying {
		return
	}

	for _, sp := range s.sprites {
		sp.Update(dt)
	}

	if !s.roundStarted {
		return
	}

	s.scrollPipes()
	s.movePlayer()

	if s.collided() {
		s.endRound()
	}
}

// scrollPipes moves the pair left by a fixed step per call and recycles it
// at the right edge once it leaves the canvas.
func (s *Scene) scrollPipes() {
	pipes := &s.slots.pipes
	pipes.Scroll(s.cfg.Physics.ScrollSpeed)

	if pipes.Offscreen() {
		center := randomCenter(s.env.Rand, s.cfg.Canvas.Height, s.cfg.Obstacles.CenterBand)
		pipes.Place(s.cfg.Canvas.Width, center)
	}
}

// movePlayer rises while boosted and falls faster otherwise.
func (s *Scene) movePlayer() {
	player := s.slots.player
	phys := s.cfg.Physics

	y := player.Position().Y
	if s.inputActive {
		player.SetPositionY(y + phys.RiseStep)
	} else {
		player.SetPositionY(y - phys.RiseStep - phys.FallExtra)
	}

	if s.env.Timer.ElapsedSeconds() > phys.BoostSeconds {
		s.inputActive = false
	}
}

func (s *Scene) collided() bool {
	player := s.slots.player
	return player.Intersects(s.slots.topBar) ||
		player.Intersects(s.slots.bottomBar) ||
		s.slots.pipes.Hits(player)
}

func (s *Scene) endRound() {
	s.inputActive = false
	s.roundStarted = false
	s.rounds++
	s.resetRound()
	s.env.Logger.Info("round ended", "scene", SceneID, "rounds", s.rounds)
}

// resetRound puts the player and the obstacle pair back at their start
// geometry and waits for the next tap. Geometry is reset before the new
// phase is published.
func (s *Scene) resetRound() {
	w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height
	player := s.slots.player

	player.SetScale(s.cfg.Player.Scale)
	player.SetPosition(player.Width()*s.cfg.Player.XFactor, h/2)
	player.SetSpeed(0, 0)

	center := randomCenter(s.env.Rand, h, s.cfg.Obstacles.CenterBand)
	s.slots.pipes.Place(w, center)

	s.gameplay = GameplayWaitingToStart
}
