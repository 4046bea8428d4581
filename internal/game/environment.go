package game

// roomTemperature is the base temperature of the ghost room: a linear decay
// from ambient toward the configured floor, holding once it gets there. It
// is a pure function of elapsed time.
func (s *Simulation) roomTemperature() float64 {
	t := s.opts.AmbientTemp - s.opts.TempDropPerMinute*s.elapsed.Minutes()
	if t < s.opts.MinRoomTemp {
		t = s.opts.MinRoomTemp
	}
	return t
}

// readTemperature produces one externally visible reading: the base value
// plus independent jitter. Only a ghost with the freezing capability can
// push a reading below the floor.
func (s *Simulation) readTemperature() float64 {
	t := s.roomTemperature() + (s.rng.Float64()*2-1)*s.opts.TempJitter
	if t < s.opts.MinRoomTemp && !s.ghost.Type.HasEvidence(EvidenceFreezing) {
		t = s.opts.MinRoomTemp
	}
	return t
}

// emfBlast starts a new EMF reading and schedules its expiry. A blast while
// a reading is still active is a no-op: blasts neither stack nor extend.
func (s *Simulation) emfBlast() {
	if s.flags.EMFLevel != 0 {
		return
	}

	// Readings run 2..4; only a ghost with the EMF capability spikes to 5.
	max := 4
	if s.ghost.Type.HasEvidence(EvidenceEMF) {
		max = 5
	}
	s.flags.EMFLevel = 2 + s.rng.Intn(max-1)
	s.sched.Schedule(s.elapsed+s.opts.EMFBlastDuration, TriggerEMFBlastEnd)
}
