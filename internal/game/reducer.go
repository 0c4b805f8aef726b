package game

// Apply is the round transition function. It returns the next state and the
// effects the caller must execute; s itself is left untouched. Events that
// do not apply to the current state return s unchanged with no effects.
func Apply(s State, e Event) (State, []Effect) {
	switch e := e.(type) {
	case Flip:
		return flip(s, e.Index)
	case Resolve:
		return resolve(s, e)
	case Tick:
		return tick(s, e)
	case NewGame:
		return restart(s, NewState(e.Deck))
	case Reset:
		return restart(s, NewState(s.deck))
	default:
		return s, nil
	}
}

func flip(s State, i int) (State, []Effect) {
	if s.phase == Won || !s.deck.InRange(i) || s.IsTileMatched(i) || s.IsFlipped(i) {
		return s, nil
	}

	next := s.clone()
	var effects []Effect

	if next.phase == Idle {
		next.phase = Running
		effects = append(effects, StartTimer{Generation: next.generation})
	}

	// Matched tiles stay visible through matched, so they leave the window
	// as soon as another tile is flipped.
	window := next.flipped[:0]
	for _, j := range next.flipped {
		if !next.IsTileMatched(j) {
			window = append(window, j)
		}
	}
	window = append(window, i)
	if len(window) > 2 {
		window = window[len(window)-2:]
	}
	next.flipped = window

	if len(window) < 2 {
		next.phase = Running
		return next, effects
	}

	next.moves++
	next.reveal++
	next.phase = Evaluating

	a, b := next.deck.Tile(window[0]), next.deck.Tile(window[1])
	match := a.Matches(b)
	if match {
		next.matched[a.PairKey] = true
		next.nMatched++
	}
	effects = append(effects, ScheduleResolve{
		Generation: next.generation,
		Reveal:     next.reveal,
		Match:      match,
	})

	if next.AllMatched() {
		next.phase = Won
		effects = append(effects, StopTimer{})
	}
	return next, effects
}

func resolve(s State, e Resolve) (State, []Effect) {
	if e.Generation != s.generation || e.Reveal != s.reveal {
		return s, nil
	}
	if s.phase != Evaluating && s.phase != Won {
		return s, nil
	}
	if len(s.flipped) == 0 {
		return s, nil
	}

	next := s.clone()
	next.flipped = nil
	if next.phase == Evaluating {
		next.phase = Running
	}
	return next, nil
}

func tick(s State, e Tick) (State, []Effect) {
	if e.Generation != s.generation {
		return s, nil
	}
	if s.phase != Running && s.phase != Evaluating {
		return s, nil
	}
	next := s
	next.elapsed++
	return next, nil
}

func restart(prev, fresh State) (State, []Effect) {
	fresh.generation = prev.generation + 1
	// Reveal numbers keep counting across rounds so a resolution scheduled
	// in one round can never collide with one from the next.
	fresh.reveal = prev.reveal
	return fresh, []Effect{StopTimer{}}
}
