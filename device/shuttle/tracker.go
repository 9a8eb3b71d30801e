package shuttle

// Tracker owns the previously observed report and differences each new
// report against it. Update is a plain read-modify-write over that state;
// callers must serialize calls (the read loop is single-threaded, so no
// locking happens here).
type Tracker struct {
	last Report
}

// NewTracker returns a Tracker in the sentinel state: no real report has
// been seen yet.
func NewTracker() *Tracker {
	return &Tracker{last: Report{ID: SentinelID}}
}

// Last returns the report the tracker currently holds as baseline.
func (t *Tracker) Last() Report {
	return t.last
}

// Update diffs new against the stored report and returns the resulting
// events, always ordered jog, wheel, then buttons low-to-high. It never
// fails; impossible bit patterns just produce whatever events the bit
// differences imply.
func (t *Tracker) Update(new Report) []Event {
	var evts []Event

	// The hardware reports ID 0, the sentinel is 0xFF. Re-basing the wheel
	// whenever the stored ID is nonzero therefore fires exactly once, on
	// the first real report, and suppresses the spurious wheel edge against
	// the sentinel's zero wheel. Deliberate quirk of the original firmware
	// handling; jog and keys are intentionally not re-based the same way.
	if t.last.ID != 0 {
		t.last.Wheel = new.Wheel
	}

	if t.last.Jog != new.Jog {
		evts = append(evts, Event{Kind: EventJog, Jog: new.Jog})
	}

	if t.last.Wheel != new.Wheel {
		// Shortest-path signed delta over the mod-256 ring counter.
		delta := int16(new.Wheel) - int16(t.last.Wheel)
		if delta > 128 {
			delta -= 256
		}
		if delta < -128 {
			delta += 256
		}
		if delta < 0 {
			evts = append(evts, Event{Kind: EventWheelLeft})
		} else {
			evts = append(evts, Event{Kind: EventWheelRight})
		}
	}

	if t.last.Keys != new.Keys {
		for k := uint8(0); k < ButtonCount; k++ {
			wasHeld := t.last.Keys&(1<<k) != 0
			isHeld := new.Keys&(1<<k) != 0
			switch {
			case !wasHeld && isHeld:
				evts = append(evts, Event{Kind: EventButtonDown, Button: k})
			case wasHeld && !isHeld:
				evts = append(evts, Event{Kind: EventButtonUp, Button: k})
			}
		}
	}

	t.last = new
	return evts
}
