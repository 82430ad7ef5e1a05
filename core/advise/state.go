package advise

import (
	"sync"

	"pcbcalc-core/pcb"
)

// State keeps the latest result per domain. Each setter replaces its
// domain atomically; readers observe the old or the new result, never a
// mix. The order of first computation is remembered so reports can
// replay it.
type State struct {
	mu sync.RWMutex

	trace     *pcb.TraceResult
	vias      []pcb.ViaCandidate
	impedance *pcb.ImpedanceResult
	vdrop     *pcb.VoltageDropResult
	clearance *pcb.ClearanceResult

	order []Domain
}

// NewState returns an empty State.
func NewState() *State { return &State{} }

// snapshot copies the pointers under RLock; result structs are
// immutable once stored.
type snapshot struct {
	trace     *pcb.TraceResult
	vias      []pcb.ViaCandidate
	impedance *pcb.ImpedanceResult
	vdrop     *pcb.VoltageDropResult
	clearance *pcb.ClearanceResult
}

func (s *State) view() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		trace:     s.trace,
		vias:      s.vias,
		impedance: s.impedance,
		vdrop:     s.vdrop,
		clearance: s.clearance,
	}
}

func (s *State) noteOrderLocked(d Domain) {
	for _, have := range s.order {
		if have == d {
			return
		}
	}
	s.order = append(s.order, d)
}

// SetTrace stores the latest trace sizing.
func (s *State) SetTrace(r pcb.TraceResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trace = &r
	s.noteOrderLocked(DomainTrace)
}

// SetVias stores the latest via candidate table.
func (s *State) SetVias(cands []pcb.ViaCandidate) {
	cp := make([]pcb.ViaCandidate, len(cands))
	copy(cp, cands)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vias = cp
	s.noteOrderLocked(DomainVia)
}

// SetImpedance stores the latest microstrip result.
func (s *State) SetImpedance(r pcb.ImpedanceResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.impedance = &r
	s.noteOrderLocked(DomainImpedance)
}

// SetVoltageDrop stores the latest drop result.
func (s *State) SetVoltageDrop(r pcb.VoltageDropResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vdrop = &r
	s.noteOrderLocked(DomainVdrop)
}

// SetClearance stores the latest spacing result.
func (s *State) SetClearance(r pcb.ClearanceResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearance = &r
	s.noteOrderLocked(DomainClearance)
}

// Domains lists the populated domains in first-computation order.
func (s *State) Domains() []Domain {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Domain, len(s.order))
	copy(out, s.order)
	return out
}

// Trace returns the stored trace result, if any.
func (s *State) Trace() (pcb.TraceResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.trace == nil {
		return pcb.TraceResult{}, false
	}
	return *s.trace, true
}

// Vias returns a copy of the stored candidate table, if any.
func (s *State) Vias() ([]pcb.ViaCandidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.vias == nil {
		return nil, false
	}
	out := make([]pcb.ViaCandidate, len(s.vias))
	copy(out, s.vias)
	return out, true
}

// Impedance returns the stored microstrip result, if any.
func (s *State) Impedance() (pcb.ImpedanceResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.impedance == nil {
		return pcb.ImpedanceResult{}, false
	}
	return *s.impedance, true
}

// VoltageDrop returns the stored drop result, if any.
func (s *State) VoltageDrop() (pcb.VoltageDropResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.vdrop == nil {
		return pcb.VoltageDropResult{}, false
	}
	return *s.vdrop, true
}

// Clearance returns the stored spacing result, if any.
func (s *State) Clearance() (pcb.ClearanceResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.clearance == nil {
		return pcb.ClearanceResult{}, false
	}
	return *s.clearance, true
}
