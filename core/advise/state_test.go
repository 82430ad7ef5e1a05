package advise

import (
	"sync"
	"testing"

	"pcbcalc-core/pcb"
)

// Later results replace earlier ones without disturbing the
// first-computation order.
func TestState_LatestWinsKeepsOrder(t *testing.T) {
	s := NewState()
	s.SetVoltageDrop(pcb.VoltageDropResult{DropV: 0.01})
	s.SetTrace(pcb.TraceResult{WidthMM: 0.5})
	s.SetVoltageDrop(pcb.VoltageDropResult{DropV: 0.5})

	got, ok := s.VoltageDrop()
	if !ok || got.DropV != 0.5 {
		t.Fatalf("latest drop not stored: %+v ok=%v", got, ok)
	}
	order := s.Domains()
	if len(order) != 2 || order[0] != DomainVdrop || order[1] != DomainTrace {
		t.Fatalf("order = %v, want [vdrop trace]", order)
	}
}

func TestState_EmptyGetters(t *testing.T) {
	s := NewState()
	if _, ok := s.Trace(); ok {
		t.Fatal("empty state should have no trace result")
	}
	if _, ok := s.Vias(); ok {
		t.Fatal("empty state should have no via table")
	}
	if d := s.Domains(); len(d) != 0 {
		t.Fatalf("empty state lists domains: %v", d)
	}
}

// Stored via tables are isolated from the caller's slice.
func TestState_ViasCopied(t *testing.T) {
	s := NewState()
	cands := []pcb.ViaCandidate{{DiameterMM: 0.2, Compliant: true}}
	s.SetVias(cands)
	cands[0].Compliant = false

	got, ok := s.Vias()
	if !ok || !got[0].Compliant {
		t.Fatalf("stored table aliased caller slice: %+v", got)
	}
	got[0].DiameterMM = 9
	again, _ := s.Vias()
	if again[0].DiameterMM != 0.2 {
		t.Fatalf("returned table aliased stored slice: %+v", again)
	}
}

// Writers on every domain racing readers; run under -race.
func TestState_ConcurrentSetAndAdvise(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	const rounds = 200

	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			s.SetTrace(pcb.TraceResult{WidthMM: float64(i)})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			s.SetVias([]pcb.ViaCandidate{{DiameterMM: 0.2, Compliant: i%2 == 0}})
			s.SetClearance(pcb.ClearanceResult{ClearanceMM: 0.6})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = s.Advise()
			_, _ = s.Trace()
			_ = s.Domains()
		}
	}()
	wg.Wait()

	if _, ok := s.Trace(); !ok {
		t.Fatal("trace result missing after concurrent writes")
	}
	if len(s.Advise()) == 0 {
		t.Fatal("no advice after concurrent writes")
	}
}
