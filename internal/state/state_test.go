package state

import (
	"testing"
	"time"

	"github.com/litescript/ls-missionplan/internal/catalog"
	"github.com/litescript/ls-missionplan/internal/mission"
)

func result(payload float64, success bool) *mission.Result {
	return &mission.Result{
		Rocket:     catalog.Rocket{Name: "Test"},
		PayloadKg:  payload,
		Assessment: mission.Assessment{Success: success},
	}
}

func TestNewManager_DefaultLimit(t *testing.T) {
	m := NewManager(Config{MaxEntries: 0})
	if m.maxEntries != 20 {
		t.Errorf("maxEntries = %d, want fallback 20", m.maxEntries)
	}
}

func TestManager_AddAndSnapshot(t *testing.T) {
	m := NewManager(Config{MaxEntries: 5})
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	if seq := m.Add(result(1, true)); seq != 1 {
		t.Errorf("first seq = %d, want 1", seq)
	}
	if seq := m.Add(result(2, false)); seq != 2 {
		t.Errorf("second seq = %d, want 2", seq)
	}

	snap := m.Snapshot()
	if len(snap.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(snap.Entries))
	}
	if snap.Total != 2 || snap.Feasible != 1 {
		t.Errorf("Total/Feasible = %d/%d, want 2/1", snap.Total, snap.Feasible)
	}
	if !snap.Entries[0].Timestamp.Equal(fixed) {
		t.Errorf("Timestamp = %v, want %v", snap.Entries[0].Timestamp, fixed)
	}
}

func TestManager_RingBufferOrder(t *testing.T) {
	m := NewManager(Config{MaxEntries: 3})

	for i := 1; i <= 5; i++ {
		m.Add(result(float64(i), false))
	}

	snap := m.Snapshot()
	if len(snap.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(snap.Entries))
	}
	for i, want := range []int{3, 4, 5} {
		if snap.Entries[i].Seq != want {
			t.Errorf("Entries[%d].Seq = %d, want %d", i, snap.Entries[i].Seq, want)
		}
	}
	if snap.Total != 5 {
		t.Errorf("Total = %d, want 5", snap.Total)
	}

	last, ok := m.Last()
	if !ok || last.Seq != 5 {
		t.Errorf("Last() = %d, %v; want 5, true", last.Seq, ok)
	}
}

func TestManager_SnapshotIsCopy(t *testing.T) {
	m := NewManager(Config{})
	m.Add(result(1, true))

	snap := m.Snapshot()
	snap.Entries[0].SavedTo = "mutated"

	if last, _ := m.Last(); last.SavedTo != "" {
		t.Error("snapshot shares storage with the manager")
	}
}

func TestManager_MarkSaved(t *testing.T) {
	m := NewManager(Config{MaxEntries: 2})
	seq := m.Add(result(1, true))

	if !m.MarkSaved(seq, "mission_20250101_1200.txt") {
		t.Fatal("MarkSaved returned false for a buffered entry")
	}
	if last, _ := m.Last(); last.SavedTo != "mission_20250101_1200.txt" {
		t.Errorf("SavedTo = %q", last.SavedTo)
	}

	m.Add(result(2, true))
	m.Add(result(3, true))
	if m.MarkSaved(seq, "gone.txt") {
		t.Error("MarkSaved succeeded for an evicted entry")
	}
}

func TestManager_Empty(t *testing.T) {
	m := NewManager(Config{})
	if _, ok := m.Last(); ok {
		t.Error("Last() on empty manager returned ok")
	}
	if snap := m.Snapshot(); snap.Entries != nil || snap.Total != 0 {
		t.Errorf("Snapshot() = %+v, want empty", snap)
	}
}
