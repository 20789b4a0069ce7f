package catalog

import (
	"errors"
	"testing"
)

func TestDefault_Contents(t *testing.T) {
	c := Default()

	if got := len(c.Rockets()); got != 4 {
		t.Errorf("len(Rockets()) = %d, want 4", got)
	}
	if got := len(c.Bodies()); got != 3 {
		t.Errorf("len(Bodies()) = %d, want 3", got)
	}

	for _, r := range c.Rockets() {
		if err := r.Validate(); err != nil {
			t.Errorf("stock rocket invalid: %v", err)
		}
	}
	for _, b := range c.Bodies() {
		if err := b.Validate(); err != nil {
			t.Errorf("stock body invalid: %v", err)
		}
	}
}

func TestDefault_Flags(t *testing.T) {
	c := Default()

	starship, err := c.RocketByName("starship")
	if err != nil {
		t.Fatalf("RocketByName(starship): %v", err)
	}
	if !starship.SupportsOrbitalRefuel {
		t.Error("Starship should support orbital refuel")
	}

	pslv, _ := c.RocketByName("PSLV")
	if pslv.PerigeeKickMaxPayloadKg != 1500 {
		t.Errorf("PSLV perigee kick limit = %v, want 1500", pslv.PerigeeKickMaxPayloadKg)
	}

	titan, _ := c.BodyByName("Titan")
	if !titan.GravityAssistCandidate {
		t.Error("Titan should be a gravity assist candidate")
	}

	mars, _ := c.BodyByName("mars")
	if !mars.PerigeeKickTarget {
		t.Error("Mars should be a perigee kick target")
	}
}

func TestRocketsReturnsCopy(t *testing.T) {
	c := Default()

	rockets := c.Rockets()
	rockets[0].Name = "mutated"

	if c.Rockets()[0].Name == "mutated" {
		t.Error("Rockets() exposed internal storage")
	}
}

func TestRocketByName(t *testing.T) {
	c := Default()

	tests := []struct {
		input string
		want  string
	}{
		{"SpaceX's Starship", "SpaceX's Starship"},
		{"STARSHIP", "SpaceX's Starship"},
		{"ss", "SpaceX's Starship"},
		{"new-glenn", "Blue Origin's New Glenn"},
		{"NG", "Blue Origin's New Glenn"},
		{"space launch system", "NASA's SLS"},
		{"mangalyaan", "ISRO's Mangalyaan 1 (PSLV)"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			r, err := c.RocketByName(tc.input)
			if err != nil {
				t.Fatalf("RocketByName(%q) error: %v", tc.input, err)
			}
			if r.Name != tc.want {
				t.Errorf("RocketByName(%q) = %q, want %q", tc.input, r.Name, tc.want)
			}
		})
	}
}

func TestLookup_IndexAndName(t *testing.T) {
	c := Default()

	b, err := c.LookupBody("2")
	if err != nil || b.Name != "Mars" {
		t.Errorf("LookupBody(2) = %q, %v; want Mars", b.Name, err)
	}

	b, err = c.LookupBody("saturn")
	if err != nil || b.Name != "Titan (Saturn)" {
		t.Errorf("LookupBody(saturn) = %q, %v; want Titan (Saturn)", b.Name, err)
	}

	r, err := c.LookupRocket("4")
	if err != nil || r.Code != "PSLV" {
		t.Errorf("LookupRocket(4) = %q, %v; want PSLV", r.Code, err)
	}
}

func TestInvalidSelection(t *testing.T) {
	c := Default()

	if _, err := c.Rocket(9); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("Rocket(9) error = %v, want ErrInvalidSelection", err)
	}
	if _, err := c.Body(-1); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("Body(-1) error = %v, want ErrInvalidSelection", err)
	}
	if _, err := c.LookupRocket("falcon"); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("LookupRocket(falcon) error = %v, want ErrInvalidSelection", err)
	}
	if _, err := c.LookupBody("0"); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("LookupBody(0) error = %v, want ErrInvalidSelection", err)
	}
}

func TestClamp(t *testing.T) {
	c := Default()

	tests := []struct {
		choice int
		want   string
		ok     bool
	}{
		{1, "SpaceX's Starship", true},
		{3, "Blue Origin's New Glenn", true},
		{0, "SpaceX's Starship", false},
		{5, "SpaceX's Starship", false},
		{-7, "SpaceX's Starship", false},
	}

	for _, tc := range tests {
		r, ok := c.ClampRocket(tc.choice)
		if r.Name != tc.want || ok != tc.ok {
			t.Errorf("ClampRocket(%d) = %q, %v; want %q, %v", tc.choice, r.Name, ok, tc.want, tc.ok)
		}
	}

	if b, ok := c.ClampBody(3); b.Name != "Titan (Saturn)" || !ok {
		t.Errorf("ClampBody(3) = %q, %v", b.Name, ok)
	}
	if b, ok := c.ClampBody(4); b.Name != "Moon" || ok {
		t.Errorf("ClampBody(4) = %q, %v; want Moon, false", b.Name, ok)
	}
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	good := Body{Name: "Moon", SynodicDays: 29.5, Epoch: "2025-01-13"}

	tests := []struct {
		name   string
		rocket Rocket
		body   Body
	}{
		{"dry above wet", Rocket{Name: "x", WetMassKg: 10, DryMassKg: 20, StagingFactor: 1}, good},
		{"negative payload", Rocket{Name: "x", WetMassKg: 20, DryMassKg: 10, MaxPayloadKg: -1, StagingFactor: 1}, good},
		{"staging below one", Rocket{Name: "x", WetMassKg: 20, DryMassKg: 10, StagingFactor: 0.5}, good},
		{"zero synodic", Rocket{Name: "x", WetMassKg: 20, DryMassKg: 10, StagingFactor: 1}, Body{Name: "y"}},
		{"slashed epoch", Rocket{Name: "x", WetMassKg: 20, DryMassKg: 10, StagingFactor: 1}, Body{Name: "y", SynodicDays: 10, Epoch: "2026/10/01"}},
		{"missing epoch", Rocket{Name: "x", WetMassKg: 20, DryMassKg: 10, StagingFactor: 1}, Body{Name: "y", SynodicDays: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New([]Rocket{tc.rocket}, []Body{tc.body}); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if _, err := New(nil, []Body{good}); err == nil {
		t.Error("expected error for empty rocket list")
	}
}
