package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/litescript/ls-missionplan/internal/catalog"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "ls-missionplan v") {
		t.Errorf("output = %q", out)
	}
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"SpaceX's Starship", "NASA's SLS", "Mars", "Titan (Saturn)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestPlanCmd_Summary(t *testing.T) {
	out, err := execute(t, "", "plan", "--rocket", "starship", "--body", "mars", "--payload", "100000", "--windows", "3")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	for _, want := range []string{"MISSION SUMMARY", "ALTERNATE PROFILE FEASIBLE", "NEXT 3 LAUNCH WINDOWS"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q", want)
		}
	}
}

func TestPlanCmd_JSON(t *testing.T) {
	out, err := execute(t, "", "plan", "-r", "3", "-b", "mars", "--json")
	if err != nil {
		t.Fatalf("plan --json: %v", err)
	}

	var doc struct {
		Rocket       string `json:"rocket"`
		Strategy     string `json:"strategy"`
		Success      bool   `json:"success"`
		Alternatives []struct {
			Rocket string `json:"rocket"`
		} `json:"alternatives"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if doc.Rocket != "Blue Origin's New Glenn" || doc.Strategy != "infeasible" || doc.Success {
		t.Errorf("doc = %+v", doc)
	}
	if len(doc.Alternatives) != 2 {
		t.Errorf("alternatives = %+v, want 2", doc.Alternatives)
	}
}

func TestPlanCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown rocket", []string{"plan", "--rocket", "saturn v"}, "rocket"},
		{"rocket out of range", []string{"plan", "--rocket", "9"}, "rocket"},
		{"bad date", []string{"plan", "--date", "01/02/2025"}, "start date"},
		{"negative payload", []string{"plan", "--payload", "-5"}, "negative"},
		{"bad windows", []string{"plan", "--windows", "0"}, "window count"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, "", tc.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want it to mention %q", err, tc.want)
			}
		})
	}

	_, err := execute(t, "", "plan", "--body", "pluto")
	if !errors.Is(err, catalog.ErrInvalidSelection) {
		t.Errorf("unknown body err = %v, want ErrInvalidSelection", err)
	}
}

func TestPlanCmd_SaveAndHistory(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "history.db")

	_, err := execute(t, "", "plan", "--rocket", "sls", "--body", "moon",
		"--save", "--report-dir", dir, "--history", db)
	if err != nil {
		t.Fatalf("plan --save: %v", err)
	}
	if files, _ := filepath.Glob(filepath.Join(dir, "mission_*.txt")); len(files) != 1 {
		t.Errorf("report files = %v, want 1", files)
	}

	if _, err := execute(t, "", "plan", "--rocket", "ng", "--body", "mars", "--history", db); err != nil {
		t.Fatalf("second plan: %v", err)
	}

	out, err := execute(t, "", "history", "--history", db, "--limit", "5")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	for _, want := range []string{"SLS", "NG", "direct", "infeasible", "mission_", "2 missions recorded, 1 feasible"} {
		if !strings.Contains(out, want) {
			t.Errorf("history output missing %q\n%s", want, out)
		}
	}
}

func TestHistoryCmd_Disabled(t *testing.T) {
	_, err := execute(t, "", "history")
	if err == nil || !strings.Contains(err.Error(), "history is disabled") {
		t.Errorf("err = %v, want history disabled", err)
	}
}

func TestRootCmd_Menu(t *testing.T) {
	out, err := execute(t, "1\n3\n")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if !strings.Contains(out, "Main Menu:") || !strings.Contains(out, "Safe travels!") {
		t.Errorf("menu output = %q", out)
	}
}

func TestRootCmd_TUINeedsTerminal(t *testing.T) {
	_, err := execute(t, "", "--tui")
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Errorf("err = %v, want terminal error", err)
	}
}

func TestListCmd_YAMLFeedsCatalogFlag(t *testing.T) {
	out, err := execute(t, "", "list", "--yaml")
	if err != nil {
		t.Fatalf("list --yaml: %v", err)
	}
	if !strings.Contains(out, "code: STARSHIP") || !strings.Contains(out, "synodic_days: 780") {
		t.Fatalf("yaml output = %q", out)
	}

	path := filepath.Join(t.TempDir(), "fleet.yaml")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := execute(t, "", "plan", "--catalog", path, "--rocket", "sls", "--body", "titan", "--json")
	if err != nil {
		t.Fatalf("plan --catalog: %v", err)
	}
	if !strings.Contains(plan, `"target": "Titan (Saturn)"`) {
		t.Errorf("plan output = %q", plan)
	}

	if _, err := execute(t, "", "list", "--catalog", filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected an error for a missing catalog")
	}
}

func TestPlanCmd_EnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "missionplan.yaml")
	if err := os.WriteFile(cfgPath, []byte("windows: 2\npayload: 100000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LS_MISSIONPLAN_WINDOWS", "4")

	out, err := execute(t, "", "plan", "--config", cfgPath, "-r", "starship", "-b", "mars")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !strings.Contains(out, "NEXT 4 LAUNCH WINDOWS") {
		t.Errorf("environment did not override the file window count:\n%s", out)
	}
	if !strings.Contains(out, "ALTERNATE PROFILE FEASIBLE") {
		t.Errorf("payload from the config file was not applied:\n%s", out)
	}

	out, err = execute(t, "", "plan", "--config", cfgPath, "-r", "starship", "-b", "mars", "--windows", "1", "-p", "0")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !strings.Contains(out, "NEXT 1 LAUNCH WINDOWS") || !strings.Contains(out, "DIRECT MISSION FEASIBLE") {
		t.Errorf("flags did not override environment and file:\n%s", out)
	}
}
