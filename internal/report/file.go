package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/litescript/ls-missionplan/internal/mission"
)

// FileLayout is the timestamp layout used in saved report names.
const FileLayout = "20060102_1504"

// PersistenceError reports a failure to write a mission report.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save report %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// FileName returns the report file name for a save at the given time.
func FileName(now time.Time) string {
	return "mission_" + now.Format(FileLayout) + ".txt"
}

// WriteReport renders the plain-text report that Save writes to disk.
func WriteReport(buf *bytes.Buffer, res *mission.Result, now time.Time) {
	fmt.Fprintln(buf, "MISSION FEASIBILITY REPORT")
	fmt.Fprintf(buf, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(buf, "--------------------------------------------------")
	fmt.Fprintf(buf, "Rocket: %s\n", res.Rocket.Name)
	fmt.Fprintf(buf, "Target: %s\n", res.Body.Name)
	fmt.Fprintf(buf, "Payload: %.0f kg\n", res.PayloadKg)
	fmt.Fprintf(buf, "Strategy: %s\n", res.Strategy.Label())
	if res.Note != "" {
		fmt.Fprintf(buf, "Method: %s\n", res.Note)
	}
	fmt.Fprintf(buf, "Required DV: %.2f km/s\n", res.Required)
	fmt.Fprintf(buf, "Rocket capability: %.2f km/s\n", res.Capability)
	fmt.Fprintf(buf, "Final capability: %.2f km/s\n", res.FinalCapability)
	fmt.Fprintf(buf, "Margin: %+.2f km/s\n", res.FinalMargin)
	if res.Tankers > 0 {
		fmt.Fprintf(buf, "Tankers: %d\n", res.Tankers)
	}
	fmt.Fprintf(buf, "Status: %s\n", StatusLine(res))
	WriteWindows(buf, res, Plain())
}

// Save writes a plain-text report into dir and returns its path.
// The name encodes the save time to the minute, so a second save within
// the same minute overwrites the first.
func Save(dir string, res *mission.Result, now time.Time) (string, error) {
	path := filepath.Join(dir, FileName(now))

	var buf bytes.Buffer
	WriteReport(&buf, res, now)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", &PersistenceError{Path: path, Err: err}
	}
	return path, nil
}
