package mission

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"time"

	"github.com/litescript/ls-missionplan/internal/catalog"
)

// DateLayout is the calendar date format used for start dates and epochs.
const DateLayout = "2006-01-02"

// DefaultWindowCount is the number of windows projected when none is given.
const DefaultWindowCount = 5

// AssistTransitDays replaces the typical cruise time on gravity-assist routes.
const AssistTransitDays = 2555

const secondsPerDay = 86400

// DateParseError reports a malformed calendar date.
type DateParseError struct {
	Field string // "start date" or "epoch"
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parse %s %q: expected YYYY-MM-DD", e.Field, e.Value)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// ParseDate parses a YYYY-MM-DD date at UTC midnight.
func ParseDate(field, s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &DateParseError{Field: field, Value: s, Err: err}
	}
	return t, nil
}

// Window is one launch opportunity.
type Window struct {
	Launch  time.Time
	Arrival time.Time
}

// Projection describes a run of consecutive launch windows.
type Projection struct {
	Epoch       time.Time
	Cycle       time.Duration
	CycleIndex  int
	Transit     time.Duration
	TransitDays float64
	Count       int
}

// ProjectWindows computes the launch windows for body b starting from the
// synodic cycle that contains start. A start before the body's epoch is
// clamped to the epoch cycle.
func ProjectWindows(b catalog.Body, start string, strategy Strategy, count int) (Projection, error) {
	startAt, err := ParseDate("start date", start)
	if err != nil {
		return Projection{}, err
	}
	epoch, err := ParseDate("epoch", b.Epoch)
	if err != nil {
		return Projection{}, err
	}
	if count <= 0 {
		count = DefaultWindowCount
	}

	cycleSec := math.Round(b.SynodicDays * secondsPerDay)
	// Whole seconds keep centuries-away dates inside int64.
	elapsed := float64(startAt.Unix() - epoch.Unix())
	cycleIndex := 0
	if elapsed > 0 {
		cycleIndex = int(math.Floor(elapsed / cycleSec))
	}

	transitDays := b.TransitDays
	if strategy == GravityAssist && b.GravityAssistCandidate {
		transitDays = AssistTransitDays
	}

	return Projection{
		Epoch:       epoch,
		Cycle:       seconds(cycleSec),
		CycleIndex:  cycleIndex,
		Transit:     seconds(transitDays * secondsPerDay),
		TransitDays: transitDays,
		Count:       count,
	}, nil
}

// All yields the windows in launch order. The sequence can be ranged over
// any number of times.
func (p Projection) All() iter.Seq[Window] {
	return func(yield func(Window) bool) {
		for i := 0; i < p.Count; i++ {
			if !yield(p.At(i)) {
				return
			}
		}
	}
}

// At returns window i (0-based) of the projection.
func (p Projection) At(i int) Window {
	offset := math.Round(float64(p.CycleIndex+i) * p.Cycle.Seconds())
	launch := time.Unix(p.Epoch.Unix()+int64(offset), 0).UTC()
	return Window{Launch: launch, Arrival: launch.Add(p.Transit)}
}

// Windows collects the projection into a slice.
func (p Projection) Windows() []Window {
	return slices.Collect(p.All())
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
