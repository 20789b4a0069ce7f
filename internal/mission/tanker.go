package mission

import (
	"math"

	"github.com/litescript/ls-missionplan/internal/catalog"
)

// TankerPlan returns how many refueling flights cover a delta-v shortage
// (km/s). Rockets without a per-tanker gain never need tankers.
func TankerPlan(r catalog.Rocket, shortage float64) int {
	if r.RefuelDvPerTanker <= 0 || shortage <= 0 {
		return 0
	}
	n := int(math.Ceil(shortage / r.RefuelDvPerTanker))
	if n < 0 {
		return 0
	}
	return n
}
