package mission

import (
	"math"

	"github.com/litescript/ls-missionplan/internal/catalog"
)

// StandardGravity is g0 in m/s², used to turn Isp into exhaust velocity.
const StandardGravity = 9.80665

// Capability returns the delta-v (km/s) a rocket can impart with the given
// payload. Configurations that cannot fly (payload above capacity, degenerate
// masses) yield 0 rather than an error.
func Capability(r catalog.Rocket, payloadKg float64) float64 {
	if payloadKg > r.MaxPayloadKg {
		return 0
	}

	m0 := r.WetMassKg + payloadKg
	mf := r.DryMassKg + payloadKg
	if mf <= 0 || m0 <= mf {
		return 0
	}

	dv := r.IspSec * StandardGravity * math.Log(m0/mf) / 1000
	return dv * r.StagingFactor
}
