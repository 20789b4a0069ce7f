package catalog

// Stock vehicles. Masses are whole-stack figures; the staging factor stands
// in for the gain from dropping spent stages.
var defaultRockets = []Rocket{
	{
		Code: "STARSHIP", Name: "SpaceX's Starship", Aliases: []string{"Starship", "SS"},
		WetMassKg: 5_000_000, DryMassKg: 200_000, IspSec: 350, MaxPayloadKg: 150_000,
		StagingFactor: 1.4, RefuelDvPerTanker: 5.5,
		SupportsOrbitalRefuel: true,
	},
	{
		Code: "SLS", Name: "NASA's SLS", Aliases: []string{"Space Launch System"},
		WetMassKg: 2_600_000, DryMassKg: 110_000, IspSec: 400, MaxPayloadKg: 95_000,
		StagingFactor: 1.5,
	},
	{
		Code: "NG", Name: "Blue Origin's New Glenn", Aliases: []string{"New Glenn"},
		WetMassKg: 1_700_000, DryMassKg: 100_000, IspSec: 340, MaxPayloadKg: 45_000,
		StagingFactor: 1.4,
	},
	{
		Code: "PSLV", Name: "ISRO's Mangalyaan 1 (PSLV)", Aliases: []string{"Mangalyaan", "MOM"},
		WetMassKg: 320_000, DryMassKg: 42_000, IspSec: 275, MaxPayloadKg: 1_750,
		StagingFactor:           1.2,
		PerigeeKickMaxPayloadKg: 1_500,
	},
}

var defaultBodies = []Body{
	{
		Code: "MOON", Name: "Moon", Aliases: []string{"Luna"},
		TransferDv: 3.12, CaptureDv: 2.80, SynodicDays: 29.5, Epoch: "2025-01-13", TransitDays: 3,
	},
	{
		Code: "MARS", Name: "Mars",
		TransferDv: 3.80, CaptureDv: 2.10, SynodicDays: 780, Epoch: "2025-01-16", TransitDays: 210,
		PerigeeKickTarget: true,
	},
	{
		Code: "TITAN", Name: "Titan (Saturn)", Aliases: []string{"Titan", "Saturn"},
		TransferDv: 7.30, CaptureDv: 3.00, SynodicDays: 378.1, Epoch: "2025-09-21", TransitDays: 1000,
		GravityAssistCandidate: true,
	},
}

// Default returns the stock catalog.
func Default() *Catalog {
	c, err := New(defaultRockets, defaultBodies)
	if err != nil {
		panic("catalog: invalid stock data: " + err.Error())
	}
	return c
}
