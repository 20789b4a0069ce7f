package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileRocket is the YAML shape of a rocket entry.
type fileRocket struct {
	Code              string   `yaml:"code"`
	Name              string   `yaml:"name"`
	Aliases           []string `yaml:"aliases,omitempty"`
	WetMassKg         float64  `yaml:"wet_mass_kg"`
	DryMassKg         float64  `yaml:"dry_mass_kg"`
	IspSec            float64  `yaml:"isp_s"`
	MaxPayloadKg      float64  `yaml:"max_payload_kg"`
	StagingFactor     float64  `yaml:"staging_factor"`
	RefuelDvPerTanker float64  `yaml:"refuel_kmps_per_tanker,omitempty"`

	SupportsOrbitalRefuel   bool    `yaml:"orbital_refuel,omitempty"`
	PerigeeKickMaxPayloadKg float64 `yaml:"perigee_kick_max_payload_kg,omitempty"`
}

// fileBody is the YAML shape of a body entry.
type fileBody struct {
	Code        string   `yaml:"code"`
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases,omitempty"`
	TransferDv  float64  `yaml:"transfer_kmps"`
	CaptureDv   float64  `yaml:"capture_kmps"`
	SynodicDays float64  `yaml:"synodic_days"`
	Epoch       string   `yaml:"epoch"`
	TransitDays float64  `yaml:"transit_days"`

	GravityAssistCandidate bool `yaml:"gravity_assist,omitempty"`
	PerigeeKickTarget      bool `yaml:"perigee_kick,omitempty"`
}

type fileCatalog struct {
	Rockets []fileRocket `yaml:"rockets"`
	Bodies  []fileBody   `yaml:"bodies"`
}

// Load reads a YAML catalog. Unknown keys are rejected so typos do not
// silently zero a field.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fc fileCatalog
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog file is empty")
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	rockets := make([]Rocket, len(fc.Rockets))
	for i, r := range fc.Rockets {
		rockets[i] = Rocket(r)
	}
	bodies := make([]Body, len(fc.Bodies))
	for i, b := range fc.Bodies {
		bodies[i] = Body(b)
	}
	return New(rockets, bodies)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteYAML writes the catalog in the format Load reads.
func (c *Catalog) WriteYAML(w io.Writer) error {
	fc := fileCatalog{
		Rockets: make([]fileRocket, len(c.rockets)),
		Bodies:  make([]fileBody, len(c.bodies)),
	}
	for i, r := range c.rockets {
		fc.Rockets[i] = fileRocket(r)
	}
	for i, b := range c.bodies {
		fc.Bodies[i] = fileBody(b)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}
