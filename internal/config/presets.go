package config

import "sort"

// Presets are well-known two-body decays, masses in GeV (PDG values,
// rounded).
var Presets = map[string]*Config{
	"zmumu": {
		Label: "Z -> mu+ mu-",
		M0:    91.1876, P0: 0, M1: 0.10566, M2: 0.10566,
	},
	"zee": {
		Label: "Z -> e+ e-",
		M0:    91.1876, P0: 0, M1: 0.000511, M2: 0.000511,
	},
	"higgs-bb": {
		Label: "H -> b bbar",
		M0:    125.25, P0: 0, M1: 4.18, M2: 4.18,
	},
	"kaon-pipi": {
		Label: "K0s -> pi+ pi-",
		M0:    0.49761, P0: 0, M1: 0.13957, M2: 0.13957,
	},
	"pion-munu": {
		Label: "pi+ -> mu+ nu",
		M0:    0.13957, P0: 0, M1: 0.10566, M2: 0,
	},
	"jpsi-mumu": {
		Label: "J/psi -> mu+ mu-",
		M0:    3.0969, P0: 0, M1: 0.10566, M2: 0.10566,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
