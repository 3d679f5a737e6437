package config

var Presets = map[string]*Config{
	// a loose cloud of slow atoms
	"cloud": {
		Atoms: 24, Dt: 0.016, Duration: 15.0, Friction: 1.0, Speed: 20.0,
		Bonding: BondingNone,
		Region:  RegionConfig{Width: 500, Height: 500},
	},
	// few fast atoms damping toward rest
	"drift": {
		Atoms: 3, Dt: 0.016, Duration: 10.0, Friction: 1.0, Speed: 120.0,
		Bonding: BondingNone,
		Region:  RegionConfig{Width: 500, Height: 500},
	},
	// a fully bonded triangle, the smallest world angle queries work on
	"triad": {
		Atoms: 3, Dt: 0.016, Duration: 10.0, Friction: 1.0, Speed: 30.0,
		Bonding: BondingFull,
		Region:  RegionConfig{Width: 500, Height: 500},
	},
	// chain of bonded atoms drifting apart
	"chain": {
		Atoms: 6, Dt: 0.016, Duration: 12.0, Friction: 0.5, Speed: 60.0,
		Bonding: BondingChain,
		Region:  RegionConfig{Width: 500, Height: 500},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
