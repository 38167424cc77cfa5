package domain

import "strings"

// Preset is a named, ready-made pitch mix.
type Preset struct {
	Name    string  `json:"name" yaml:"name"`
	Pitches []Pitch `json:"pitches" yaml:"pitches"`
}

var presets = []Preset{
	{
		Name: "Basic Fastball Mix",
		Pitches: []Pitch{
			{Name: "4-Seam Fastball", Abbreviation: "4FB", Percentage: "50"},
			{Name: "2-Seam Fastball", Abbreviation: "2FB", Percentage: "30"},
			{Name: "Change Up", Abbreviation: "CH", Percentage: "20"},
		},
	},
	{
		Name: "Advanced Mix",
		Pitches: []Pitch{
			{Name: "4-Seam Fastball", Abbreviation: "4FB", Percentage: "40"},
			{Name: "Curveball", Abbreviation: "CB", Percentage: "20"},
			{Name: "Slider", Abbreviation: "SL", Percentage: "20"},
			{Name: "Change Up", Abbreviation: "CH", Percentage: "20"},
		},
	},
	{
		Name: "HWC",
		Pitches: []Pitch{
			{Name: "Fast Ball", Abbreviation: "FB", Percentage: "10"},
			{Name: "Curve Ball", Abbreviation: "CB", Percentage: "10"},
			{Name: "Fast In", Abbreviation: "FN", Percentage: "10"},
			{Name: "Fast Out", Abbreviation: "FO", Percentage: "10"},
			{Name: "Curve Out", Abbreviation: "CO", Percentage: "10"},
			{Name: "Curve", Abbreviation: "C", Percentage: "10"},
			{Name: "Screw Ball", Abbreviation: "SB", Percentage: "10"},
			{Name: "Pitch Out", Abbreviation: "PO", Percentage: "10"},
			{Name: "Change", Abbreviation: "G", Percentage: "10"},
			{Name: "Change Out", Abbreviation: "GO", Percentage: "10"},
		},
	},
}

// Presets returns a copy of the built-in presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = Preset{Name: p.Name, Pitches: append([]Pitch(nil), p.Pitches...)}
	}
	return out
}

// FindPreset looks a preset up by name, ignoring case.
func FindPreset(name string) (Preset, error) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, &OpError{
		Op:    "domain.find_preset",
		Kind:  KindNotFound,
		Field: name,
		Err:   ErrUnknownPreset,
	}
}
