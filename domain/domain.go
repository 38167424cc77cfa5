package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxAbbreviationLen is the longest abbreviation a pitch may carry.
const MaxAbbreviationLen = 3

// Pitch represents a single weighted category placed on the card.
// Name is the label shown on the Coach sheet; Abbreviation is the code shown
// in the Player grid (e.g. "FB", "CB", "4FB").
type Pitch struct {
	Name         string     `json:"name" yaml:"name"`
	Abbreviation string     `json:"abbreviation" yaml:"abbreviation"`
	Percentage   Percentage `json:"percentage" yaml:"percentage"`
}

// Percentage is the raw weight text as the user typed it.
type Percentage string

// UnmarshalJSON accepts both "25" and 25.
func (p *Percentage) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Percentage(s)
		return nil
	}
	if string(b) == "null" {
		*p = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = Percentage(n.String())
	return nil
}

// Value parses the percentage. Text that does not parse, NaN, infinities,
// and negative numbers count as 0.
func (p Percentage) Value() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(p)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Weight returns the relative selection weight of the pitch.
func (p Pitch) Weight() float64 {
	return p.Percentage.Value()
}

// TotalPercentage sums the weights of all pitches.
func TotalPercentage(pitches []Pitch) float64 {
	var total float64
	for _, p := range pitches {
		total += p.Weight()
	}
	return total
}

// Validate applies the checks the entry form enforces before an export:
// a non-empty list, abbreviations of at most three characters, and a total
// that does not exceed 100%.
func Validate(pitches []Pitch) error {
	const op = "domain.validate"

	if len(pitches) == 0 {
		return &OpError{Op: op, Kind: KindInvalidInput, Err: ErrEmptyPitchSet}
	}

	for i, p := range pitches {
		if utf8.RuneCountInString(p.Abbreviation) > MaxAbbreviationLen {
			return &OpError{
				Op:    op,
				Kind:  KindInvalidInput,
				Field: "pitches[" + strconv.Itoa(i) + "].abbreviation",
				Err:   ErrInvalidPitch,
			}
		}
	}

	if total := TotalPercentage(pitches); total > 100 {
		return &OpError{
			Op:    op,
			Kind:  KindInvalidInput,
			Field: "total=" + strconv.FormatFloat(total, 'f', -1, 64),
			Err:   ErrTotalExceeded,
		}
	}

	return nil
}
