package models

import (
	"fmt"
	"time"
)

// UploadedPhoto is a property photo attached to an estimate request.
// The payload travels base64-encoded the same way the model API expects it,
// so no transcoding happens between the form and the provider call.
type UploadedPhoto struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MimeType   string `json:"mimeType"`
	Base64Data string `json:"base64"`
	PreviewURL string `json:"url,omitempty"`
}

// PhotoID derives a stable identifier from the file name and its
// modification time, matching how the input form keys previews.
func PhotoID(name string, modTime time.Time) string {
	return fmt.Sprintf("%s-%d", name, modTime.UnixMilli())
}

// FinishLevel is the target renovation quality tier.
type FinishLevel string

const (
	FinishBasic        FinishLevel = "Basic"
	FinishIntermediate FinishLevel = "Intermediate"
	FinishLuxury       FinishLevel = "Luxury"
)

// ValidFinishLevels is the set of allowed finish levels.
var ValidFinishLevels = []FinishLevel{FinishBasic, FinishIntermediate, FinishLuxury}

func (f FinishLevel) IsValid() bool {
	for _, v := range ValidFinishLevels {
		if f == v {
			return true
		}
	}
	return false
}

// Label returns the form-facing description of the finish level.
func (f FinishLevel) Label() string {
	switch f {
	case FinishBasic:
		return "Basic (Investor/Rental Grade)"
	case FinishIntermediate:
		return "Intermediate (Market Standard)"
	case FinishLuxury:
		return "Luxury (High-End Finishes)"
	default:
		return string(f)
	}
}

// RepairLevel is the categorical scope of a rehab, as judged by the model.
type RepairLevel string

const (
	RepairLightCosmetic RepairLevel = "Light Cosmetic"
	RepairMedium        RepairLevel = "Medium"
	RepairHeavy         RepairLevel = "Heavy"
	RepairGut           RepairLevel = "Gut"
	RepairUnknown       RepairLevel = "Unknown"
)

var ValidRepairLevels = []RepairLevel{RepairLightCosmetic, RepairMedium, RepairHeavy, RepairGut, RepairUnknown}

func (r RepairLevel) IsValid() bool {
	for _, v := range ValidRepairLevels {
		if r == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable description of the repair level.
func (r RepairLevel) Label() string {
	switch r {
	case RepairLightCosmetic:
		return "Minor repairs like paint, fixtures, and deep cleaning."
	case RepairMedium:
		return "Moderate repairs including flooring, countertops, and some system updates."
	case RepairHeavy:
		return "Significant work involving kitchens, baths, and potentially major systems."
	case RepairGut:
		return "Complete teardown of the interior to the studs."
	default:
		return "The level of repair could not be determined."
	}
}

// DifficultyLabels maps the 1-5 difficulty scale to display names.
var DifficultyLabels = map[int]string{
	1: "Very Easy",
	2: "Easy",
	3: "Medium",
	4: "Hard",
	5: "Very Hard",
}
