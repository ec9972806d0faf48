package core

import "strings"

// Category classifies the problem a citizen report is about.
// The zero value means the category is absent or unrecognized.
type Category int

const (
	CategoryUnspecified Category = iota
	CategoryHealth
	CategoryEducation
	CategoryEnvironment
	CategorySecurity
)

var categoryNames = map[Category]string{
	CategoryHealth:      "Health",
	CategoryEducation:   "Education",
	CategoryEnvironment: "Environment",
	CategorySecurity:    "Security",
}

// DisplayName returns the human-readable name of the category,
// or "" for CategoryUnspecified.
func (c Category) DisplayName() string {
	return categoryNames[c]
}

// ParseCategory maps a free-form category string to a Category.
// Matching is case-insensitive and accepts common Spanish and English
// synonyms. Unrecognized values map to CategoryUnspecified, never an error:
// the value is still subject to AI re-validation later.
func ParseCategory(value string) Category {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "salud", "health":
		return CategoryHealth
	case "educacion", "educación", "education":
		return CategoryEducation
	case "medio ambiente", "medioambiente", "environment":
		return CategoryEnvironment
	case "seguridad", "security":
		return CategorySecurity
	default:
		return CategoryUnspecified
	}
}

// Urgency grades how pressing a report is.
// The zero value means the urgency is absent or unrecognized.
type Urgency int

const (
	UrgencyUnspecified Urgency = iota
	UrgencyUrgent
	UrgencyHigh
	UrgencyMedium
	UrgencyLow
)

var urgencyNames = map[Urgency]string{
	UrgencyUrgent: "Urgent",
	UrgencyHigh:   "High",
	UrgencyMedium: "Medium",
	UrgencyLow:    "Low",
}

// DisplayName returns the human-readable name of the urgency level,
// or "" for UrgencyUnspecified.
func (u Urgency) DisplayName() string {
	return urgencyNames[u]
}

// ParseUrgency maps a free-form urgency string to an Urgency.
// Matching is case-insensitive and accepts common Spanish and English
// synonyms. Unrecognized values map to UrgencyUnspecified.
func ParseUrgency(value string) Urgency {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "urgente", "urgent", "crítico", "critico":
		return UrgencyUrgent
	case "alta", "high":
		return UrgencyHigh
	case "media", "medium", "moderada":
		return UrgencyMedium
	case "baja", "low":
		return UrgencyLow
	default:
		return UrgencyUnspecified
	}
}

// Zone locates a report in a rural or urban area.
// The zero value means the zone is absent or unrecognized.
type Zone int

const (
	ZoneUnspecified Zone = iota
	ZoneRural
	ZoneUrban
)

var zoneNames = map[Zone]string{
	ZoneRural: "Rural",
	ZoneUrban: "Urban",
}

// DisplayName returns the human-readable name of the zone,
// or "" for ZoneUnspecified.
func (z Zone) DisplayName() string {
	return zoneNames[z]
}

// ZoneFromRural converts the rural flag into a Zone.
func ZoneFromRural(isRural bool) Zone {
	if isRural {
		return ZoneRural
	}
	return ZoneUrban
}

// ParseZone maps a free-form zone string to a Zone. It is the fallback used
// when the rural flag could not be interpreted as a boolean.
func ParseZone(value string) Zone {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "rural":
		return ZoneRural
	case "urbana", "urbano", "urban":
		return ZoneUrban
	default:
		return ZoneUnspecified
	}
}

// Status is the processing state of a report. Reports advance monotonically
// through the pipeline stages; any stage may transition a report directly to
// StatusError, which is terminal.
type Status int

const (
	StatusUnspecified Status = iota
	StatusPending
	StatusValidating
	StatusValidated
	StatusEmbedding
	StatusCompleted
	StatusError
)

var statusNames = map[Status]string{
	StatusPending:    "Pending",
	StatusValidating: "Validating",
	StatusValidated:  "Validated",
	StatusEmbedding:  "Embedding",
	StatusCompleted:  "Completed",
	StatusError:      "Error",
}

// DisplayName returns the human-readable name of the status.
func (s Status) DisplayName() string {
	return statusNames[s]
}

// Terminal reports whether the status is an end state of the pipeline.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// RunState is the derived overall state of a batch run.
type RunState int

const (
	RunStateInProgress RunState = iota + 1
	RunStateCompleted
	RunStateCompletedWithErrors
)

var runStateNames = map[RunState]string{
	RunStateInProgress:          "InProgress",
	RunStateCompleted:           "Completed",
	RunStateCompletedWithErrors: "CompletedWithErrors",
}

// DisplayName returns the human-readable name of the run state.
func (r RunState) DisplayName() string {
	return runStateNames[r]
}
