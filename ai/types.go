package ai

// ValidationInput is the compact representation of one report submitted to
// the validation service.
type ValidationInput struct {
	// Id is the report identifier; the service echoes it back so results can
	// be matched to inputs regardless of response ordering.
	Id string

	// Comment is the cleaned report text to analyze.
	Comment string

	// SuggestedCategory is the display name of the category assigned during
	// normalization, or "" when none was recognized.
	SuggestedCategory string

	// City provides location context for the analysis, or "".
	City string
}

// ValidationResult is one entry of the validation service response.
type ValidationResult struct {
	// Id is the report identifier the entry refers to.
	Id string

	// BiasDetected reports whether the comment contains discriminatory,
	// clearly false, or defamatory content.
	BiasDetected bool

	// BiasDescription describes the detected bias, or "" when none.
	BiasDescription string

	// ValidatedCategory is the service-corrected category display name.
	ValidatedCategory string

	// Legitimate reports whether the service considers the report genuine
	// rather than spam or propaganda.
	Legitimate bool
}

// ValidCategories defines the category vocabulary presented to the validation
// service, with a short description of each.
var ValidCategories = map[string]string{
	"Health":      "public health problems, hospitals, medicine availability",
	"Education":   "education problems, schools, teachers, school infrastructure",
	"Environment": "pollution, garbage, deforestation, water, air quality",
	"Security":    "crime, violence, street lighting, policing",
}

// BiasTaxonomy lists the kinds of bias the validation service is asked to detect.
var BiasTaxonomy = []string{
	"discriminatory language (racism, sexism, xenophobia)",
	"clearly false or exaggerated information",
	"personal attacks or defamation",
	"political propaganda",
}
