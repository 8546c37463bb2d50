// Package symptom holds the inbound request records for symptom analysis.
// Validation rules live in the binding tags and are enforced by gin before
// any prompt is built.
package symptom

// Free-text fields are pointers so that "required" rejects a missing or null
// field while still accepting an empty string.
type TraditionalRequest struct {
	Symptoms       []string `json:"symptoms" binding:"required,min=1"`
	Age            int      `json:"age" binding:"required,gte=1,lte=120"`
	Gender         *string  `json:"gender" binding:"required"`
	Duration       *string  `json:"duration" binding:"required"`
	AdditionalInfo *string  `json:"additional_info,omitempty"`
}

type BodyBasedRequest struct {
	Age          int      `json:"age" binding:"required,gte=1,lte=120"`
	Gender       *string  `json:"gender" binding:"required"`
	BodyParts    []string `json:"body_parts" binding:"required,min=1"`
	SymptomTypes []string `json:"symptom_types" binding:"required,min=1"`
	Severity     *string  `json:"severity" binding:"required"`
	Duration     *string  `json:"duration" binding:"required"`
	Description  string   `json:"description" binding:"required,min=10,max=500"`
}

// Text dereferences an optional field; nil reads as "".
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
