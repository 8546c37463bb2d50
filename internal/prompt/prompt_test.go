package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/Skufu/SymptomAnalyzer/internal/symptom"
)

func TestTraditionalContainsPatientFields(t *testing.T) {
	req := symptom.TraditionalRequest{
		Symptoms: []string{"headache", "sore throat", "fatigue"},
		Age:      41,
		Gender:   ptr("non-binary"),
		Duration: ptr("about a week"),
	}
	out := Traditional(req)

	for _, s := range req.Symptoms {
		if !strings.Contains(out, s) {
			t.Fatalf("expected symptom %q in prompt", s)
		}
	}
	for _, want := range []string{"- Age: 41", "- Gender: non-binary", "- Duration of Symptoms: about a week"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in prompt:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "headache, sore throat, fatigue") {
		t.Fatalf("expected symptoms joined with %q", ListSeparator)
	}
	for _, key := range TraditionalKeys {
		if !strings.Contains(out, fmt.Sprintf("%q", key)) {
			t.Fatalf("expected schema key %q in prompt", key)
		}
	}
	if !strings.Contains(out, returnOnly) {
		t.Fatal("expected return-only instruction")
	}
	if strings.Contains(out, "Additional Information") {
		t.Fatal("did not expect additional information line")
	}
}

func TestTraditionalAdditionalInfo(t *testing.T) {
	out := Traditional(symptom.TraditionalRequest{
		Symptoms:       []string{"cough"},
		Age:            70,
		Gender:         ptr("male"),
		Duration:       ptr("2 days"),
		AdditionalInfo: ptr("  recently traveled  "),
	})
	if !strings.Contains(out, "- Additional Information: recently traveled\n") {
		t.Fatalf("expected trimmed additional info line:\n%s", out)
	}
}

func TestBodyBasedJoinsLists(t *testing.T) {
	req := symptom.BodyBasedRequest{
		Age:          29,
		Gender:       ptr("female"),
		BodyParts:    []string{"neck", "right shoulder"},
		SymptomTypes: []string{"stiffness", "tingling"},
		Severity:     ptr("mild"),
		Duration:     ptr("4 days"),
		Description:  "Stiff neck after sleeping in an awkward position.",
	}
	out := BodyBased(req)

	for _, want := range []string{
		"- Affected Areas: neck, right shoulder",
		"- Symptom Types: stiffness, tingling",
		"- Severity: mild",
		"- Duration: 4 days",
		"- Description: " + req.Description,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in prompt:\n%s", want, out)
		}
	}
	for _, key := range BodyBasedKeys {
		if !strings.Contains(out, fmt.Sprintf("%q", key)) {
			t.Fatalf("expected schema key %q in prompt", key)
		}
	}
}

func TestPromptsAreDeterministic(t *testing.T) {
	req := symptom.TraditionalRequest{Symptoms: []string{"rash"}, Age: 8, Gender: ptr("male"), Duration: ptr("1 day")}
	if Traditional(req) != Traditional(req) {
		t.Fatal("expected identical prompts for identical input")
	}
}

func TestSchemasAreValidJSON(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		keys   []string
	}{
		{"traditional", TraditionalSchema, TraditionalKeys},
		{"body-based", BodyBasedSchema, BodyBasedKeys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parsed map[string]any
			if err := json.Unmarshal([]byte(tt.schema), &parsed); err != nil {
				t.Fatalf("schema is not valid JSON: %v", err)
			}
			if len(parsed) != len(tt.keys) {
				t.Fatalf("expected %d top-level keys, got %d", len(tt.keys), len(parsed))
			}
			for _, key := range tt.keys {
				if _, ok := parsed[key]; !ok {
					t.Fatalf("missing top-level key %q", key)
				}
			}
		})
	}
}

func ptr(s string) *string {
	return &s
}

func TestTraditionalEmptyStrings(t *testing.T) {
	out := Traditional(symptom.TraditionalRequest{
		Symptoms: []string{"dizziness"},
		Age:      50,
		Gender:   ptr(""),
		Duration: ptr(""),
	})
	for _, want := range []string{"- Gender: \n", "- Duration of Symptoms: \n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in prompt:\n%s", want, out)
		}
	}
}
