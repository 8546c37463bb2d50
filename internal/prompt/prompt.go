// Package prompt renders the natural-language instructions sent to the model.
// Output is deterministic for a given request.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Skufu/SymptomAnalyzer/internal/symptom"
)

// ListSeparator joins multi-valued patient fields.
const ListSeparator = ", "

const returnOnly = "Return ONLY the JSON object with no additional text or formatting."

const formatInstruction = `Format your response as a valid JSON object with the following structure.
Ensure all values are properly quoted strings or arrays and the JSON is properly formatted:`

// Traditional renders the prompt for a symptom-list analysis.
func Traditional(req symptom.TraditionalRequest) string {
	var b strings.Builder
	b.WriteString("As a medical information assistant, analyze these symptoms and provide a response in valid JSON format.\n\n")
	b.WriteString("Patient Information:\n")
	writeField(&b, "Age", fmt.Sprint(req.Age))
	writeField(&b, "Gender", symptom.Text(req.Gender))
	writeField(&b, "Duration of Symptoms", symptom.Text(req.Duration))
	writeField(&b, "Reported Symptoms", strings.Join(req.Symptoms, ListSeparator))
	if info := strings.TrimSpace(symptom.Text(req.AdditionalInfo)); info != "" {
		writeField(&b, "Additional Information", info)
	}
	writeSchema(&b, TraditionalSchema)
	return b.String()
}

// BodyBased renders the prompt for a body-region analysis.
func BodyBased(req symptom.BodyBasedRequest) string {
	var b strings.Builder
	b.WriteString("As a medical information assistant, analyze these multiple body-related symptoms and provide a response in valid JSON format.\n\n")
	b.WriteString("Patient Information:\n")
	writeField(&b, "Age", fmt.Sprint(req.Age))
	writeField(&b, "Gender", symptom.Text(req.Gender))
	writeField(&b, "Affected Areas", strings.Join(req.BodyParts, ListSeparator))
	writeField(&b, "Symptom Types", strings.Join(req.SymptomTypes, ListSeparator))
	writeField(&b, "Severity", symptom.Text(req.Severity))
	writeField(&b, "Duration", symptom.Text(req.Duration))
	writeField(&b, "Description", req.Description)
	writeSchema(&b, BodyBasedSchema)
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

func writeSchema(b *strings.Builder, schema string) {
	b.WriteString("\n")
	b.WriteString(formatInstruction)
	b.WriteString("\n\n")
	b.WriteString(schema)
	b.WriteString("\n\n")
	b.WriteString(returnOnly)
	b.WriteString("\n")
}
