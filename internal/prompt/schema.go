package prompt

// TraditionalKeys are the top-level keys of TraditionalSchema, in order.
var TraditionalKeys = []string{
	"initial_assessment",
	"possible_conditions",
	"severity_indicators",
	"recommendations",
	"when_to_seek_care",
	"prevention",
	"follow_up",
	"education",
	"disclaimers",
}

// BodyBasedKeys are the top-level keys of BodyBasedSchema, in order.
var BodyBasedKeys = []string{
	"symptom_analysis",
	"clinical_considerations",
	"diagnostic_approach",
	"management_recommendations",
	"care_guidance",
	"prevention_education",
	"prognosis",
	"disclaimers",
}

const disclaimersBlock = `    "disclaimers": {
        "medical_advice": "string",
        "limitations": ["string"],
        "emergency_notice": "string"
    }`

// TraditionalSchema is the JSON template the model fills in for symptom-list requests.
const TraditionalSchema = `{
    "initial_assessment": {
        "summary": "string",
        "primary_symptoms": ["string"],
        "duration_analysis": "string"
    },
    "possible_conditions": {
        "primary_possibilities": [
            {
                "name": "string",
                "likelihood": "string",
                "description": "string",
                "typical_duration": "string",
                "complications": ["string"]
            }
        ],
        "differential_diagnoses": ["string"]
    },
    "severity_indicators": {
        "current_level": "string",
        "explanation": "string",
        "warning_signs": ["string"],
        "emergency_indicators": ["string"]
    },
    "recommendations": {
        "immediate_steps": ["string"],
        "home_care": ["string"],
        "medications": {
            "over_the_counter": ["string"],
            "precautions": ["string"]
        },
        "lifestyle_changes": ["string"]
    },
    "when_to_seek_care": {
        "emergency_care": ["string"],
        "urgent_care": ["string"],
        "routine_care": ["string"]
    },
    "prevention": {
        "immediate_actions": ["string"],
        "long_term_strategies": ["string"]
    },
    "follow_up": {
        "monitoring": ["string"],
        "timeline": "string",
        "documentation": ["string"]
    },
    "education": {
        "condition_info": ["string"],
        "myths_facts": ["string"],
        "additional_resources": ["string"]
    },
` + disclaimersBlock + `
}`

// BodyBasedSchema is the JSON template the model fills in for body-region requests.
const BodyBasedSchema = `{
    "symptom_analysis": {
        "locations": [
            {
                "area": "string",
                "involved_structures": ["string"],
                "radiation_patterns": ["string"],
                "specific_symptoms": ["string"]
            }
        ],
        "characteristics": {
            "primary_symptoms": ["string"],
            "quality": ["string"],
            "severity": "string",
            "pattern": "string",
            "aggravating_factors": ["string"],
            "relieving_factors": ["string"]
        }
    },
    "clinical_considerations": {
        "possible_conditions": [
            {
                "name": "string",
                "likelihood": "string",
                "description": "string",
                "typical_progression": "string",
                "affected_areas": ["string"]
            }
        ],
        "risk_factors": ["string"],
        "red_flags": ["string"]
    },
    "diagnostic_approach": {
        "key_questions": [
            {
                "question": "string",
                "reason": "string",
                "significance": "string"
            }
        ],
        "physical_findings": ["string"],
        "suggested_monitoring": ["string"]
    },
    "management_recommendations": {
        "immediate_care": {
            "actions": ["string"],
            "restrictions": ["string"],
            "positioning": "string"
        },
        "pain_management": {
            "medications": ["string"],
            "physical_measures": ["string"],
            "precautions": ["string"]
        },
        "activity_modification": {
            "restricted_activities": ["string"],
            "permitted_activities": ["string"],
            "gradual_progression": "string"
        }
    },
    "care_guidance": {
        "self_care": ["string"],
        "medical_care": {
            "when_to_seek": ["string"],
            "type_of_care": "string",
            "urgency": "string"
        }
    },
    "prevention_education": {
        "recurrence_prevention": ["string"],
        "lifestyle_modifications": ["string"],
        "ergonomic_advice": ["string"]
    },
    "prognosis": {
        "expected_course": "string",
        "recovery_timeline": "string",
        "complications": ["string"]
    },
` + disclaimersBlock + `
}`
