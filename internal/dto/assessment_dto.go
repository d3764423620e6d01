package dto

type AssessmentRequest struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
	Language string   `json:"language,omitempty" validate:"omitempty,oneof=en hi od"`
}

type AssessmentResponse struct {
	Symptoms                   []string `json:"symptoms"`
	Severity                   string   `json:"severity"`
	Recommendations            []string `json:"recommendations"`
	ShouldSeekMedicalAttention bool     `json:"shouldSeekMedicalAttention"`
}
