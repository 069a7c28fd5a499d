package models

type AnalyzeRequest struct {
	// Content is the text to analyze
	Content string `json:"content"`
}

type CodeGenerateRequest struct {
	// Description is the natural language description of the code to produce
	Description string `json:"description"`

	// Language is the target language; defaults to "typescript" when empty
	Language string `json:"language,omitempty"`
}

type CodeExplainRequest struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
}

type CodeReviewRequest struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
}
