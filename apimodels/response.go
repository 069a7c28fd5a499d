package apimodels

// AnalysisResult is the complete outcome of one analyze call. It is produced
// atomically; partial results are never returned.
type AnalysisResult struct {
	// Summary is kept as prose, not list-parsed
	Summary string `json:"summary"`

	// Insights extracted from the content, markers stripped
	Insights []string `json:"insights"`

	// Questions that deepen understanding of the content
	Questions []string `json:"questions"`

	// Connections to other domains, grounded on the extracted insights
	Connections []string `json:"connections"`
}

type CodeGenerateResponse struct {
	Code string `json:"code"`
}

type CodeExplainResponse struct {
	Explanation string `json:"explanation"`
}

type CodeReviewResponse struct {
	Review string `json:"review"`
}

// ErrorResponse is the failure envelope for every endpoint.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}
