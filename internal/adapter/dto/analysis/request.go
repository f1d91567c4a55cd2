package analysis

// AnalyzeRequest is the request body for transcript analysis. The
// transcript is checked by the handler rather than a validate tag so a
// missing and an empty value produce the same 400 response.
type AnalyzeRequest struct {
	Transcript string `json:"transcript"`
}
