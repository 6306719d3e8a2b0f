package dto

// PublishRunCompletedMessage is the event payload the pipeline emits
// after a successful run and the learning consumer aggregates.
type PublishRunCompletedMessage struct {
	ModelVersion    string  `json:"model_version"`
	SourceFile      string  `json:"source_file"`
	Vulnerabilities int     `json:"vulnerabilities"`
	Ofcs            int     `json:"ofcs"`
	ElapsedSeconds  float64 `json:"elapsed_seconds"`
}
