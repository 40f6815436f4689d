package render

import (
	"encoding/json"

	"github.com/sparktsao/WebSearchPup/models"
)

// renderJSON produces the structured encoding. Field order and nesting follow
// the data model exactly, so Parse reproduces an equal aggregate.
func renderJSON(agg *models.AggregateResult) (string, error) {
	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return "", models.NewSearchError(models.ErrCodeExtraction, "json encoding failed", err)
	}
	return string(data) + "\n", nil
}

// Parse decodes the structured encoding back into an aggregate.
func Parse(data []byte) (*models.AggregateResult, error) {
	var agg models.AggregateResult
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, err
	}
	return &agg, nil
}
