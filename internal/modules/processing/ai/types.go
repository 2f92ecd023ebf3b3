package ai

import "encoding/json"

// Analysis is the structured enrichment produced for an archived item.
type Analysis struct {
	Summary  string   `json:"summary"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// analyzeResponse is the raw JSON shape expected from the model. Tags may
// come back as a bare string instead of a list; stringOrList normalizes that
// at the parse boundary.
type analyzeResponse struct {
	Summary  string       `json:"summary"`
	Category string       `json:"category"`
	Tags     stringOrList `json:"tags"`
}

type stringOrList []string

func (t *stringOrList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*t = []string{}
		return nil
	}
	*t = []string{single}
	return nil
}
