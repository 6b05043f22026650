package transcript

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a transcript payload from disk: a JSON array of utterance
// records as returned by the transcription backend.
func LoadFile(path string) ([]Utterance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	var utterances []Utterance
	if err := json.Unmarshal(data, &utterances); err != nil {
		return nil, fmt.Errorf("failed to decode transcript JSON: %w", err)
	}

	return utterances, nil
}
