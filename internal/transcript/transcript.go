package transcript

import "errors"

var (
	// ErrParse marks a backend timestamp that is not numeric after
	// stripping the unit suffix.
	ErrParse = errors.New("malformed timestamp")

	// ErrMalformedTranscript marks an utterance record the normalizer
	// cannot use, such as an empty alternatives list.
	ErrMalformedTranscript = errors.New("malformed transcript")
)

// Word is a single transcribed word with string-encoded timestamps as
// delivered by the transcription backend, e.g. "1.200s".
type Word struct {
	Word      string `json:"word"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Alternative is one candidate transcription of an utterance with
// word-level timing.
type Alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Words      []Word  `json:"words"`
}

// Utterance is one backend transcript record, typically a sentence or
// phrase. Only the first alternative, its first word's start time and the
// record-level end time are consumed; the other fields are carried through
// unused.
type Utterance struct {
	Alternatives  []Alternative `json:"alternatives"`
	ResultEndTime string        `json:"resultEndTime"`
	LanguageCode  string        `json:"languageCode"`
}
