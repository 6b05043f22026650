package transcript

import (
	"fmt"
	"strings"

	"github.com/reelforge/reelforge/internal/segment"
)

// Normalize converts backend utterances into caption segments, one per
// utterance in input order. A segment's start is the first word's start
// time of the best alternative; its end is the utterance-level end time,
// which the backend does not guarantee to match the last word's end.
// Empty transcripts still produce a segment. The transform is all or
// nothing: any malformed record fails the whole call.
func Normalize(utterances []Utterance) ([]segment.Segment, error) {
	segments := make([]segment.Segment, 0, len(utterances))

	for i, utt := range utterances {
		if len(utt.Alternatives) == 0 {
			return nil, fmt.Errorf("utterance %d: %w: no alternatives", i, ErrMalformedTranscript)
		}
		alt := utt.Alternatives[0]
		if len(alt.Words) == 0 {
			return nil, fmt.Errorf("utterance %d: %w: alternative has no words", i, ErrMalformedTranscript)
		}

		start, err := ParseTimestamp(alt.Words[0].StartTime)
		if err != nil {
			return nil, fmt.Errorf("utterance %d: word start: %w", i, err)
		}
		end, err := ParseTimestamp(utt.ResultEndTime)
		if err != nil {
			return nil, fmt.Errorf("utterance %d: result end: %w", i, err)
		}

		id := fmt.Sprintf("segment-%d", i)
		segments = append(segments, segment.New(id, strings.TrimSpace(alt.Transcript), start, end))
	}

	return segments, nil
}
