package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/reelforge/reelforge/internal/segment"
)

var (
	srtTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`,
	)
	vttTimestampRegex = regexp.MustCompile(
		`(?:(\d{2}):)?(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(?:(\d{2}):)?(\d{2}):(\d{2})\.(\d{3})`,
	)
)

// ReadFile parses an existing .srt or .vtt file into caption segments
// with the default style, an alternative to seeding the store from a
// transcript. Ids follow the cue order.
func ReadFile(path string) ([]segment.Segment, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return readCueFile(path, srtTimestampRegex, false)
	case ".vtt":
		return readCueFile(path, vttTimestampRegex, true)
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", filepath.Ext(path))
	}
}

// readCueFile scans cue blocks: an optional numeric identifier, a
// timestamp line, then text lines until a blank line.
func readCueFile(path string, timestampRegex *regexp.Regexp, vtt bool) ([]segment.Segment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var segments []segment.Segment
	var current *segment.Segment
	var textLines []string

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Text = strings.Join(textLines, "\n")
			segments = append(segments, *current)
		}
		current = nil
		textLines = nil
	}

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
			if vtt && strings.HasPrefix(strings.TrimSpace(line), "WEBVTT") {
				continue
			}
		}

		trimmed := strings.TrimSpace(line)

		if vtt && (strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE")) {
			for scanner.Scan() {
				lineNum++
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if matches := timestampRegex.FindStringSubmatch(line); matches != nil {
			flush()
			start, err := cueSeconds(matches[1], matches[2], matches[3], matches[4])
			if err != nil {
				return nil, fmt.Errorf("invalid start timestamp at line %d: %w", lineNum, err)
			}
			end, err := cueSeconds(matches[5], matches[6], matches[7], matches[8])
			if err != nil {
				return nil, fmt.Errorf("invalid end timestamp at line %d: %w", lineNum, err)
			}
			seg := segment.New(fmt.Sprintf("segment-%d", len(segments)), "", start, end)
			current = &seg
			continue
		}

		if current == nil {
			// cue identifier line; only numeric ids are expected here
			if _, err := strconv.Atoi(trimmed); err == nil {
				continue
			}
			continue
		}

		textLines = append(textLines, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading subtitle file: %w", err)
	}

	return segments, nil
}

func cueSeconds(hours, minutes, seconds, millis string) (float64, error) {
	h := 0
	if hours != "" {
		parsed, err := strconv.Atoi(hours)
		if err != nil {
			return 0, err
		}
		h = parsed
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}

	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000, nil
}
