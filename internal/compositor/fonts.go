package compositor

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/reelforge/reelforge/internal/segment"
)

// fontVariant selects one of the bundled Go font files. The editor's
// family names are web fonts the renderer does not ship; monospace
// families map to Go Mono and everything else to Go Sans, with bold and
// italic picking the matching cut.
type fontVariant struct {
	mono   bool
	bold   bool
	italic bool
}

var variantTTF = map[fontVariant][]byte{
	{false, false, false}: goregular.TTF,
	{false, true, false}:  gobold.TTF,
	{false, false, true}:  goitalic.TTF,
	{false, true, true}:   gobolditalic.TTF,
	{true, false, false}:  gomono.TTF,
	{true, true, false}:   gomonobold.TTF,
	{true, false, true}:   gomonoitalic.TTF,
	{true, true, true}:    gomonobolditalic.TTF,
}

type faceKey struct {
	variant fontVariant
	size    int
}

// faceCache parses font files once and reuses faces per (variant, size).
type faceCache struct {
	mu    sync.Mutex
	fonts map[fontVariant]*opentype.Font
	faces map[faceKey]font.Face
}

func newFaceCache() *faceCache {
	return &faceCache{
		fonts: make(map[fontVariant]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

func (c *faceCache) face(style segment.Style) (font.Face, error) {
	if style.FontSize <= 0 {
		return nil, fmt.Errorf("invalid font size %d", style.FontSize)
	}

	key := faceKey{
		variant: fontVariant{
			mono:   isMonoFamily(style.FontFamily),
			bold:   style.Bold,
			italic: style.Italic,
		},
		size: style.FontSize,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if face, ok := c.faces[key]; ok {
		return face, nil
	}

	fnt, ok := c.fonts[key.variant]
	if !ok {
		ttf, ok := variantTTF[key.variant]
		if !ok {
			return nil, fmt.Errorf("no font file for variant %+v", key.variant)
		}
		parsed, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		c.fonts[key.variant] = parsed
		fnt = parsed
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(key.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	c.faces[key] = face
	return face, nil
}

func isMonoFamily(family string) bool {
	lower := strings.ToLower(family)
	return strings.Contains(lower, "courier") || strings.Contains(lower, "mono")
}
