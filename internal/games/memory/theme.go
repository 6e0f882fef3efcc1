package memory

import (
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

// face is how one card identity is drawn.
type face struct {
	glyph rune
	color core.Color
}

// faces cycle when a board has more identities than entries.
var faces = []face{
	{'★', core.ColorBrightYellow},
	{'♥', core.ColorBrightRed},
	{'♣', core.ColorBrightGreen},
	{'♦', core.ColorBrightMagenta},
	{'●', core.ColorBrightBlue},
	{'▲', core.ColorOrange},
	{'♠', core.ColorBrightCyan},
	{'■', core.ColorBrightWhite},
	{'◆', core.ColorYellow},
	{'♪', core.ColorMagenta},
	{'☀', core.ColorRed},
	{'☾', core.ColorCyan},
}

// faceFor maps an engine identity to its glyph and color.
func faceFor(id engine.Identity) face {
	n := int(id) % len(faces)
	if n < 0 {
		n += len(faces)
	}
	return faces[n]
}
