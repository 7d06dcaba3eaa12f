package components

import (
	"sort"

	"github.com/tbeech/molehollow/assets"
	"github.com/yohamta/donburi"
)

// SpriteSheetsData is the singleton sprite sheet registry, mapping a
// logical sheet name to its loaded sheet. Populated once at startup and
// read-only afterwards; entities refer to sheets by name only.
type SpriteSheetsData struct {
	sheets map[string]*assets.SpriteSheet
}

// Insert stores or overwrites the mapping for name.
func (s *SpriteSheetsData) Insert(name string, sheet *assets.SpriteSheet) {
	if s.sheets == nil {
		s.sheets = make(map[string]*assets.SpriteSheet)
	}
	s.sheets[name] = sheet
}

// Get is a pure lookup; it never mutates and a miss is not an error.
func (s *SpriteSheetsData) Get(name string) (*assets.SpriteSheet, bool) {
	sheet, ok := s.sheets[name]
	return sheet, ok
}

func (s *SpriteSheetsData) Len() int {
	return len(s.sheets)
}

// Names returns the registered sheet names in sorted order.
func (s *SpriteSheetsData) Names() []string {
	names := make([]string, 0, len(s.sheets))
	for name := range s.sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var SpriteSheets = donburi.NewComponentType[SpriteSheetsData]()
