package components

import (
	"sort"

	"github.com/tbeech/molehollow/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationLibraryData is the singleton animation catalog, mapping an
// animation name to its immutable definition. Definitions are shared by
// reference with every playing instance.
type AnimationLibraryData struct {
	defs map[string]*animations.Definition
}

// Insert stores or overwrites the definition for name.
func (l *AnimationLibraryData) Insert(name string, def *animations.Definition) {
	if l.defs == nil {
		l.defs = make(map[string]*animations.Definition)
	}
	l.defs[name] = def
}

// Get is a pure lookup; a miss is not an error.
func (l *AnimationLibraryData) Get(name string) (*animations.Definition, bool) {
	def, ok := l.defs[name]
	return def, ok
}

func (l *AnimationLibraryData) Len() int {
	return len(l.defs)
}

// Names returns the catalog keys in sorted order.
func (l *AnimationLibraryData) Names() []string {
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var AnimationLibrary = donburi.NewComponentType[AnimationLibraryData]()
