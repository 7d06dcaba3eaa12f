package components

import (
	"sort"

	"github.com/yohamta/donburi"
)

// SoundFile is one registered sound: the raw file data plus the extension
// that picks its decoder.
type SoundFile struct {
	Ext  string
	Data []byte
}

// SoundsData is the singleton sound registry, keyed by file name with the
// extension stripped. Raw data is kept per name; decoded PCM is cached on
// first playback so loading never needs an audio device.
type SoundsData struct {
	files map[string]SoundFile
	pcm   map[string][]byte
}

// Insert stores or overwrites the sound for name.
func (s *SoundsData) Insert(name, ext string, data []byte) {
	if s.files == nil {
		s.files = make(map[string]SoundFile)
	}
	s.files[name] = SoundFile{Ext: ext, Data: data}
}

// Get is a pure lookup; a miss is not an error.
func (s *SoundsData) Get(name string) (SoundFile, bool) {
	f, ok := s.files[name]
	return f, ok
}

// PCM returns the cached decoded samples for name, if present.
func (s *SoundsData) PCM(name string) ([]byte, bool) {
	pcm, ok := s.pcm[name]
	return pcm, ok
}

// SetPCM caches decoded samples for name.
func (s *SoundsData) SetPCM(name string, pcm []byte) {
	if s.pcm == nil {
		s.pcm = make(map[string][]byte)
	}
	s.pcm[name] = pcm
}

func (s *SoundsData) Len() int {
	return len(s.files)
}

// Names returns the registered sound names in sorted order.
func (s *SoundsData) Names() []string {
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var Sounds = donburi.NewComponentType[SoundsData]()
