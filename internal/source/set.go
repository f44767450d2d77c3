package source

// Set is a collection of loaded files keyed by name. Diagnostics carry only
// file names; renderers go through a Set to recover content for previews.
type Set struct {
	files map[string]*File
}

func NewSet() *Set {
	return &Set{files: make(map[string]*File)}
}

// Add stores a file, replacing any previous file with the same name.
func (s *Set) Add(f *File) {
	s.files[f.Name] = f
}

// Get returns the file with the given name, if present.
func (s *Set) Get(name string) (*File, bool) {
	f, ok := s.files[name]
	return f, ok
}

// Load reads a file from disk and adds it to the set.
func (s *Set) Load(path string) (*File, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.Add(f)
	return f, nil
}

func (s *Set) Len() int {
	return len(s.files)
}
