package material

// Library holds materials by name in declaration order
type Library struct {
	byName map[string]*Material
	order  []*Material
}

// NewLibrary creates an empty material library
func NewLibrary() *Library {
	return &Library{byName: make(map[string]*Material)}
}

// Add registers a material. A later material with the same name replaces the earlier one.
func (l *Library) Add(m *Material) {
	if _, exists := l.byName[m.Name]; !exists {
		l.order = append(l.order, m)
	} else {
		for i, existing := range l.order {
			if existing.Name == m.Name {
				l.order[i] = m
				break
			}
		}
	}
	l.byName[m.Name] = m
}

// Merge adds every material of other to l
func (l *Library) Merge(other *Library) {
	for _, m := range other.order {
		l.Add(m)
	}
}

// Lookup returns the material with the given name
func (l *Library) Lookup(name string) (*Material, bool) {
	m, ok := l.byName[name]
	return m, ok
}

// Materials returns the materials in declaration order
func (l *Library) Materials() []*Material {
	return l.order
}

// Len returns the number of materials
func (l *Library) Len() int {
	return len(l.order)
}
