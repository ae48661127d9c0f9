package loader

// Import is one normalized import target of a file. All means every
// declaration of the target file is imported; otherwise Names lists the
// imported members.
type Import struct {
	Path  string
	All   bool
	Names []string
}

// Has reports whether name is an explicitly imported member.
func (imp *Import) Has(name string) bool {
	for _, n := range imp.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Manifest holds the import directives of one file in declaration order,
// normalized to a single entry per target path. A wildcard import drops any
// named members already recorded for its path, and named members are only
// added while no wildcard is recorded.
type Manifest struct {
	Imports []*Import
}

func (m *Manifest) entry(path string) *Import {
	for _, imp := range m.Imports {
		if imp.Path == path {
			return imp
		}
	}
	return nil
}

func (m *Manifest) addWildcard(path string) {
	if imp := m.entry(path); imp != nil {
		imp.All = true
		imp.Names = nil
		return
	}
	m.Imports = append(m.Imports, &Import{Path: path, All: true})
}

func (m *Manifest) addNamed(path string, names []string) {
	imp := m.entry(path)
	if imp == nil {
		imp = &Import{Path: path}
		m.Imports = append(m.Imports, imp)
	}
	if imp.All {
		return
	}
	for _, name := range names {
		if !imp.Has(name) {
			imp.Names = append(imp.Names, name)
		}
	}
}
