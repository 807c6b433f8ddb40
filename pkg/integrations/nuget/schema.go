package nuget

type registrationResponse struct {
	CatalogEntries []catalogEntry     `json:"catalogEntries"`
	Items          []registrationPage `json:"items"`
}

type registrationPage struct {
	ID    string             `json:"@id"`
	Items []registrationLeaf `json:"items"`
}

type registrationLeaf struct {
	CatalogEntry *catalogEntry `json:"catalogEntry"`
}

type catalogEntry struct {
	ID               string            `json:"id"`
	Version          string            `json:"version"`
	Dependencies     []dependency      `json:"dependencies"`
	DependencyGroups []dependencyGroup `json:"dependencyGroups"`
}

type dependencyGroup struct {
	TargetFramework string       `json:"targetFramework"`
	Dependencies    []dependency `json:"dependencies"`
}

type dependency struct {
	ID    string `json:"id"`
	Range string `json:"range"`
}

func (r *registrationResponse) dependencyIDs() []string {
	var ids []string
	seen := make(map[string]bool)
	add := func(deps []dependency) {
		for _, d := range deps {
			if d.ID == "" || seen[d.ID] {
				continue
			}
			seen[d.ID] = true
			ids = append(ids, d.ID)
		}
	}
	addEntry := func(e *catalogEntry) {
		add(e.Dependencies)
		for _, g := range e.DependencyGroups {
			add(g.Dependencies)
		}
	}

	for i := range r.CatalogEntries {
		addEntry(&r.CatalogEntries[i])
	}
	for _, page := range r.Items {
		for _, leaf := range page.Items {
			if leaf.CatalogEntry != nil {
				addEntry(leaf.CatalogEntry)
			}
		}
	}
	return ids
}
