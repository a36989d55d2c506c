package render

import "showcase.dev/internal/models"

// Distribute places items round-robin into n columns: item i lands in
// column i%n, and each column keeps input order. n below 1 is treated as 1.
func Distribute[T any](items []T, n int) [][]T {
	if n < 1 {
		n = 1
	}
	cols := make([][]T, n)
	for i, item := range items {
		cols[i%n] = append(cols[i%n], item)
	}
	return cols
}

// ExcludeFeatured returns the projects that match no featured entry. A project
// matches when its title or its key equals the title or key of a featured one,
// so a featured title never shows up again whichever side carries an id.
// The input slice is never modified.
func ExcludeFeatured(featured, projects []models.Project) []models.Project {
	if len(featured) == 0 {
		return projects
	}
	seen := make(map[string]struct{}, len(featured))
	for _, p := range featured {
		seen[p.Title] = struct{}{}
		seen[p.Key()] = struct{}{}
	}

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if _, ok := seen[p.Title]; ok {
			continue
		}
		if _, ok := seen[p.Key()]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}
