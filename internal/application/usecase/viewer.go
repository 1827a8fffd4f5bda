package usecase

import dbRepository "memoria/internal/domain/repository/database"

// Viewer is the caller's authentication state as seen by read paths.
// Visibility is decided here and nowhere else: anonymous callers see
// public records only, any authenticated session sees everything.
type Viewer struct {
	Authenticated bool
}

func (v Viewer) filter() dbRepository.MemoryFilter {
	return dbRepository.MemoryFilter{IncludeSecret: v.Authenticated}
}

// CanSee reports whether a single record is visible to the viewer.
func (v Viewer) CanSee(isSecret bool) bool {
	return v.Authenticated || !isSecret
}
