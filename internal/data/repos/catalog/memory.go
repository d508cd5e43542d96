package catalog

import (
	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/platform/dbctx"
)

type memorySubjectRepo struct {
	subjects []catalog.Subject
	byName   map[string]int
}

// NewMemorySubjectRepo serves the given subjects from memory. The slice is
// copied; later changes by the caller are not observed.
func NewMemorySubjectRepo(subjects []catalog.Subject) SubjectRepo {
	r := &memorySubjectRepo{
		subjects: make([]catalog.Subject, len(subjects)),
		byName:   make(map[string]int, len(subjects)),
	}
	for i, s := range subjects {
		s.Courses = append([]string(nil), s.Courses...)
		s.Levels = append([]catalog.Level(nil), s.Levels...)
		r.subjects[i] = s
		r.byName[s.Name] = i
	}
	return r
}

func (r *memorySubjectRepo) List(_ dbctx.Context) ([]catalog.Subject, error) {
	out := make([]catalog.Subject, len(r.subjects))
	copy(out, r.subjects)
	return out, nil
}

func (r *memorySubjectRepo) ListByLevel(_ dbctx.Context, level catalog.Level) ([]catalog.Subject, error) {
	return filterByLevel(r.subjects, level), nil
}

func (r *memorySubjectRepo) GetByName(_ dbctx.Context, name string) (catalog.Subject, bool, error) {
	i, ok := r.byName[name]
	if !ok {
		return catalog.Subject{}, false, nil
	}
	return r.subjects[i], true, nil
}

func (r *memorySubjectRepo) FindByCourse(_ dbctx.Context, title string) (catalog.Subject, bool, error) {
	for _, s := range r.subjects {
		if s.HasCourse(title) {
			return s, true, nil
		}
	}
	return catalog.Subject{}, false, nil
}
