package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/platform/dbctx"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

// SubjectRepo reads the subject catalog. Implementations are read-only at
// runtime; the table is seeded once at startup.
type SubjectRepo interface {
	List(dbc dbctx.Context) ([]catalog.Subject, error)
	ListByLevel(dbc dbctx.Context, level catalog.Level) ([]catalog.Subject, error)
	GetByName(dbc dbctx.Context, name string) (catalog.Subject, bool, error)
	FindByCourse(dbc dbctx.Context, title string) (catalog.Subject, bool, error)
}

type subjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubjectRepo(db *gorm.DB, log *logger.Logger) SubjectRepo {
	return &subjectRepo{
		db:  db,
		log: log.With("repo", "SubjectRepo"),
	}
}

func (r *subjectRepo) tx(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Context())
}

func preloadCourses(db *gorm.DB) *gorm.DB {
	return db.Preload("Courses", func(q *gorm.DB) *gorm.DB {
		return q.Order("position ASC")
	})
}

func (r *subjectRepo) List(dbc dbctx.Context) ([]catalog.Subject, error) {
	var rows []catalog.SubjectRecord
	if err := preloadCourses(r.tx(dbc)).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	out := make([]catalog.Subject, 0, len(rows))
	for i := range rows {
		out = append(out, toSubject(&rows[i]))
	}
	return out, nil
}

func (r *subjectRepo) ListByLevel(dbc dbctx.Context, level catalog.Level) ([]catalog.Subject, error) {
	all, err := r.List(dbc)
	if err != nil {
		return nil, err
	}
	return filterByLevel(all, level), nil
}

func (r *subjectRepo) GetByName(dbc dbctx.Context, name string) (catalog.Subject, bool, error) {
	var row catalog.SubjectRecord
	err := preloadCourses(r.tx(dbc)).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.Subject{}, false, nil
	}
	if err != nil {
		return catalog.Subject{}, false, fmt.Errorf("get subject %q: %w", name, err)
	}
	return toSubject(&row), true, nil
}

func (r *subjectRepo) FindByCourse(dbc dbctx.Context, title string) (catalog.Subject, bool, error) {
	var row catalog.SubjectRecord
	err := preloadCourses(r.tx(dbc)).
		Joins("JOIN subject_course ON subject_course.subject_id = subject.id").
		Where("subject_course.title = ?", title).
		Order("subject.position ASC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.Subject{}, false, nil
	}
	if err != nil {
		return catalog.Subject{}, false, fmt.Errorf("find subject by course %q: %w", title, err)
	}
	return toSubject(&row), true, nil
}

// Seed makes the subject tables match subjects exactly, keyed by name. It is
// safe to run on every start.
func Seed(dbc dbctx.Context, db *gorm.DB, subjects []catalog.Subject) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = db
	}
	return transaction.WithContext(dbc.Context()).Transaction(func(tx *gorm.DB) error {
		keep := make([]string, 0, len(subjects))
		for i, s := range subjects {
			keep = append(keep, s.Name)

			var row catalog.SubjectRecord
			err := tx.Where("name = ?", s.Name).First(&row).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				row = catalog.SubjectRecord{Name: s.Name}
			case err != nil:
				return fmt.Errorf("seed lookup %q: %w", s.Name, err)
			}
			row.Description = s.Description
			row.Position = i
			row.Levels = joinLevels(s.Levels)
			row.Courses = nil
			if err := tx.Save(&row).Error; err != nil {
				return fmt.Errorf("seed save %q: %w", s.Name, err)
			}

			if err := tx.Where("subject_id = ?", row.ID).Delete(&catalog.CourseRecord{}).Error; err != nil {
				return fmt.Errorf("seed clear courses %q: %w", s.Name, err)
			}
			if len(s.Courses) == 0 {
				continue
			}
			courses := make([]catalog.CourseRecord, 0, len(s.Courses))
			for pos, title := range s.Courses {
				courses = append(courses, catalog.CourseRecord{SubjectID: row.ID, Position: pos, Title: title})
			}
			if err := tx.Create(&courses).Error; err != nil {
				return fmt.Errorf("seed courses %q: %w", s.Name, err)
			}
		}

		var stale []catalog.SubjectRecord
		q := tx.Model(&catalog.SubjectRecord{})
		if len(keep) > 0 {
			q = q.Where("name NOT IN ?", keep)
		}
		if err := q.Find(&stale).Error; err != nil {
			return fmt.Errorf("seed find stale: %w", err)
		}
		for _, row := range stale {
			if err := tx.Where("subject_id = ?", row.ID).Delete(&catalog.CourseRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func toSubject(row *catalog.SubjectRecord) catalog.Subject {
	courses := make([]string, 0, len(row.Courses))
	for _, c := range row.Courses {
		courses = append(courses, c.Title)
	}
	return catalog.Subject{
		Name:        row.Name,
		Description: row.Description,
		Courses:     courses,
		Levels:      splitLevels(row.Levels),
	}
}

func joinLevels(levels []catalog.Level) string {
	parts := make([]string, 0, len(levels))
	for _, l := range levels {
		parts = append(parts, string(l))
	}
	return strings.Join(parts, ",")
}

func splitLevels(raw string) []catalog.Level {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []catalog.Level
	for _, part := range strings.Split(raw, ",") {
		if l, ok := catalog.ParseLevel(strings.TrimSpace(part)); ok {
			out = append(out, l)
		}
	}
	return out
}

func filterByLevel(all []catalog.Subject, level catalog.Level) []catalog.Subject {
	out := make([]catalog.Subject, 0, len(all))
	for _, s := range all {
		if s.ListedIn(level) {
			out = append(out, s)
		}
	}
	return out
}
