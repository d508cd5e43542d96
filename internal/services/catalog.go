package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/learnhub/internal/data/repos/catalog"
	domain "github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/platform/apierr"
	"github.com/yungbote/learnhub/internal/platform/dbctx"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

type CatalogService interface {
	Subjects(ctx context.Context) ([]domain.Subject, error)
	SubjectsByLevel(ctx context.Context, level domain.Level) ([]domain.Subject, error)
	Subject(ctx context.Context, name string) (domain.Subject, error)
	// Lookup is Subject without the not-found error.
	Lookup(ctx context.Context, name string) (domain.Subject, bool, error)
	CourseDetail(ctx context.Context, title string) (CourseDetail, error)
}

// CourseDetail is what the course page shows for a title taken from the URL.
// Subject is nil when no catalog subject lists the course.
type CourseDetail struct {
	Title   string          `json:"title"`
	Subject *domain.Subject `json:"subject,omitempty"`
}

type catalogService struct {
	log      *logger.Logger
	subjects catalog.SubjectRepo
}

func NewCatalogService(log *logger.Logger, subjects catalog.SubjectRepo) CatalogService {
	return &catalogService{
		log:      log.With("service", "CatalogService"),
		subjects: subjects,
	}
}

func (s *catalogService) Subjects(ctx context.Context) ([]domain.Subject, error) {
	out, err := s.subjects.List(dbctx.New(ctx))
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return out, nil
}

func (s *catalogService) SubjectsByLevel(ctx context.Context, level domain.Level) ([]domain.Subject, error) {
	if !level.Valid() {
		return []domain.Subject{}, nil
	}
	out, err := s.subjects.ListByLevel(dbctx.New(ctx), level)
	if err != nil {
		return nil, fmt.Errorf("list subjects for %s: %w", level, err)
	}
	return out, nil
}

func (s *catalogService) Subject(ctx context.Context, name string) (domain.Subject, error) {
	sub, ok, err := s.Lookup(ctx, name)
	if err != nil {
		return domain.Subject{}, err
	}
	if !ok {
		return domain.Subject{}, fmt.Errorf("subject %q: %w", name, apierr.ErrNotFound)
	}
	return sub, nil
}

func (s *catalogService) Lookup(ctx context.Context, name string) (domain.Subject, bool, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Subject{}, false, nil
	}
	sub, ok, err := s.subjects.GetByName(dbctx.New(ctx), name)
	if err != nil {
		return domain.Subject{}, false, fmt.Errorf("get subject %q: %w", name, err)
	}
	return sub, ok, nil
}

func (s *catalogService) CourseDetail(ctx context.Context, title string) (CourseDetail, error) {
	detail := CourseDetail{Title: title}
	sub, ok, err := s.subjects.FindByCourse(dbctx.New(ctx), title)
	if err != nil {
		return detail, fmt.Errorf("find course %q: %w", title, err)
	}
	if ok {
		detail.Subject = &sub
	}
	return detail, nil
}
