package services

import (
	"context"
	"fmt"

	domain "github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/session"
)

type CourseItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CourseView is the content of the one visible course details container.
// When Visible is false nothing is rendered anywhere. When Found is false the
// container shows Placeholder instead of a list.
type CourseView struct {
	Level       domain.Level `json:"level"`
	ContainerID string       `json:"container_id,omitempty"`
	Visible     bool         `json:"visible"`
	Subject     string       `json:"subject,omitempty"`
	Found       bool         `json:"found"`
	Heading     string       `json:"heading,omitempty"`
	Description string       `json:"description,omitempty"`
	Courses     []CourseItem `json:"courses,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

type LevelTab struct {
	Level   domain.Level `json:"level"`
	Title   string       `json:"title"`
	Visible bool         `json:"visible"`
}

// PageView is everything the index page needs for one session.
type PageView struct {
	State    session.State    `json:"state"`
	Levels   []LevelTab       `json:"levels"`
	Subjects []domain.Subject `json:"subjects"`
	Courses  CourseView       `json:"courses"`
}

type ViewService interface {
	ShowLevel(ctx context.Context, sessionID string, levelID string) (session.State, error)
	SelectSubject(ctx context.Context, sessionID string, name string) (CourseView, error)
	DisplayCourses(ctx context.Context, st session.State, name string) (CourseView, error)
	Page(ctx context.Context, sessionID string) (PageView, error)
}

type viewService struct {
	log        *logger.Logger
	catalog    CatalogService
	sessions   session.Store
	coursePath string
}

func NewViewService(log *logger.Logger, catalog CatalogService, sessions session.Store, coursePath string) ViewService {
	return &viewService{
		log:        log.With("service", "ViewService"),
		catalog:    catalog,
		sessions:   sessions,
		coursePath: coursePath,
	}
}

// ShowLevel makes levelID the only visible section. Unknown ids hide every
// section; that is not an error.
func (s *viewService) ShowLevel(ctx context.Context, sessionID string, levelID string) (session.State, error) {
	level, ok := domain.ParseLevel(levelID)
	if !ok {
		s.log.Debug("unknown level requested, hiding all sections", "level", levelID, "session_id", sessionID)
	}
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.Level = level
		return nil
	})
	if err != nil {
		return session.State{}, fmt.Errorf("show level: %w", err)
	}
	return st, nil
}

func (s *viewService) SelectSubject(ctx context.Context, sessionID string, name string) (CourseView, error) {
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.Subject = name
		st.CoursesLevel = st.Level
		return nil
	})
	if err != nil {
		return CourseView{}, fmt.Errorf("select subject: %w", err)
	}
	return s.DisplayCourses(ctx, st, name)
}

func (s *viewService) DisplayCourses(ctx context.Context, st session.State, name string) (CourseView, error) {
	view := CourseView{Level: st.Level, Subject: name}
	if !st.Level.Valid() {
		return view, nil
	}
	view.Visible = true
	view.ContainerID = st.Level.ContainerID()

	sub, ok, err := s.catalog.Lookup(ctx, name)
	if err != nil {
		return CourseView{}, err
	}
	if !ok {
		view.Placeholder = fmt.Sprintf("Course details for %s are not available yet.", name)
		return view, nil
	}

	view.Found = true
	view.Heading = fmt.Sprintf("Courses in %s", sub.Name)
	view.Description = sub.Description
	view.Courses = make([]CourseItem, 0, len(sub.Courses))
	for _, title := range sub.Courses {
		view.Courses = append(view.Courses, CourseItem{Title: title, URL: CourseURL(s.coursePath, title)})
	}
	return view, nil
}

// Page assembles the index page. The course container stays empty until a
// subject has been selected while the current level was visible.
func (s *viewService) Page(ctx context.Context, sessionID string) (PageView, error) {
	st, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return PageView{}, fmt.Errorf("load session: %w", err)
	}

	page := PageView{State: st, Courses: CourseView{Level: st.Level}}
	for _, l := range domain.Levels {
		page.Levels = append(page.Levels, LevelTab{Level: l, Title: l.Title(), Visible: l == st.Level})
	}

	page.Subjects, err = s.catalog.SubjectsByLevel(ctx, st.Level)
	if err != nil {
		return PageView{}, err
	}

	if st.Subject != "" && st.CoursesLevel == st.Level {
		page.Courses, err = s.DisplayCourses(ctx, st, st.Subject)
		if err != nil {
			return PageView{}, err
		}
	}
	return page, nil
}
