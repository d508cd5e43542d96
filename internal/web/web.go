package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/domain/chat"
	"github.com/yungbote/learnhub/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// Section is one level block of the index page. Only the visible one is
// displayed; Courses is set only on the section that rendered them.
type Section struct {
	Level    catalog.Level
	Title    string
	Visible  bool
	Subjects []catalog.Subject
	Courses  *services.CourseView
}

type IndexData struct {
	Sections  []Section
	Subject   string
	Tutor     chat.Transcript
	Assistant chat.Transcript
}

type CourseData struct {
	Detail services.CourseDetail
}

// Renderer executes the embedded page templates. html/template escapes every
// title and subject name by context, so quotes in course titles are safe in
// attributes and URLs alike.
type Renderer struct {
	index  *template.Template
	course *template.Template
}

func NewRenderer() (*Renderer, error) {
	index, err := template.ParseFS(templateFS, "templates/layout.html", "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	course, err := template.ParseFS(templateFS, "templates/layout.html", "templates/course.html")
	if err != nil {
		return nil, fmt.Errorf("parse course template: %w", err)
	}
	return &Renderer{index: index, course: course}, nil
}

// BuildIndex lays the page view out as one section per level.
func BuildIndex(page services.PageView, byLevel map[catalog.Level][]catalog.Subject) IndexData {
	data := IndexData{
		Subject:   page.State.Subject,
		Tutor:     page.State.Tutor,
		Assistant: page.State.Assistant,
	}
	for _, tab := range page.Levels {
		sec := Section{
			Level:    tab.Level,
			Title:    tab.Title,
			Visible:  tab.Visible,
			Subjects: byLevel[tab.Level],
		}
		if page.Courses.Visible && page.Courses.Level == tab.Level {
			cv := page.Courses
			sec.Courses = &cv
		}
		data.Sections = append(data.Sections, sec)
	}
	return data
}

func (r *Renderer) Index(w io.Writer, data IndexData) error {
	return execute(w, r.index, data)
}

func (r *Renderer) Course(w io.Writer, data CourseData) error {
	return execute(w, r.course, data)
}

// execute renders into a buffer first so a template error never leaves a
// half-written page.
func execute(w io.Writer, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
