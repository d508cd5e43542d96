package catalog

import "time"

// Subject is one immutable catalog entry. Courses keep their display index
// prefix ("1. Algebra Basics") and their catalog order.
type Subject struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Courses     []string `json:"courses" yaml:"courses"`
	Levels      []Level  `json:"levels,omitempty" yaml:"levels"`
}

func (s Subject) FirstCourse() (string, bool) {
	if len(s.Courses) == 0 {
		return "", false
	}
	return s.Courses[0], true
}

// ListedIn reports whether the level's section shows this subject as a choice.
func (s Subject) ListedIn(l Level) bool {
	for _, sl := range s.Levels {
		if sl == l {
			return true
		}
	}
	return false
}

func (s Subject) HasCourse(title string) bool {
	for _, c := range s.Courses {
		if c == title {
			return true
		}
	}
	return false
}

type SubjectRecord struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Position    int            `gorm:"not null;index" json:"position"`
	Levels      string         `gorm:"type:text;not null;default:''" json:"levels"`
	Courses     []CourseRecord `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"courses"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (SubjectRecord) TableName() string { return "subject" }

type CourseRecord struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SubjectID uint   `gorm:"not null;index" json:"subject_id"`
	Position  int    `gorm:"not null" json:"position"`
	Title     string `gorm:"type:text;not null" json:"title"`
}

func (CourseRecord) TableName() string { return "subject_course" }
