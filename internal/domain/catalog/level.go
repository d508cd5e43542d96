package catalog

// Level is one of the audience tiers. LevelNone is the state reached when an
// unknown level id is requested: every section is hidden.
type Level string

const (
	LevelNone      Level = ""
	LevelPrimary   Level = "primary"
	LevelSecondary Level = "secondary"
	LevelHigher    Level = "higher"
)

// Levels lists the known tiers in page order.
var Levels = []Level{LevelPrimary, LevelSecondary, LevelHigher}

// ParseLevel matches id exactly against the known level ids. Any other
// spelling, including case or whitespace variants, is unknown.
func ParseLevel(id string) (Level, bool) {
	switch Level(id) {
	case LevelPrimary:
		return LevelPrimary, true
	case LevelSecondary:
		return LevelSecondary, true
	case LevelHigher:
		return LevelHigher, true
	default:
		return LevelNone, false
	}
}

func (l Level) Valid() bool {
	_, ok := ParseLevel(string(l))
	return ok
}

func (l Level) Title() string {
	switch l {
	case LevelPrimary:
		return "Primary Level"
	case LevelSecondary:
		return "Secondary Level"
	case LevelHigher:
		return "Higher Level"
	default:
		return ""
	}
}

// ContainerID is the id of the course details container inside the level section.
func (l Level) ContainerID() string {
	if !l.Valid() {
		return ""
	}
	return string(l) + "-course-details"
}
