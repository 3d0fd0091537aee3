package schedule

// ViewMode какое представление рисует экран
type ViewMode string

const (
	ViewCalendar   ViewMode = "calendar"
	ViewTimeline   ViewMode = "timeline"
	ViewInstructor ViewMode = "instructor"
)

// ViewModes в порядке меню
var ViewModes = []ViewMode{ViewCalendar, ViewTimeline, ViewInstructor}

// ParseViewMode режим по строке, false для неизвестной
func ParseViewMode(s string) (ViewMode, bool) {
	for _, m := range ViewModes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}
