package views

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
)

// ========================
// Callback Data Patterns
// ========================

const (
	CbMonth          = "cal_month:"       // cal_month:2024-06
	CbDay            = "cal_day:"         // cal_day:2024-06-10
	CbViewMode       = "view_mode:"       // view_mode:timeline
	CbTimelineDay    = "timeline_day:"    // timeline_day:2024-06-10
	CbTimelineImage  = "timeline_image:"  // timeline_image:2024-06-10
	CbAppointment    = "appt:"            // appt:42
	CbStatus         = "appt_status:"     // appt_status:42:Confirmado
	CbDelete         = "appt_delete:"     // appt_delete:42
	CbConfirmDelete  = "confirm_delete:"  // confirm_delete:42
	CbInstructorSort = "instructor_sort:" // instructor_sort:revenue
	CbRefresh        = "refresh"
	CbSearch         = "search"
	CbClearSearch    = "search_clear"
)

// MonthKeyLayout формат месяца в callback data
const MonthKeyLayout = "2006-01"

func monthData(t time.Time) string {
	return CbMonth + t.Format(MonthKeyLayout)
}

func dayData(prefix string, t time.Time) string {
	return prefix + schedule.DateKey(t)
}

func appointmentData(prefix string, id int64) string {
	return fmt.Sprintf("%s%d", prefix, id)
}

func statusData(id int64, status model.AppointmentStatus) string {
	return fmt.Sprintf("%s%d:%s", CbStatus, id, status)
}

func modeData(mode schedule.ViewMode) string {
	return CbViewMode + string(mode)
}
