package formatting

import "github.com/ahmedgamal1254/lms-portal/internal/model"

// StatusDisplay is the emoji plus localized label a status renders as.
// One table per status enum, shared by every screen that shows it.
type StatusDisplay struct {
	Emoji string
	En    string
	Ar    string
}

// Label returns the localized status text.
func (d StatusDisplay) Label(lang string) string {
	if lang == "ar" {
		return d.Ar
	}
	return d.En
}

var unknownStatus = StatusDisplay{"❓", "Unknown", "غير معروف"}

// GetExamStatusDisplay returns the display entry for an exam status.
func GetExamStatusDisplay(status model.ExamStatus) StatusDisplay {
	displays := map[model.ExamStatus]StatusDisplay{
		model.ExamStatusUpcoming:  {"🔵", "Upcoming", "قادم"},
		model.ExamStatusOngoing:   {"🟡", "Ongoing", "جاري"},
		model.ExamStatusCompleted: {"🟢", "Completed", "مكتمل"},
		model.ExamStatusCancelled: {"⚫️", "Cancelled", "ملغي"},
	}

	if display, ok := displays[status]; ok {
		return display
	}
	return unknownStatus
}

// GetHomeworkStatusDisplay returns the display entry for a homework status.
func GetHomeworkStatusDisplay(status model.HomeworkStatus) StatusDisplay {
	displays := map[model.HomeworkStatus]StatusDisplay{
		model.HomeworkStatusPending:   {"⏳", "Pending", "قيد الانتظار"},
		model.HomeworkStatusSubmitted: {"📨", "Submitted", "تم التسليم"},
		model.HomeworkStatusGraded:    {"✅", "Graded", "تم التصحيح"},
		model.HomeworkStatusLate:      {"🔴", "Late", "متأخر"},
	}

	if display, ok := displays[status]; ok {
		return display
	}
	return unknownStatus
}

// GetSessionStatusDisplay returns the display entry for a session status.
func GetSessionStatusDisplay(status model.SessionStatus) StatusDisplay {
	displays := map[model.SessionStatus]StatusDisplay{
		model.SessionStatusScheduled: {"🔵", "Scheduled", "مجدولة"},
		model.SessionStatusCompleted: {"🟢", "Completed", "مكتملة"},
		model.SessionStatusCancelled: {"⚫️", "Cancelled", "ملغاة"},
	}

	if display, ok := displays[status]; ok {
		return display
	}
	return unknownStatus
}

// GetSubscriptionStatusDisplay returns the display entry for a
// subscription status.
func GetSubscriptionStatusDisplay(status model.SubscriptionStatus) StatusDisplay {
	displays := map[model.SubscriptionStatus]StatusDisplay{
		model.SubscriptionStatusActive:    {"🟢", "Active", "نشط"},
		model.SubscriptionStatusExpired:   {"⚫️", "Expired", "منتهي"},
		model.SubscriptionStatusSuspended: {"🟡", "Suspended", "موقوف"},
		model.SubscriptionStatusPending:   {"⏳", "Pending", "قيد الانتظار"},
	}

	if display, ok := displays[status]; ok {
		return display
	}
	return unknownStatus
}

// GetAttendanceStatusDisplay returns the display entry for an attendance
// status.
func GetAttendanceStatusDisplay(status model.AttendanceStatus) StatusDisplay {
	displays := map[model.AttendanceStatus]StatusDisplay{
		model.AttendancePresent: {"✅", "Present", "حاضر"},
		model.AttendanceAbsent:  {"❌", "Absent", "غائب"},
		model.AttendanceExcused: {"📝", "Excused", "بعذر"},
	}

	if display, ok := displays[status]; ok {
		return display
	}
	return unknownStatus
}
