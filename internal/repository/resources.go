package repository

// Cache resource keys. Mutations invalidate their resource so the next
// list fetch goes back to the server.
const (
	ResourceExams         = "exams"
	ResourceHomework      = "homework"
	ResourceSessions      = "sessions"
	ResourceSubscriptions = "subscriptions"
	ResourcePlans         = "plans"
	ResourceCurrencies    = "currencies"
	ResourceParents       = "parents"
	ResourceLookup        = "lookup"
	ResourceConversations = "conversations"
	ResourceMessages      = "messages"
	ResourceStudentExams  = "student_exams"
	ResourceStudentHW     = "student_homework"
	ResourceProfile       = "student_profile"
)
