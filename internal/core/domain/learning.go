package domain

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
	EnrollmentExpired   EnrollmentStatus = "expired"
)

// Enrollment links the current user to a course they have joined.
type Enrollment struct {
	ID                 int              `json:"id"`
	EnrollmentDate     string           `json:"enrollment_date"`
	Status             EnrollmentStatus `json:"status"`
	PaymentStatus      string           `json:"payment_status"`
	ProgressPercentage float64          `json:"progress_percentage"`
	Course             *Course          `json:"course,omitempty"`
}

// Quiz describes an assessment attached to a lesson.
type Quiz struct {
	ID                 int        `json:"id"`
	QuizTitle          string     `json:"quiz_title"`
	Instructions       string     `json:"instructions"`
	TimeLimitMinutes   *int       `json:"time_limit_minutes"`
	PassingScore       int        `json:"passing_score"`
	MaxAttempts        *int       `json:"max_attempts"`
	ShowCorrectAnswers bool       `json:"show_correct_answers"`
	TotalPoints        int        `json:"total_points"`
	TotalQuestions     int        `json:"total_questions"`
	AttemptsUsed       int        `json:"attempts_used"`
	CanAttempt         bool       `json:"can_attempt"`
	Questions          []Question `json:"questions"`
}

// Question is a single quiz question with its answer options.
type Question struct {
	ID           int          `json:"id"`
	QuestionText string       `json:"question_text"`
	QuestionType string       `json:"question_type"`
	Points       int          `json:"points"`
	ImageURL     *string      `json:"image_url"`
	Options      []QuizOption `json:"options"`
}

// QuizOption is one selectable answer of a question.
type QuizOption struct {
	ID         int    `json:"id"`
	OptionText string `json:"option_text"`
}

// QuizAttempt is the result of one completed or in-progress attempt.
type QuizAttempt struct {
	ID               int     `json:"id"`
	Score            int     `json:"score"`
	TotalPoints      int     `json:"total_points"`
	Percentage       float64 `json:"percentage"`
	Passed           bool    `json:"passed"`
	StartedAt        string  `json:"started_at"`
	CompletedAt      *string `json:"completed_at"`
	TimeSpentMinutes int     `json:"time_spent_minutes"`
}

// Certificate is a completion credential issued to the user.
type Certificate struct {
	ID              int     `json:"id"`
	CertificateCode string  `json:"certificate_code"`
	IssueDate       string  `json:"issue_date"`
	StudentName     string  `json:"student_name"`
	CourseName      string  `json:"course_name"`
	CourseCode      string  `json:"course_code"`
	InstructorName  string  `json:"instructor_name"`
	CertificateURL  *string `json:"certificate_url"`
}

// Payment records a transaction for a course purchase.
type Payment struct {
	ID            int     `json:"id"`
	TransactionID string  `json:"transaction_id"`
	Amount        string  `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	PaymentDate   string  `json:"payment_date"`
	Course        *Course `json:"course,omitempty"`
}
