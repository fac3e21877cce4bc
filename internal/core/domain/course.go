package domain

// CourseLevel is the difficulty rating of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Course is a read-only view model reflecting the catalog resource.
type Course struct {
	ID               int         `json:"id"`
	CourseName       string      `json:"course_name"`
	CourseCode       string      `json:"course_code"`
	Description      string      `json:"description"`
	Level            CourseLevel `json:"level"`
	DurationHours    int         `json:"duration_hours"`
	Price            string      `json:"price"`
	InstructorName   string      `json:"instructor_name"`
	IsFeatured       bool        `json:"is_featured"`
	Thumbnail        *string     `json:"thumbnail"`
	EnrollmentLimit  *int        `json:"enrollment_limit"`
	Category         Category    `json:"category"`
	EnrollmentsCount int         `json:"enrollments_count"`
	ReviewsCount     int         `json:"reviews_count"`
	AverageRating    float64     `json:"average_rating"`
	IsEnrolled       bool        `json:"is_enrolled"`
	Enrollment       *Enrollment `json:"enrollment"`
	Modules          []Module    `json:"modules,omitempty"`
	TotalLessons     int         `json:"total_lessons,omitempty"`
}

// Module groups the lessons of a course.
type Module struct {
	ID           int      `json:"id"`
	ModuleTitle  string   `json:"module_title"`
	ModuleOrder  int      `json:"module_order"`
	Description  string   `json:"description"`
	LessonsCount int      `json:"lessons_count"`
	Lessons      []Lesson `json:"lessons,omitempty"`
}

// LessonType distinguishes how a lesson is delivered.
type LessonType string

const (
	LessonVideo LessonType = "video"
	LessonText  LessonType = "text"
	LessonQuiz  LessonType = "quiz"
)

// Lesson is a single unit of course content.
type Lesson struct {
	ID              int             `json:"id"`
	LessonTitle     string          `json:"lesson_title"`
	LessonType      LessonType      `json:"lesson_type"`
	LessonOrder     int             `json:"lesson_order"`
	Description     string          `json:"description"`
	Content         string          `json:"content"`
	VideoURL        *string         `json:"video_url"`
	VideoDuration   *int            `json:"video_duration"`
	Thumbnail       *string         `json:"thumbnail"`
	DurationMinutes int             `json:"duration_minutes"`
	IsMandatory     bool            `json:"is_mandatory"`
	Documents       []Document      `json:"documents"`
	Quiz            *Quiz           `json:"quiz"`
	Progress        *LessonProgress `json:"progress"`
}

// LessonProgress tracks the current user's advancement through a lesson.
type LessonProgress struct {
	ID               int     `json:"id"`
	Status           string  `json:"status"`
	TimeSpentMinutes int     `json:"time_spent_minutes"`
	CompletedAt      *string `json:"completed_at"`
}

// Document is a downloadable attachment on a lesson.
type Document struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// Category is a course grouping in the catalog.
type Category struct {
	ID           int     `json:"id"`
	CategoryName string  `json:"category_name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	Image        *string `json:"image"`
	CoursesCount int     `json:"courses_count"`
}

// Review is a student rating of a course.
type Review struct {
	ID             int     `json:"id"`
	Rating         int     `json:"rating"`
	ReviewText     *string `json:"review_text"`
	WouldRecommend bool    `json:"would_recommend"`
	Student        struct {
		FullName       string  `json:"full_name"`
		ProfilePicture *string `json:"profile_picture"`
	} `json:"student"`
	Course *struct {
		ID         int    `json:"id"`
		CourseName string `json:"course_name"`
	} `json:"course,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Slide is a promotional banner on the landing screen.
type Slide struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Image       string  `json:"image"`
	Link        *string `json:"link"`
	Order       int     `json:"order"`
	IsActive    bool    `json:"is_active"`
}
