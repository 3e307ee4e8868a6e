package models

import "time"

// ExamType classifies an exam within a semester
type ExamType string

const (
	ExamMidSem   ExamType = "MID_SEM"
	ExamEndSem   ExamType = "END_SEM"
	ExamRemedial ExamType = "REMEDIAL"
)

// Valid reports whether the exam type is a known value
func (t ExamType) Valid() bool {
	switch t {
	case ExamMidSem, ExamEndSem, ExamRemedial:
		return true
	}
	return false
}

// Exam belongs to a semester. Scope key: (semesterId, examType).
type Exam struct {
	ID          string     `json:"id"`
	SemesterID  string     `json:"semesterId"`
	Name        string     `json:"name"`
	ExamType    ExamType   `json:"examType"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsPublished bool       `json:"isPublished"`
	IsDeleted   bool       `json:"isDeleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Semester *Semester `json:"semester,omitempty"`
}

// ResultStatus marks the overall outcome of one exam result
type ResultStatus string

const (
	ResultPass     ResultStatus = "PASS"
	ResultFail     ResultStatus = "FAIL"
	ResultAbsent   ResultStatus = "ABSENT"
	ResultWithheld ResultStatus = "WITHHELD"
)

// Valid reports whether the result status is a known value
func (s ResultStatus) Valid() bool {
	switch s {
	case ResultPass, ResultFail, ResultAbsent, ResultWithheld:
		return true
	}
	return false
}

// ExamResult is an aggregated per-student-per-exam record.
// Scope key: (examId, studentEnrollmentNumber).
type ExamResult struct {
	ID                      string       `json:"id"`
	ExamID                  string       `json:"examId"`
	StudentID               *string      `json:"studentId,omitempty"`
	StudentEnrollmentNumber string       `json:"studentEnrollmentNumber"`
	SPI                     float64      `json:"spi"`
	CPI                     float64      `json:"cpi"`
	Status                  ResultStatus `json:"status"`
	CreatedAt               time.Time    `json:"createdAt"`
	UpdatedAt               time.Time    `json:"updatedAt"`

	Exam           *Exam                `json:"exam,omitempty"`
	SubjectResults []*ExamSubjectResult `json:"subjectResults,omitempty"`
}

// ExamSubjectResult is one per-subject row nested under an exam result
type ExamSubjectResult struct {
	ID           string  `json:"id"`
	ExamResultID string  `json:"examResultId"`
	SubjectCode  string  `json:"subjectCode"`
	SubjectName  string  `json:"subjectName"`
	Grade        string  `json:"grade"`
	Credits      float64 `json:"credits"`
}

// ExamResultAggregate is a per-exam rollup for the analytics surface
type ExamResultAggregate struct {
	ExamID      string  `json:"examId"`
	ExamName    string  `json:"examName"`
	ResultCount int     `json:"resultCount"`
	AverageSPI  float64 `json:"averageSpi"`
	AverageCPI  float64 `json:"averageCpi"`
	PassRate    float64 `json:"passRate"`
}
