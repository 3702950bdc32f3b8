package reports

import "context"

// ResumeReport is the ATS analysis of an uploaded resume.
type ResumeReport struct {
	FileName      string
	UploadDate    string
	ATSScore      int
	Grade         string
	WordCount     int
	Sections      []SectionScore
	Keywords      KeywordMatch
	Improvements  []Improvement
	Strengths     []string
	Compatibility []CompatibilityCheck
}

type SectionScore struct {
	Name   string
	Score  int
	Status string // excellent, good or needs_improvement
}

type KeywordMatch struct {
	Matched int
	Total   int
	Missing []string
}

// Rate is the matched share in whole percent.
func (k KeywordMatch) Rate() int {
	if k.Total == 0 {
		return 0
	}
	return (k.Matched*100 + k.Total/2) / k.Total
}

type Improvement struct {
	Category   string
	Severity   string // high, medium or low
	Issue      string
	Suggestion string
}

type CompatibilityCheck struct {
	Aspect  string
	Verdict string
}

// InterviewReport is the evaluation of a recorded interview.
type InterviewReport struct {
	Candidate     string
	Position      string
	InterviewDate string
	Duration      string
	OverallScore  int
	Personality   []TraitScore
	BigFive       []TraitScore
	Questions     []QuestionResult
	ResumeFit     ResumeFit
}

type TraitScore struct {
	Trait       string
	Score       int
	Description string
}

type QuestionResult struct {
	Question      string
	Answer        string
	PerfectAnswer string
	Score         int
	Feedback      string
}

type ResumeFit struct {
	Score     int
	Strengths []string
	Gaps      []string
}

// ReportSource loads report data for the protected pages.
type ReportSource interface {
	ResumeReport(ctx context.Context) (ResumeReport, error)
	InterviewReport(ctx context.Context) (InterviewReport, error)
}
