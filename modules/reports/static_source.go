package reports

import "context"

// StaticReports serves fixed sample reports. It stands in until report
// generation is connected.
type StaticReports struct{}

func (StaticReports) ResumeReport(context.Context) (ResumeReport, error) {
	return ResumeReport{
		FileName:   "John_Doe_Resume.pdf",
		UploadDate: "2024-01-15",
		ATSScore:   78,
		Grade:      "B+",
		WordCount:  342,
		Sections: []SectionScore{
			{Name: "contact", Score: 95, Status: "excellent"},
			{Name: "summary", Score: 72, Status: "good"},
			{Name: "experience", Score: 85, Status: "excellent"},
			{Name: "skills", Score: 65, Status: "needs_improvement"},
			{Name: "education", Score: 90, Status: "excellent"},
			{Name: "formatting", Score: 70, Status: "good"},
		},
		Keywords: KeywordMatch{
			Matched: 18,
			Total:   25,
			Missing: []string{"TypeScript", "Docker", "AWS", "Agile", "CI/CD", "Testing", "GraphQL"},
		},
		Improvements: []Improvement{
			{
				Category:   "Keywords",
				Severity:   "high",
				Issue:      "Missing 7 critical keywords",
				Suggestion: "Add TypeScript, Docker, AWS, Agile, CI/CD, Testing, GraphQL to your skills and experience sections",
			},
			{
				Category:   "Skills Section",
				Severity:   "medium",
				Issue:      "Skills are not categorized",
				Suggestion: "Organize skills into Technical Skills, Soft Skills, and Tools/Technologies",
			},
			{
				Category:   "Experience",
				Severity:   "low",
				Issue:      "Limited quantifiable achievements",
				Suggestion: "Add more metrics and numbers to demonstrate impact (e.g., 'Improved performance by 40%')",
			},
			{
				Category:   "Formatting",
				Severity:   "medium",
				Issue:      "Inconsistent bullet point styles",
				Suggestion: "Use consistent bullet points throughout the document",
			},
		},
		Strengths: []string{
			"Strong technical experience in React and frontend development",
			"Clear and concise work history with relevant positions",
			"Good educational background",
			"Proper contact information included",
			"Appropriate length for experience level",
		},
		Compatibility: []CompatibilityCheck{
			{Aspect: "File format", Verdict: "PDF - Good"},
			{Aspect: "Fonts", Verdict: "Standard fonts used - Excellent"},
			{Aspect: "Sections", Verdict: "All major sections present - Good"},
			{Aspect: "Keywords", Verdict: "72% keyword match - Needs improvement"},
			{Aspect: "Formatting", Verdict: "Clean structure - Good"},
		},
	}, nil
}

func (StaticReports) InterviewReport(context.Context) (InterviewReport, error) {
	return InterviewReport{
		Candidate:     "John Doe",
		Position:      "Senior Frontend Developer",
		InterviewDate: "2024-01-15",
		Duration:      "45 minutes",
		OverallScore:  78,
		Personality: []TraitScore{
			{Trait: "Clarity", Score: 82},
			{Trait: "Confidence", Score: 75},
			{Trait: "Relevance", Score: 85},
			{Trait: "Impression", Score: 76},
		},
		BigFive: []TraitScore{
			{Trait: "Openness", Score: 85, Description: "High creativity and openness to new experiences"},
			{Trait: "Conscientiousness", Score: 78, Description: "Well-organized and goal-oriented"},
			{Trait: "Extraversion", Score: 65, Description: "Moderately outgoing and social"},
			{Trait: "Agreeableness", Score: 72, Description: "Cooperative and trusting"},
			{Trait: "Neuroticism", Score: 45, Description: "Emotionally stable under pressure"},
		},
		Questions: []QuestionResult{
			{
				Question:      "Tell me about your experience with React and modern frontend frameworks.",
				Answer:        "I have 4 years of experience with React. I've worked on multiple projects using hooks, context API, and Redux for state management. Recently worked on a large e-commerce platform.",
				PerfectAnswer: "I have extensive experience with React, including hooks, context API, custom hooks, and performance optimization. I've built scalable applications using modern patterns like compound components and render props. I stay updated with the latest React features and best practices.",
				Score:         85,
				Feedback:      "Good technical knowledge demonstrated. Could elaborate more on specific optimization techniques and recent projects.",
			},
			{
				Question:      "How do you handle state management in large React applications?",
				Answer:        "I usually use Redux for global state and local state for component-specific data.",
				PerfectAnswer: "For large applications, I evaluate the complexity first. I use Redux Toolkit for complex global state, Zustand for simpler cases, and React Query for server state. I also leverage React's built-in useReducer and Context API for mid-level state management.",
				Score:         70,
				Feedback:      "Basic understanding shown. Could discuss more modern alternatives and when to use each approach.",
			},
			{
				Question:      "Describe your approach to performance optimization in web applications.",
				Answer:        "I use code splitting with React.lazy, optimize images, and use useMemo for expensive calculations.",
				PerfectAnswer: "I take a comprehensive approach: code splitting with dynamic imports, image optimization, lazy loading, memoization with React.memo and useMemo, bundle analysis with webpack-bundle-analyzer, performance monitoring with tools like Lighthouse, and implementing proper caching strategies.",
				Score:         75,
				Feedback:      "Good foundation but could expand on monitoring and measurement techniques.",
			},
		},
		ResumeFit: ResumeFit{
			Score: 82,
			Strengths: []string{
				"Strong React experience matches job requirements",
				"Previous e-commerce experience is relevant",
				"Good educational background in Computer Science",
			},
			Gaps: []string{
				"Limited experience with TypeScript mentioned in resume",
				"Could benefit from more backend integration experience",
			},
		},
	}, nil
}
