package entitlement

import "fmt"

// Feature identifies a gated capability.
// Adding a member requires updating every switch over Feature in this package;
// unhandled members fall through to ErrInvalidFeatureKind rather than a decision.
type Feature string

const (
	FeatureInterviewReport Feature = "interview-report"
	FeatureResumeReport    Feature = "resume-report"
)

// Features returns all protected features.
func Features() []Feature {
	return []Feature{FeatureInterviewReport, FeatureResumeReport}
}

// ParseFeature converts a raw identifier into a Feature.
func ParseFeature(s string) (Feature, error) {
	f := Feature(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFeatureKind, s)
	}
	return f, nil
}

func (f Feature) Valid() bool {
	switch f {
	case FeatureInterviewReport, FeatureResumeReport:
		return true
	default:
		return false
	}
}

// Title is the human readable feature name.
func (f Feature) Title() string {
	switch f {
	case FeatureInterviewReport:
		return "Interview Report"
	case FeatureResumeReport:
		return "Resume Report"
	default:
		return string(f)
	}
}

func (f Feature) String() string {
	return string(f)
}

// UnmarshalText parses a feature, rejecting unknown values with ErrInvalidFeatureKind.
func (f *Feature) UnmarshalText(b []byte) error {
	parsed, err := ParseFeature(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
