package usecase

import "regexp"

// degreePatterns holds the credential patterns in priority order. The first
// pattern that matches anywhere in the qualifications list wins, regardless
// of where in the list the matching entry sits.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)MD|M\.D\.|Doctor of Medicine`),
	regexp.MustCompile(`(?i)MBBS|M\.B\.B\.S\.`),
	regexp.MustCompile(`(?i)DO|D\.O\.|Doctor of Osteopathic Medicine`),
	regexp.MustCompile(`(?i)PhD|Ph\.D\.|Doctor of Philosophy`),
	regexp.MustCompile(`(?i)MS|M\.S\.|Master of Science`),
	regexp.MustCompile(`(?i)MA|M\.A\.|Master of Arts`),
}

// ExtractDegree returns the qualification string carrying the
// highest-priority medical degree, the first qualification verbatim when no
// pattern matches, or the empty string for an empty list. Never an error.
func ExtractDegree(qualifications []string) string {
	if len(qualifications) == 0 {
		return ""
	}
	for _, pattern := range degreePatterns {
		for _, q := range qualifications {
			if pattern.MatchString(q) {
				return q
			}
		}
	}
	return qualifications[0]
}
