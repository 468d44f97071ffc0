package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// General email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Student email pattern - registration is restricted to the KEMU student domain
	StudentEmailPattern = `^[^\s@]+@stu\.kemu\.ac\.ke$`

	// Password min length
	PasswordMinLength = 8

	// Year of study bounds
	YearOfStudyMin = 1
	YearOfStudyMax = 6
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	StudentEmail *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	StudentEmail: regexp.MustCompile(StudentEmailPattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsStudentEmail reports whether the value belongs to the KEMU student domain
func IsStudentEmail(value string) bool {
	return CompiledPatterns.StudentEmail.MatchString(value)
}

// IsValidYearOfStudy reports whether the year falls within the allowed range
func IsValidYearOfStudy(year int) bool {
	return year >= YearOfStudyMin && year <= YearOfStudyMax
}

// MessageCategories enumerates the accepted contact-form categories
var MessageCategories = []string{"membership", "events", "academic", "partnership", "general", "feedback", "other"}

// IsValidMessageCategory reports whether the category is one of the accepted values
func IsValidMessageCategory(category string) bool {
	for _, c := range MessageCategories {
		if category == c {
			return true
		}
	}
	return false
}

// ResourceTypes enumerates the accepted study resource types
var ResourceTypes = []string{"exam", "cat", "notes"}

// IsValidResourceType reports whether the type is one of the accepted values
func IsValidResourceType(resourceType string) bool {
	for _, t := range ResourceTypes {
		if resourceType == t {
			return true
		}
	}
	return false
}
