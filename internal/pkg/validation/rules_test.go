package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStudentEmail(t *testing.T) {
	valid := []string{
		"jane.doe@stu.kemu.ac.ke",
		"jdoe2021@stu.kemu.ac.ke",
		"j_doe+tag@stu.kemu.ac.ke",
	}
	for _, email := range valid {
		assert.True(t, IsStudentEmail(email), "expected %q to be a valid student email", email)
	}

	invalid := []string{
		"jane.doe@kemu.ac.ke",
		"jane.doe@gmail.com",
		"jane doe@stu.kemu.ac.ke",
		"@stu.kemu.ac.ke",
		"jane.doe@stu.kemu.ac.ke.evil.com",
		"",
	}
	for _, email := range invalid {
		assert.False(t, IsStudentEmail(email), "expected %q to be rejected", email)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("someone@example.com"))
	assert.True(t, IsValidEmail("first.last@sub.domain.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidYearOfStudy(t *testing.T) {
	for year := YearOfStudyMin; year <= YearOfStudyMax; year++ {
		assert.True(t, IsValidYearOfStudy(year))
	}
	assert.False(t, IsValidYearOfStudy(0))
	assert.False(t, IsValidYearOfStudy(7))
	assert.False(t, IsValidYearOfStudy(-1))
}

func TestIsValidMessageCategory(t *testing.T) {
	for _, category := range []string{"membership", "events", "academic", "partnership", "general", "feedback", "other"} {
		assert.True(t, IsValidMessageCategory(category), category)
	}
	assert.False(t, IsValidMessageCategory("spam"))
	assert.False(t, IsValidMessageCategory(""))
	assert.False(t, IsValidMessageCategory("General"))
}

func TestIsValidResourceType(t *testing.T) {
	assert.True(t, IsValidResourceType("exam"))
	assert.True(t, IsValidResourceType("cat"))
	assert.True(t, IsValidResourceType("notes"))
	assert.False(t, IsValidResourceType("book"))
	assert.False(t, IsValidResourceType(""))
}
