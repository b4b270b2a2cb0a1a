package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 6
	maxDisplayNameLen = 128
	minTitleLength    = 3
	maxTitleLength    = 200
	minContentLength  = 10
	maxSummaryLength  = 500
	minCommentLength  = 1
	maxCommentLength  = 5000
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func validateRegistration(username, email, password, displayName string) []string {
	var errs []string

	switch {
	case strings.TrimSpace(username) == "":
		errs = append(errs, "Username is required")
	case len(username) < minUsernameLength:
		errs = append(errs, fmt.Sprintf("Username must be at least %d characters", minUsernameLength))
	case len(username) > maxUsernameLength:
		errs = append(errs, fmt.Sprintf("Username must not exceed %d characters", maxUsernameLength))
	case !usernameRegex.MatchString(username):
		errs = append(errs, "Username can only contain letters, numbers, and underscores")
	}

	switch {
	case strings.TrimSpace(email) == "":
		errs = append(errs, "Email is required")
	case !emailRegex.MatchString(email):
		errs = append(errs, "Invalid email format")
	case len(email) > 255:
		errs = append(errs, "Email must not exceed 255 characters")
	}

	switch {
	case strings.TrimSpace(password) == "":
		errs = append(errs, "Password is required")
	case len(password) < minPasswordLength:
		errs = append(errs, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	case !isStrongPassword(password):
		errs = append(errs, "Password must contain uppercase, lowercase, and number")
	}

	if strings.TrimSpace(displayName) != "" && len(displayName) > maxDisplayNameLen {
		errs = append(errs, fmt.Sprintf("Display name must not exceed %d characters", maxDisplayNameLen))
	}

	return errs
}

func isStrongPassword(password string) bool {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func validatePost(title, content, summary string) []string {
	var errs []string

	switch {
	case strings.TrimSpace(title) == "":
		errs = append(errs, "Title is required")
	case len(title) < minTitleLength:
		errs = append(errs, fmt.Sprintf("Title must be at least %d characters", minTitleLength))
	case len(title) > maxTitleLength:
		errs = append(errs, fmt.Sprintf("Title must not exceed %d characters", maxTitleLength))
	}

	switch {
	case strings.TrimSpace(content) == "":
		errs = append(errs, "Content is required")
	case len(content) < minContentLength:
		errs = append(errs, fmt.Sprintf("Content must be at least %d characters", minContentLength))
	}

	if strings.TrimSpace(summary) != "" && len(summary) > maxSummaryLength {
		errs = append(errs, fmt.Sprintf("Summary must not exceed %d characters", maxSummaryLength))
	}

	return errs
}

func validateComment(content string) []string {
	var errs []string

	switch {
	case strings.TrimSpace(content) == "":
		errs = append(errs, "Content is required")
	case len(content) < minCommentLength:
		errs = append(errs, fmt.Sprintf("Content must be at least %d character", minCommentLength))
	case len(content) > maxCommentLength:
		errs = append(errs, fmt.Sprintf("Content must not exceed %d characters", maxCommentLength))
	}

	return errs
}
