package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

// Input validation and sanitization utilities

const (
	maxPRDNameLen    = 200
	maxPRDContentLen = 1 << 20 // 1 MiB
)

// ValidatePRDName checks the submitted document name
func ValidatePRDName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("prd_name cannot be empty")
	}
	if len(name) > maxPRDNameLen {
		return fmt.Errorf("prd_name too long (max %d characters)", maxPRDNameLen)
	}
	return nil
}

// ValidatePRDContent checks the submitted document body
func ValidatePRDContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("prd_content cannot be empty")
	}
	if len(content) > maxPRDContentLen {
		return fmt.Errorf("prd_content too large (max %d bytes)", maxPRDContentLen)
	}
	return nil
}

// ValidateWorkflowID validates workflow ID format: wf_ prefix + UUID
func ValidateWorkflowID(id string) error {
	if id == "" {
		return fmt.Errorf("workflow ID cannot be empty")
	}
	pattern := `^wf_[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`
	matched, _ := regexp.MatchString(pattern, id)
	if !matched {
		return fmt.Errorf("invalid workflow ID format")
	}
	return nil
}

// ValidateStateCode validates a two-letter jurisdiction code
func ValidateStateCode(code string) error {
	matched, _ := regexp.MatchString(`^[A-Z]{2}$`, code)
	if !matched {
		return fmt.Errorf("invalid state code format (two uppercase letters)")
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default
	}
	if limit > 100 {
		return 100 // max limit
	}
	return limit
}

// ValidatePage validates pagination page number
func ValidatePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}
