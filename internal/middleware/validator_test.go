package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePRDName(t *testing.T) {
	assert.NoError(t, ValidatePRDName("Social App PRD"))
	assert.Error(t, ValidatePRDName(""))
	assert.Error(t, ValidatePRDName("   "))
	assert.Error(t, ValidatePRDName(strings.Repeat("x", 201)))
}

func TestValidatePRDContent(t *testing.T) {
	assert.NoError(t, ValidatePRDContent("# Feature\nsome text"))
	assert.Error(t, ValidatePRDContent(""))
	assert.Error(t, ValidatePRDContent(strings.Repeat("x", (1<<20)+1)))
}

func TestValidateWorkflowID(t *testing.T) {
	assert.NoError(t, ValidateWorkflowID("wf_123e4567-e89b-42d3-a456-426614174000"))
	assert.Error(t, ValidateWorkflowID(""))
	assert.Error(t, ValidateWorkflowID("123e4567-e89b-42d3-a456-426614174000"))
	assert.Error(t, ValidateWorkflowID("wf_not-a-uuid"))
}

func TestValidateStateCode(t *testing.T) {
	assert.NoError(t, ValidateStateCode("CA"))
	assert.Error(t, ValidateStateCode("ca"))
	assert.Error(t, ValidateStateCode("CAL"))
	assert.Error(t, ValidateStateCode(""))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("hello\x00"))
	assert.Equal(t, "a b", SanitizeString("  a b  "))
	assert.Equal(t, "ab", SanitizeString("a\x01b"))
}

func TestPaginationBounds(t *testing.T) {
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 100, ValidateLimit(500))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, 1, ValidatePage(-3))
	assert.Equal(t, 4, ValidatePage(4))
}
