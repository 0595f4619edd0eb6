package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCode(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"K7TQ2M9A", true},
		{"ABC123", true},
		{"ABC123456789", true},
		{"  K7TQ2M9A  ", true},
		{"abc123", false},
		{"SHORT", false},
		{"TOOLONGCODE123", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidCode(tt.value), "value %q", tt.value)
	}
}

func TestIsValidDeviceID(t *testing.T) {
	assert.True(t, IsValidDeviceID("a3f1c2d4-phone"))
	assert.True(t, IsValidDeviceID(strings.Repeat("x", DeviceIDMaxLength)))
	assert.False(t, IsValidDeviceID(""))
	assert.False(t, IsValidDeviceID("   "))
	assert.False(t, IsValidDeviceID(strings.Repeat("x", DeviceIDMaxLength+1)))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Ayşe Kaya"))
	assert.False(t, IsValidName("A"))
	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName(strings.Repeat("x", NameMaxLength+1)))
}
