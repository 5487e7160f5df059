package slugify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "angels-surf", Make("Angels Surf"))
	assert.Equal(t, "praia-do-norte", Make("Praia do Norte"))
	assert.Equal(t, "ecole-de-surf", Make("École de Surf"))
	assert.Equal(t, "angels-surf-2025", Make("  Angels   Surf 2025  "))
}

func TestMakeCapsLength(t *testing.T) {
	long := strings.Repeat("surf ", 60)
	assert.LessOrEqual(t, len(Make(long)), maxLen)
}
