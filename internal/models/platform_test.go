package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleForPlatform(t *testing.T) {
	github := StyleForPlatform("GitHub")
	assert.Equal(t, "github", github.Icon)
	assert.Equal(t, "#181717", github.Color)

	// Lookup ignores case and surrounding whitespace
	assert.Equal(t, github, StyleForPlatform("  github  "))
	assert.Equal(t, StyleForPlatform("instagram"), StyleForPlatform("Instagram"))
}

func TestStyleForPlatformExactMatchOnly(t *testing.T) {
	// Names that merely contain a known platform do not match
	assert.Equal(t, DefaultPlatformStyle, StyleForPlatform("github-enterprise"))
	assert.Equal(t, DefaultPlatformStyle, StyleForPlatform("my instagram"))
	assert.Equal(t, DefaultPlatformStyle, StyleForPlatform("unknown"))
	assert.Equal(t, DefaultPlatformStyle, StyleForPlatform(""))
}

func TestIsKnownPlatform(t *testing.T) {
	assert.True(t, IsKnownPlatform("Vercel"))
	assert.True(t, IsKnownPlatform("x"))
	assert.False(t, IsKnownPlatform("myspace"))
}
