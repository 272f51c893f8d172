package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "v1.2.3", Normalize("1.2.3"))
	assert.Equal(t, "v1.2.3", Normalize("v1.2.3"))
	assert.Equal(t, "", Normalize(""))
}

func TestString(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", ""
	assert.Equal(t, "dev", String())

	Version, Commit = "1.4.0", "abc123"
	assert.Equal(t, "v1.4.0 (abc123)", String())
}
