package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "@alice", NormalizeHandle("Alice"))
	assert.Equal(t, "@alice", NormalizeHandle("@Alice"))
	assert.Equal(t, "@alice", NormalizeHandle("  @ALICE  "))
	assert.Equal(t, "", NormalizeHandle(""))
	assert.Equal(t, "", NormalizeHandle("   "))
}
