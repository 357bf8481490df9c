package customop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainTableAddIfAbsent(t *testing.T) {
	table := NewDomainTable()

	table.AddIfAbsent("my.domain")
	vr, ok := table.Range("my.domain")
	require.True(t, ok)
	assert.Equal(t, VersionRange{Min: 1, Max: 1000}, vr)

	// Re-adding, e.g. from a second session sharing the table, is a no-op.
	table.AddIfAbsent("my.domain")
	vr, ok = table.Range("my.domain")
	require.True(t, ok)
	assert.Equal(t, VersionRange{Min: 1, Max: 1000}, vr)
}

func TestDomainTableDefaultDomainPreRegistered(t *testing.T) {
	table := NewDomainTable()

	vr, ok := table.Range("")
	require.True(t, ok)
	assert.Equal(t, 1, vr.Min)

	// Adding the empty domain never overwrites the baseline range.
	table.AddIfAbsent("")
	after, _ := table.Range("")
	assert.Equal(t, vr, after)
}

func TestDomainTableUnknownDomain(t *testing.T) {
	table := NewDomainTable()
	_, ok := table.Range("nope")
	assert.False(t, ok)
}
