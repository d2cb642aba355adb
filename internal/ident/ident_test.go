package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "split_data", "split_data"},
		{"upper case folded", "SplitData", "splitdata"},
		{"spaces become separator", "Load Data", "load_data"},
		{"dashes become separator", "load-data", "load_data"},
		{"runs collapse", "load -- data", "load_data"},
		{"leading and trailing trimmed", "  load data!  ", "load_data"},
		{"digits survive", "batch1", "batch1"},
		{"only junk becomes empty", "--!!--", ""},
		{"empty stays empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Default.Normalize(tc.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Load Data", "load-data", "a  b  c", "Batch 1", "x"}
	for _, in := range inputs {
		once := Default.Normalize(in)
		assert.Equal(t, once, Default.Normalize(once), "normalizing %q twice diverged", in)
	}
}

func TestCustomSeparator(t *testing.T) {
	t.Parallel()

	dashed := Policy{Separator: '-'}
	assert.Equal(t, "load-data", dashed.Normalize("Load Data"))
	assert.Equal(t, "load-data", dashed.Normalize("load-data"))
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Default.Valid("batch1"))
	assert.False(t, Default.Valid(""))
	assert.False(t, Default.Valid("!!"))
}
