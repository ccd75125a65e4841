package pdfcheck

import (
	"testing"

	"careerhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCount(t *testing.T) {
	pages, err := PageCount(testutil.MinimalPDF(3))
	require.NoError(t, err)
	assert.Equal(t, 3, pages)
}

func TestPageCount_Invalid(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":     nil,
		"png":       {0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
		"truncated": testutil.MinimalPDF(1)[:40],
	} {
		t.Run(name, func(t *testing.T) {
			_, err := PageCount(data)
			assert.ErrorIs(t, err, ErrInvalidPDF)
		})
	}
}
