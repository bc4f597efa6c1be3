package main

import (
	"bytes"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecgen/internal/config"
)

// naturals yields 0, 1, 2, … and records how many values were pulled.
func naturals(pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			*pulled++
			if !yield(i) {
				return
			}
		}
	}
}

func TestRender_LimitStopsPulling(t *testing.T) {
	for _, format := range []string{config.FormatText, config.FormatJSON, config.FormatYAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			pulled := 0
			n, err := render(&buf, format, 3, naturals(&pulled), nil)
			require.NoError(t, err)
			assert.Equal(t, 3, n)
			assert.Equal(t, 3, pulled)
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	pulled := 0
	_, err := render(&bytes.Buffer{}, "xml", 1, naturals(&pulled), nil)
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
}
