package cmd

import (
	"testing"

	"github.com/MeKo-Tech/flatten/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuad(t *testing.T) {
	c, err := parseQuad("0,0;100,0;100,100;0,100")
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 0, Y: 0}, c.TL)
	assert.Equal(t, geometry.Point{X: 100, Y: 0}, c.TR)
	assert.Equal(t, geometry.Point{X: 100, Y: 100}, c.BR)
	assert.Equal(t, geometry.Point{X: 0, Y: 100}, c.BL)
}

func TestParseQuadWhitespace(t *testing.T) {
	c, err := parseQuad(" 1.5 , -2.5 ; 3,4 ; 5,6 ; 7,8 ")
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 1.5, Y: -2.5}, c.TL)
}

func TestParseQuadErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"too few corners", "0,0;1,0;1,1"},
		{"too many corners", "0,0;1,0;1,1;0,1;2,2"},
		{"missing y", "0;1,0;1,1;0,1"},
		{"non-numeric", "a,b;1,0;1,1;0,1"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseQuad(tc.input)
			assert.Error(t, err)
		})
	}
}
