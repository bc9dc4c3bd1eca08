package beverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSizeSurcharge(t *testing.T) {
	tests := []struct {
		size     Size
		expected float64
	}{
		{Small, 0.99},
		{Medium, 1.99},
		{Large, 2.99},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.size.Surcharge())
		})
	}
}

func TestSizeZeroValueIsSmall(t *testing.T) {
	var s Size
	assert.Equal(t, Small, s)
}

func TestSizeOutOfRange(t *testing.T) {
	s := Size(7)
	assert.False(t, s.IsValid())
	assert.Zero(t, s.Surcharge())
	assert.Equal(t, "Size(7)", s.String())

	_, err := s.MarshalText()
	assert.ErrorIs(t, err, ErrUnknownSize)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected Size
		wantErr  bool
	}{
		{"Small", Small, false},
		{"medium", Medium, false},
		{" LARGE ", Large, false},
		{"venti", Small, true},
		{"", Small, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSizeYAML(t *testing.T) {
	var doc struct {
		Size Size `yaml:"size"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("size: large\n"), &doc))
	assert.Equal(t, Large, doc.Size)

	err := yaml.Unmarshal([]byte("size: grande\n"), &doc)
	assert.Error(t, err)
}
