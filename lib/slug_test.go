package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Roses", "roses"},
		{"spaces", "Red Roses", "red-roses"},
		{"numbers kept", "Bouquet 12", "bouquet-12"},
		{"punctuation collapsed", "Mom's  Favourite!", "mom-s-favourite"},
		{"leading trailing junk", "  --Tulips--  ", "tulips"},
		{"unicode stripped", "Café Brönte", "caf-br-nte"},
		{"empty", "", ""},
		{"only junk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
