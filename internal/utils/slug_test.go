package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain english", "Kung Pao Chicken", "kung-pao-chicken"},
		{"diacritics stripped", "Crème Brûlée", "creme-brulee"},
		{"han transliterated", "宫保鸡丁", "gong-bao-ji-ding"},
		{"mixed scripts", "红烧 Pork Belly", "hong-shao-pork-belly"},
		{"punctuation collapses", "Mac & Cheese!!", "mac-cheese"},
		{"digits kept", "5-Minute Oats", "5-minute-oats"},
		{"empty falls back", "", "recipe"},
		{"symbols only fall back", "!!!", "recipe"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
