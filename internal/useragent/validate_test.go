package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want bool
	}{
		{
			name: "realistic chrome agent",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0 Safari/537.36",
			want: true,
		},
		{
			name: "realistic firefox agent",
			ua:   "Mozilla/5.0 (X11; Linux x86_64; rv:118.0) Gecko/20100101 Firefox/118.0",
			want: true,
		},
		{
			name: "wrong prefix",
			ua:   "Opera/9.80 (Windows NT 6.1) Presto/2.12.388 Chrome/116.0",
			want: false,
		},
		{
			name: "unbalanced parentheses",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64 AppleWebKit/537.36 Chrome/116.0 Safari/537.36",
			want: false,
		},
		{
			name: "too short",
			ua:   "Mozilla/5.0 (X11) Edg/1",
			want: false,
		},
		{
			name: "no browser marker",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko)",
			want: false,
		},
		{
			name: "no os marker",
			ua:   "Mozilla/5.0 (Unknown 1.0; something else) AppleWebKit/537.36 Chrome/116.0 Safari/537.36",
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Valid(tc.ua))
		})
	}
}
