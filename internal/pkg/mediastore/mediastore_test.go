package mediastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "hosted url with extension",
			url:  "https://media.example.com/v1712345/projects/abc123def.png",
			want: "abc123def",
		},
		{
			name: "query string stripped",
			url:  "https://media.example.com/v1712345/abc123def.jpg?sig=xyz&exp=99",
			want: "abc123def",
		},
		{
			name: "no extension",
			url:  "https://media.example.com/folder/rawsegment",
			want: "rawsegment",
		},
		{
			name: "local uploads url",
			url:  "/uploads/8b5c2c1e-91a2-4a8e-9a77-6a1f4e7c2d10.webp",
			want: "8b5c2c1e-91a2-4a8e-9a77-6a1f4e7c2d10",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicID(tt.url))
		})
	}
}
