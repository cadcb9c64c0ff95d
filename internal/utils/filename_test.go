package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cover.jpg", "cover.jpg"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\system.ini`, "system.ini"},
		{"my movie poster.png", "my_movie_poster.png"},
		{"weird%$#name.gif", "weird___name.gif"},
		{"...", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SecureFilename(tt.in), "input %q", tt.in)
	}
}

func TestUploadName(t *testing.T) {
	now := time.Unix(1700000000, 0)
	assert.Equal(t, "1700000000_cover.jpg", UploadName("cover.jpg", now))
	assert.Equal(t, "1700000000_upload", UploadName("", now))
	assert.Equal(t, "1700000000_passwd", UploadName("../passwd", now))
}
