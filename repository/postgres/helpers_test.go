package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	tests := []struct {
		keyword string
		want    string
	}{
		{keyword: "Test", want: "%Test%"},
		{keyword: "", want: "%%"},
		{keyword: "50%", want: `%50\%%`},
		{keyword: "snake_case", want: `%snake\_case%`},
		{keyword: `back\slash`, want: `%back\\slash%`},
		{keyword: "Заголовок", want: "%Заголовок%"},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.keyword))
		})
	}
}
