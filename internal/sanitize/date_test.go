// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/resume-engine/pkg/types"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2021-06", "June 2021"},
		{"2019-01", "January 2019"},
		{"2020-12", "December 2020"},
		{"Present", "Present"},
		{"present", "Present"},
		{"PRESENT", "Present"},
		{"not-a-date", "not-a-date"},
		{"2021-13", "2021-13"},
		{"2021-6", "2021-6"},
		{"2021-06-15", "2021-06-15"},
		{"", ""},
		{"Summer 2020", "Summer 2020"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.input))
		})
	}
}

func TestFormatDateValue(t *testing.T) {
	assert.Equal(t, types.String("June 2021"), FormatDateValue(types.String("2021-06")))
	assert.Equal(t, types.Number(2021), FormatDateValue(types.Number(2021)))
	assert.Equal(t, types.Null{}, FormatDateValue(types.Null{}))
	assert.Equal(t, types.Bool(true), FormatDateValue(types.Bool(true)))
}
