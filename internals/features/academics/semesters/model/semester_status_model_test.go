// file: internals/features/academics/semesters/model/semester_status_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSemesterState(t *testing.T) {
	cases := []struct {
		raw  string
		want SemesterState
		ok   bool
	}{
		{"open", SemesterOpen, true},
		{"closed", SemesterClosed, true},
		{"  OPEN  ", SemesterOpen, true},
		{"Closed", SemesterClosed, true},
		{"", "", false},
		{"opened", "", false},
		{"aktif", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseSemesterState(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}
