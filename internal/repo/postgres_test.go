package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: true},
		{name: "wrapped unique violation", err: fmt.Errorf("exec: %w", &pq.Error{Code: "23505"}), want: true},
		{name: "serialization failure", err: &pq.Error{Code: "40001"}},
		{name: "plain error", err: errors.New("connection reset")},
		{name: "nil", err: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isUniqueViolation(tc.err))
		})
	}
}
