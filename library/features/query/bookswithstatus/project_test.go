package bookswithstatus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chalhotra/LibMgmt/library/features/query/bookswithstatus"
)

func Test_StatusFor(t *testing.T) {
	testCases := []struct {
		name      string
		quantity  int
		borrowers []string
		want      string
	}{
		{"copies left", 1, []string{"alice"}, "Available"},
		{"all lent out", 0, []string{"alice", "bob"}, "Borrowed by alice, bob"},
		{"held by pending requests only", 0, nil, "Not Available"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bookswithstatus.StatusFor(tc.quantity, tc.borrowers))
		})
	}
}
