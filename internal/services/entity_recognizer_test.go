package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare json",
			in:   `[{"text":"Docker","label":"TECH"}]`,
			want: `[{"text":"Docker","label":"TECH"}]`,
		},
		{
			name: "json code fence",
			in:   "```json\n[{\"text\":\"AWS\",\"label\":\"ORG\"}]\n```",
			want: `[{"text":"AWS","label":"ORG"}]`,
		},
		{
			name: "plain code fence with whitespace",
			in:   "  ```\n[]\n```  ",
			want: `[]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, cleanJSON(tc.in))
		})
	}
}
