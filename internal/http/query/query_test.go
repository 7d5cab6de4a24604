package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listParams struct {
	Status string `query:"status"`
	Search string `query:"search"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    listParams
		wantErr bool
	}{
		{
			name: "все параметры",
			raw:  "status=active&search=sarah&page=2&limit=5",
			want: listParams{Status: "active", Search: "sarah", Page: 2, Limit: 5},
		},
		{
			name: "пустой запрос",
			raw:  "",
			want: listParams{},
		},
		{
			name: "пустые значения пропускаются",
			raw:  "page=&limit=3",
			want: listParams{Limit: 3},
		},
		{
			name: "unknown keys ignored",
			raw:  "sort=name&page=1",
			want: listParams{Page: 1},
		},
		{
			name: "first value wins",
			raw:  "page=3&page=4",
			want: listParams{Page: 3},
		},
		{
			name:    "non-numeric page",
			raw:     "page=abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			var got listParams
			err = Decode(values, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
