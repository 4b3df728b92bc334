package pagination_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagedlist/internal/common/pagination"
	"pagedlist/pkg/pagedlist"
)

func TestBuildLinks(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://api.example.com/pages?sort=name")
	require.NoError(t, err)

	const prefix = "https://api.example.com/pages?"

	tests := []struct {
		name  string
		page  int
		total int
		want  pagination.Links
	}{
		{
			name:  "first page",
			page:  1,
			total: 25,
			want: pagination.Links{
				First: prefix + "page=1&page_size=10&sort=name",
				Next:  prefix + "page=2&page_size=10&sort=name",
				Last:  prefix + "page=3&page_size=10&sort=name",
			},
		},
		{
			name:  "middle page",
			page:  2,
			total: 25,
			want: pagination.Links{
				First: prefix + "page=1&page_size=10&sort=name",
				Prev:  prefix + "page=1&page_size=10&sort=name",
				Next:  prefix + "page=3&page_size=10&sort=name",
				Last:  prefix + "page=3&page_size=10&sort=name",
			},
		},
		{
			name:  "last page",
			page:  3,
			total: 25,
			want: pagination.Links{
				First: prefix + "page=1&page_size=10&sort=name",
				Prev:  prefix + "page=2&page_size=10&sort=name",
				Last:  prefix + "page=3&page_size=10&sort=name",
			},
		},
		{
			name:  "out of range page has no prev or next",
			page:  5,
			total: 25,
			want: pagination.Links{
				First: prefix + "page=1&page_size=10&sort=name",
				Last:  prefix + "page=3&page_size=10&sort=name",
			},
		},
		{
			name:  "empty collection has no links",
			page:  1,
			total: 0,
			want:  pagination.Links{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := pagedlist.NewMetadata(tt.page, 10, tt.total)
			require.NoError(t, err)

			got := pagination.BuildLinks(base, meta)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildLinks() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	assert.Equal(t, "https://api.example.com/pages?sort=name", base.String(), "base URL must not be modified")
}

func TestLinks_Header(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("/pages")
	require.NoError(t, err)

	list, err := pagedlist.New(2, 10, 25, []int{1})
	require.NoError(t, err)

	got := pagination.BuildLinks(base, list).Header()
	want := `</pages?page=1&page_size=10>; rel="first", ` +
		`</pages?page=1&page_size=10>; rel="prev", ` +
		`</pages?page=3&page_size=10>; rel="next", ` +
		`</pages?page=3&page_size=10>; rel="last"`
	assert.Equal(t, want, got)

	assert.Empty(t, pagination.Links{}.Header())
}
