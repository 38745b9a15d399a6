package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"start", SortStart},
		{"posted", SortPosted},
		{"updated", SortUpdated},
		{"alpha_asc", SortAlphaAsc},
		{"ALPHA_DESC", SortAlphaDesc},
		{"", SortStart},
		{"popularity", SortStart},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortKey(tt.in))
		})
	}
}

func TestParseTagList(t *testing.T) {
	assert.Nil(t, ParseTagList(""))
	assert.Nil(t, ParseTagList(" , ,"))
	assert.Equal(t, []string{"Workshop", "Engineering"}, ParseTagList("Workshop, Engineering"))
	assert.Equal(t, []string{"A", "B"}, ParseTagList("A,B,A, B"))
}

func TestPaginationParams(t *testing.T) {
	p := PaginationParams{Page: 0, PageSize: 0}.Normalize(3)
	assert.Equal(t, PaginationParams{Page: 1, PageSize: 3}, p)
	assert.Equal(t, 0, p.Offset())

	p = PaginationParams{Page: 2, PageSize: 5}.Normalize(3)
	assert.Equal(t, 5, p.Offset())
	assert.Equal(t, 0, PaginationParams{Page: -4, PageSize: 5}.Offset())
	assert.Equal(t, MaxPageSize, PaginationParams{Page: 1, PageSize: 5000}.Normalize(3).PageSize)

	huge := PaginationParams{Page: math.MaxInt, PageSize: MaxPageSize}.Normalize(3)
	assert.Equal(t, MaxPage, huge.Page)
	assert.Positive(t, huge.Offset())
	assert.LessOrEqual(t, huge.Offset(), math.MaxInt32)
}

func TestEventInput_Normalize(t *testing.T) {
	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)
	negative := -5
	zero := 0

	tests := []struct {
		name    string
		in      EventInput
		wantErr bool
		check   func(t *testing.T, in EventInput)
	}{
		{
			name: "defaults status and normalizes tags",
			in:   EventInput{Name: "  Demo ", Tags: []string{"Workshop", " Workshop", ""}},
			check: func(t *testing.T, in EventInput) {
				assert.Equal(t, "Demo", in.Name)
				assert.Equal(t, EventStatusPublished, in.Status)
				assert.Equal(t, []string{"Workshop"}, in.Tags)
			},
		},
		{name: "missing name", in: EventInput{Name: "   "}, wantErr: true},
		{name: "unknown status", in: EventInput{Name: "x", Status: "archived"}, wantErr: true},
		{name: "end before start", in: EventInput{Name: "x", StartTime: &start, EndTime: &before}, wantErr: true},
		{name: "capacity below unlimited", in: EventInput{Name: "x", Capacity: &negative}, wantErr: true},
		{name: "zero capacity allowed", in: EventInput{Name: "x", Capacity: &zero}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			err := in.Normalize()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, in)
			}
		})
	}
}

func TestNewEvent_DefaultsCapacity(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e := NewEvent("user-1", &EventInput{Name: "Demo", Status: EventStatusDraft}, now)
	assert.Equal(t, UnlimitedCapacity, e.Capacity)
	assert.Equal(t, "user-1", e.ContributorID)
	assert.Equal(t, now, e.CreatedAt)
	assert.Equal(t, now, e.UpdatedAt)
	assert.Equal(t, EventStatusDraft, e.Status)
}
