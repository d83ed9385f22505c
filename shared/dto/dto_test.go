package dto_test

import (
	"net/http"
	"net/url"
	"aula/shared/constant"
	"aula/shared/dto"
	"aula/shared/model"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	// Create test time values
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with zero page parameter",
			queryParams: map[string]string{
				"page": "0",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid limit parameter",
			queryParams: map[string]string{
				"limit": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "email",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "email",
				SortDir: "", // Empty when not provided
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a URL with query parameters
			baseURL := "http://example.com/test"
			u, err := url.Parse(baseURL)
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			// Add query parameters
			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			// Create HTTP request
			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			// Test the method
			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			// Verify results
			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "active",
				Operator: dto.FilterOperatorEq,
				Value:    true,
				Table:    "rooms",
			},
			expectedSQL:  "rooms.active = :active",
			expectedArgs: map[string]any{"active": true},
		},
		{
			name: "less operator",
			filter: dto.Filter{
				Field:    "start_time",
				Operator: dto.FilterOperatorLess,
				Value:    "10:30",
				Table:    "room_schedules",
			},
			expectedSQL:  "room_schedules.start_time < :start_time",
			expectedArgs: map[string]any{"start_time": "10:30"},
		},
		{
			name: "greater operator",
			filter: dto.Filter{
				Field:    "end_time",
				Operator: dto.FilterOperatorGreater,
				Value:    "09:00",
				Table:    "room_schedules",
			},
			expectedSQL:  "room_schedules.end_time > :end_time",
			expectedArgs: map[string]any{"end_time": "09:00"},
		},
		{
			name: "less operator with custom arg name",
			filter: dto.Filter{
				ArgName:  "overlap_end",
				Field:    "start_time",
				Operator: dto.FilterOperatorLess,
				Value:    "12:15",
				Table:    "room_schedules",
			},
			expectedSQL:  "room_schedules.start_time < :overlap_end",
			expectedArgs: map[string]any{"overlap_end": "12:15"},
		},
		{
			name: "greater operator with custom arg name",
			filter: dto.Filter{
				ArgName:  "overlap_start",
				Field:    "end_time",
				Operator: dto.FilterOperatorGreater,
				Value:    "10:45",
				Table:    "room_schedules",
			},
			expectedSQL:  "room_schedules.end_time > :overlap_start",
			expectedArgs: map[string]any{"overlap_start": "10:45"},
		},
		{
			name: "less_eq operator",
			filter: dto.Filter{
				Field:    "capacity",
				Operator: dto.FilterOperatorLessEq,
				Value:    30,
			},
			expectedSQL:  "capacity <= :capacity",
			expectedArgs: map[string]any{"capacity": 30},
		},
		{
			name: "greater_eq operator",
			filter: dto.Filter{
				Field:    "capacity",
				Operator: dto.FilterOperatorGreaterEq,
				Value:    10,
			},
			expectedSQL:  "capacity >= :capacity",
			expectedArgs: map[string]any{"capacity": 10},
		},
		{
			name: "not_eq operator",
			filter: dto.Filter{
				Field:    "id",
				Operator: dto.FilterOperatorNotEq,
				Value:    "some-id",
			},
			expectedSQL:  "id != :id",
			expectedArgs: map[string]any{"id": "some-id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			if sql != tt.expectedSQL {
				t.Errorf("expected clause %q, got %q", tt.expectedSQL, sql)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Errorf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, want := range tt.expectedArgs {
				if got, ok := args[key]; !ok || got != want {
					t.Errorf("expected arg %s to be %v, got %v", key, want, got)
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Operator: dto.FilterOperatorEq,
				Value:    "room-1",
				Table:    "room_schedules",
			},
			dto.Filter{
				ArgName:  "overlap_end",
				Field:    "start_time",
				Operator: dto.FilterOperatorLess,
				Value:    "10:30",
				Table:    "room_schedules",
			},
		},
	}

	sql, args := group.GetWhereClause()

	expected := "(room_schedules.room_id = :room_id AND room_schedules.start_time < :overlap_end)"
	if sql != expected {
		t.Errorf("expected clause %q, got %q", expected, sql)
	}

	if args["room_id"] != "room-1" {
		t.Errorf("expected arg room_id to be 'room-1', got %v", args["room_id"])
	}

	if args["overlap_end"] != "10:30" {
		t.Errorf("expected arg overlap_end to be '10:30', got %v", args["overlap_end"])
	}
}
