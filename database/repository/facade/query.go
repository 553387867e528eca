package facade

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	// maxPage keeps (page-1)*limit far from integer overflow; a skip this
	// deep matches nothing anyway.
	maxPage = 1_000_000
)

// QueryOptions carries pagination and sorting for QueryAll.
type QueryOptions struct {
	// SortBy is in the format "field:(asc|desc)", comma-separable for
	// multi-key sorts. Direction defaults to ascending.
	SortBy string
	Limit  int
	Page   int
}

// Page is one page of query results.
type Page[T any] struct {
	Results      []T   `json:"results"`
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}

// clampLimit bounds the page size to [1, maxLimit], defaulting to defaultLimit.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// clampPage bounds the 1-indexed page number to [1, maxPage].
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	if page > maxPage {
		return maxPage
	}
	return page
}

// totalPages computes the page count for a result total.
func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// parseSort turns "field:desc,other" into a Mongo sort document.
func parseSort(sortBy string) bson.D {
	var sort bson.D
	for _, part := range strings.Split(sortBy, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field, dir, _ := strings.Cut(part, ":")
		order := 1
		if strings.EqualFold(dir, "desc") {
			order = -1
		}
		sort = append(sort, bson.E{Key: field, Value: order})
	}
	return sort
}

// coerceValue maps a raw query-string value onto the bson type an exact-match
// filter needs: bool, number, or string.
func coerceValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil && (raw == "true" || raw == "false") {
		return b
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// buildFilter picks the allow-listed subset of the raw filter map, preventing
// arbitrary field injection, and coerces values.
func buildFilter(d Descriptor, raw map[string]string) bson.M {
	criteria := bson.M{}
	for _, field := range d.Filterable {
		if value, ok := raw[field]; ok && value != "" {
			criteria[field] = coerceValue(value)
		}
	}
	return d.readFilter(criteria)
}

// QueryAll runs a paginated exact-match query. An empty result is not an
// error; the caller decides whether empty is one.
func QueryAll[T any](d Descriptor, filter map[string]string, opts QueryOptions) (*Page[T], error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	limit := clampLimit(opts.Limit)
	page := clampPage(opts.Page)
	mongoFilter := buildFilter(d, filter)

	total, err := d.Coll.CountDocuments(ctx, mongoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count %ss: %w", d.Name, err)
	}

	findOpts := options.Find().
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))
	if sort := parseSort(opts.SortBy); len(sort) > 0 {
		findOpts.SetSort(sort)
	}

	cursor, err := d.Coll.Find(ctx, mongoFilter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %ss: %w", d.Name, err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode %ss: %w", d.Name, err)
	}

	return &Page[T]{
		Results:      results,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages(total, limit),
		TotalResults: total,
	}, nil
}
