package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/foldik/course-admin/internal/models"
)

// ParsePageRequest reads the page and limit query parameters. Both are
// required unsigned 32-bit integers; their values are not bounded further.
func ParsePageRequest(q url.Values) (models.PageRequest, error) {
	page, err := parseUint32(q, "page")
	if err != nil {
		return models.PageRequest{}, err
	}
	limit, err := parseUint32(q, "limit")
	if err != nil {
		return models.PageRequest{}, err
	}
	return models.PageRequest{Page: page, Limit: limit}, nil
}

func parseUint32(q url.Values, key string) (uint32, error) {
	if _, ok := q[key]; !ok {
		return 0, fmt.Errorf("missing query parameter %q", key)
	}
	n, err := strconv.ParseUint(q.Get(key), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid query parameter %q: expected an unsigned integer", key)
	}
	return uint32(n), nil
}
