package utils

import (
	"net/url"
	"strconv"

	"github.com/JuanDPAffi/redelex-api/pkg/types"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseFilter extracts search, pagination and sort parameters from the
// query string.
func ParseFilter(values url.Values) types.Filter {
	limit := DefaultLimit
	page := 1

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
			if limit > MaxLimit {
				limit = MaxLimit
			}
		}
	}
	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	return types.Filter{
		Search:         values.Get("search"),
		Limit:          limit,
		Page:           page,
		Offset:         (page - 1) * limit,
		WithPagination: values.Get("withPagination") != "false",
	}
}
