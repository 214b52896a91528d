package handlers

import (
	"strconv"
	"strings"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

type listQueryParams struct {
	Limit  int
	Offset int
}

func parseListQueryParams(rawLimit, rawOffset string) listQueryParams {
	limit := defaultPageLimit
	if parsedLimit, err := strconv.Atoi(strings.TrimSpace(rawLimit)); err == nil && parsedLimit > 0 {
		limit = parsedLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	offset := 0
	if parsedOffset, err := strconv.Atoi(strings.TrimSpace(rawOffset)); err == nil && parsedOffset >= 0 {
		offset = parsedOffset
	}

	return listQueryParams{
		Limit:  limit,
		Offset: offset,
	}
}
