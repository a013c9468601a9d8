package data

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// clampPage applies the shared limit/offset guardrails for List queries.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// toPtrSlice converts a value slice into the pointer slice repositories return.
func toPtrSlice[T any](in []T) []*T {
	out := make([]*T, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}
