package everflow

import "context"

// Result is the outcome of a fetch with mock fallback. UsingMockData is
// true whenever Data did not come from the live API, and APIError carries
// the upstream failure message when one occurred.
type Result[T any] struct {
	Data          []T
	Paging        *Paging
	UsingMockData bool
	APIError      string
}

// Resolve fetches live data and falls back to the mock dataset on any
// recoverable condition: missing credentials, an upstream error, or an
// empty result. Callers always get a renderable dataset.
func Resolve[T any](ctx context.Context, hasCreds bool, mock []T, fetch func(ctx context.Context) ([]T, *Paging, error)) Result[T] {
	if !hasCreds {
		return mockResult(mock)
	}

	data, paging, err := fetch(ctx)
	if err != nil {
		res := mockResult(mock)
		res.APIError = err.Error()
		return res
	}
	if len(data) == 0 {
		return mockResult(mock)
	}

	if paging == nil {
		paging = &Paging{Page: 1, PageSize: len(data), TotalCount: len(data)}
	}
	return Result[T]{Data: data, Paging: paging}
}

func mockResult[T any](mock []T) Result[T] {
	return Result[T]{
		Data:          mock,
		Paging:        &Paging{Page: 1, PageSize: len(mock), TotalCount: len(mock)},
		UsingMockData: true,
	}
}
