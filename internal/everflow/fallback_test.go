package everflow

import (
	"context"
	"errors"
	"testing"
)

func TestResolveWithoutCredentials(t *testing.T) {
	called := false
	res := Resolve(context.Background(), false, []string{"mock"},
		func(ctx context.Context) ([]string, *Paging, error) {
			called = true
			return []string{"live"}, nil, nil
		})

	if called {
		t.Error("fetch must not run without credentials")
	}
	if !res.UsingMockData || res.Data[0] != "mock" {
		t.Errorf("res = %+v", res)
	}
	if res.APIError != "" {
		t.Errorf("APIError = %q, want empty when no call was made", res.APIError)
	}
}

func TestResolveFetchError(t *testing.T) {
	res := Resolve(context.Background(), true, []string{"mock"},
		func(ctx context.Context) ([]string, *Paging, error) {
			return nil, nil, errors.New("upstream exploded")
		})

	if !res.UsingMockData {
		t.Error("error must fall back to mock data")
	}
	if res.APIError != "upstream exploded" {
		t.Errorf("APIError = %q", res.APIError)
	}
	if len(res.Data) != 1 || res.Data[0] != "mock" {
		t.Errorf("Data = %v", res.Data)
	}
}

func TestResolveEmptyResult(t *testing.T) {
	res := Resolve(context.Background(), true, []string{"mock"},
		func(ctx context.Context) ([]string, *Paging, error) {
			return []string{}, nil, nil
		})

	if !res.UsingMockData {
		t.Error("empty live data must fall back to mock data")
	}
	if res.APIError != "" {
		t.Errorf("APIError = %q, empty result is not an error", res.APIError)
	}
}

func TestResolveLiveData(t *testing.T) {
	res := Resolve(context.Background(), true, []string{"mock"},
		func(ctx context.Context) ([]string, *Paging, error) {
			return []string{"a", "b"}, &Paging{Page: 2, PageSize: 2, TotalCount: 10}, nil
		})

	if res.UsingMockData {
		t.Error("live data must not be flagged as mock")
	}
	if len(res.Data) != 2 {
		t.Errorf("Data = %v", res.Data)
	}
	if res.Paging == nil || res.Paging.TotalCount != 10 {
		t.Errorf("Paging = %+v", res.Paging)
	}
}

func TestResolveSynthesizesPaging(t *testing.T) {
	res := Resolve(context.Background(), true, []string{"mock"},
		func(ctx context.Context) ([]string, *Paging, error) {
			return []string{"a", "b", "c"}, nil, nil
		})

	if res.Paging == nil || res.Paging.TotalCount != 3 || res.Paging.Page != 1 {
		t.Errorf("Paging = %+v", res.Paging)
	}
}
