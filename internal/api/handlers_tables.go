package api

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/ignite/everflow-dashboard/internal/everflow"
)

// Offers serves the normalized offer catalog
func (h *Handlers) Offers(w http.ResponseWriter, r *http.Request) {
	opts := parseTableOptions(r)

	res := everflow.Resolve(r.Context(), h.client.HasCredentials(), everflow.MockOffers(),
		func(ctx context.Context) ([]everflow.Offer, *everflow.Paging, error) {
			resp, err := h.client.GetOffers(ctx, opts)
			if err != nil {
				h.logger.Printf("offers fetch failed: %v", err)
				return nil, nil, err
			}
			return everflow.NormalizeOffers(resp.Offers), resp.Paging, nil
		})

	respondResult(w, res)
}

// AffiliateOffers serves offers from the affiliate-side catalog. The
// type query parameter selects runnable (default) or all offers.
func (h *Handlers) AffiliateOffers(w http.ResponseWriter, r *http.Request) {
	opts := parseTableOptions(r)
	offerType := r.URL.Query().Get("type")
	if offerType == "" {
		offerType = everflow.OfferTypeRunnable
	}

	res := everflow.Resolve(r.Context(), h.client.HasCredentials(), everflow.MockOffers(),
		func(ctx context.Context) ([]everflow.Offer, *everflow.Paging, error) {
			resp, err := h.client.GetAffiliateOffers(ctx, offerType, opts)
			if err != nil {
				h.logger.Printf("affiliate offers fetch failed: %v", err)
				return nil, nil, err
			}
			return everflow.NormalizeOffers(resp.Offers), resp.Paging, nil
		})

	respondResult(w, res)
}

// Affiliates serves the normalized affiliate roster
func (h *Handlers) Affiliates(w http.ResponseWriter, r *http.Request) {
	opts := parseTableOptions(r)

	res := everflow.Resolve(r.Context(), h.client.HasCredentials(), everflow.MockAffiliates(),
		func(ctx context.Context) ([]everflow.Affiliate, *everflow.Paging, error) {
			resp, err := h.client.GetAffiliates(ctx, opts)
			if err != nil {
				h.logger.Printf("affiliates fetch failed: %v", err)
				return nil, nil, err
			}
			return everflow.NormalizeAffiliates(resp.Affiliates), resp.Paging, nil
		})

	respondResult(w, res)
}

// Advertisers serves the normalized advertiser roster
func (h *Handlers) Advertisers(w http.ResponseWriter, r *http.Request) {
	res := everflow.Resolve(r.Context(), h.client.HasCredentials(), everflow.MockAdvertisers(),
		func(ctx context.Context) ([]everflow.Advertiser, *everflow.Paging, error) {
			resp, err := h.client.GetAdvertisers(ctx)
			if err != nil {
				h.logger.Printf("advertisers fetch failed: %v", err)
				return nil, nil, err
			}
			return everflow.NormalizeAdvertisers(resp.Advertisers), resp.Paging, nil
		})

	respondResult(w, res)
}

// Deals serves normalized advertiser deals
func (h *Handlers) Deals(w http.ResponseWriter, r *http.Request) {
	opts := parseTableOptions(r)

	res := everflow.Resolve(r.Context(), h.client.HasCredentials(), everflow.MockDeals(),
		func(ctx context.Context) ([]everflow.Deal, *everflow.Paging, error) {
			resp, err := h.client.GetDeals(ctx, opts)
			if err != nil {
				h.logger.Printf("deals fetch failed: %v", err)
				return nil, nil, err
			}
			return everflow.NormalizeDeals(resp.Deals), resp.Paging, nil
		})

	respondResult(w, res)
}

// CouponCodes serves normalized coupon codes
func (h *Handlers) CouponCodes(w http.ResponseWriter, r *http.Request) {
	opts := parseTableOptions(r)

	res := everflow.Resolve(r.Context(), h.client.HasCredentials(), everflow.MockCouponCodes(),
		func(ctx context.Context) ([]everflow.CouponCode, *everflow.Paging, error) {
			resp, err := h.client.GetCouponCodes(ctx, opts)
			if err != nil {
				h.logger.Printf("coupon codes fetch failed: %v", err)
				return nil, nil, err
			}
			return everflow.NormalizeCouponCodes(resp.CouponCodes), resp.Paging, nil
		})

	respondResult(w, res)
}

// Traffic serves the combined traffic control view. The three upstream
// lists are fetched concurrently; any failure falls back to sample data
// as a whole so the view stays consistent.
func (h *Handlers) Traffic(w http.ResponseWriter, r *http.Request) {
	env := newEnvelope()

	if !h.client.HasCredentials() {
		env.Data = everflow.MockTrafficData()
		env.UsingMockData = true
		respondJSON(w, http.StatusOK, env)
		return
	}

	var (
		controls  *everflow.TrafficControlsResponse
		sources   *everflow.BlockedSourcesResponse
		variables *everflow.BlockedVariablesResponse
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		controls, err = h.client.GetTrafficControls(ctx)
		return err
	})
	g.Go(func() (err error) {
		sources, err = h.client.GetBlockedSources(ctx)
		return err
	})
	g.Go(func() (err error) {
		variables, err = h.client.GetBlockedVariables(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.logger.Printf("traffic fetch failed: %v", err)
		env.Data = everflow.MockTrafficData()
		env.UsingMockData = true
		env.APIError = err.Error()
		respondJSON(w, http.StatusOK, env)
		return
	}

	env.Data = everflow.NormalizeTrafficData(
		controls.TrafficControls,
		sources.BlockedSources,
		variables.Variables,
	)
	respondJSON(w, http.StatusOK, env)
}
