package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
)

// ORSGeocoder resolves lodging addresses using OpenRouteService.
//
// It coordinates:
//   - Address normalization
//   - Deduplicated, bounded-concurrency lookups
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use. Addresses the service cannot
// resolve are omitted from results rather than failing the batch; a lodging
// without coordinates degrades planning, it never aborts it.
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewORSGeocoder(apiKey string) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
	}, nil
}

// normalize ensures consistent keys by collapsing whitespace.
func (o *ORSGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

type geocodeResult struct {
	address string
	coord   domain.Coordinates
	ok      bool
	err     error
}

// GeocodeMany resolves addresses via /geocode/search, at most five lookups
// in flight at once.
func (o *ORSGeocoder) GeocodeMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.GeocodeMany")(&err)

	seen := make(map[string]struct{}, len(addresses))
	uniq := make([]string, 0, len(addresses))
	for _, a := range addresses {
		norm := o.normalize(a)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		uniq = append(uniq, norm)
	}
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, 5)
	resultsCh := make(chan geocodeResult, len(uniq))
	var wg sync.WaitGroup

	for _, addr := range uniq {
		wg.Add(1)
		go func(addr string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			coord, ok, err := o.geocodeOne(ctx, addr)
			if err != nil {
				resultsCh <- geocodeResult{address: addr, err: err}
				cancel()
				return
			}
			resultsCh <- geocodeResult{address: addr, coord: coord, ok: ok}
		}(addr)
	}

	wg.Wait()
	close(resultsCh)

	out := make(map[string]domain.Coordinates, len(uniq))
	var firstErr error
	for res := range resultsCh {
		if res.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("geocode %q: %w", res.address, res.err)
			}
			continue
		}
		if res.ok {
			out[res.address] = res.coord
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}

// geocodeOne resolves a single address. ok=false means the service returned
// no match, which is not an error.
func (o *ORSGeocoder) geocodeOne(ctx context.Context, addr string) (domain.Coordinates, bool, error) {
	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", addr)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		log.Printf("geocode: no results addr=%q", addr)
		return domain.Coordinates{}, false, nil
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, false, fmt.Errorf("invalid coordinate format for %q", addr)
	}

	return domain.Coordinates{Lon: coords[0], Lat: coords[1]}, true, nil
}
