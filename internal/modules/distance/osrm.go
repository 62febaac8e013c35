// README: OSRM road-routing client (default Router implementation).
package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"farecast/internal/types"
)

// OSRMRouter queries an OSRM instance for the shortest driving route length.
// No turn-by-turn geometry is requested.
type OSRMRouter struct {
	client  *http.Client
	baseURL string
}

func NewOSRMRouter(baseURL string, client *http.Client) *OSRMRouter {
	if client == nil {
		client = http.DefaultClient
	}
	return &OSRMRouter{client: client, baseURL: baseURL}
}

type osrmResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// RouteMeters returns the driving route length in meters between a and b.
func (r *OSRMRouter) RouteMeters(ctx context.Context, a, b types.Coordinate) (float64, error) {
	// OSRM wants lng,lat pairs.
	u := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		r.baseURL, a.Lng, a.Lat, b.Lng, b.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.New("routing status " + resp.Status)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if len(body.Routes) == 0 {
		return 0, errors.New("no route found")
	}
	return body.Routes[0].Distance, nil
}
