// Package vtc fetches the community statistics from the TruckersMP API
// and normalizes them into a single snapshot type. The snapshot is the
// only shape the rest of the code (JSON handlers, chat embeds) consumes,
// responses are neither cached nor retried.
package vtc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prologistix/backend/config"
	"go.uber.org/zap"
)

// ErrUpstream indicates the TruckersMP API could not deliver a usable response
var ErrUpstream = errors.New("upstream vtc api error")

// Member is one driver on the company roster
type Member struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	SteamID  int64  `json:"steamId"`
	JoinedAt string `json:"joinedAt"`
}

// Snapshot is the normalized view of the company statistics
type Snapshot struct {
	Drivers  int
	Distance int64
	Convoys  int
	Members  []Member
}

// wire format of /v2/vtc/{id}
type vtcResponse struct {
	Error    bool `json:"error"`
	Response struct {
		Name     string `json:"name"`
		Distance int64  `json:"distance"`
		Convoys  int    `json:"convoys"`
		Members  []struct {
			Username string `json:"username"`
			Role     string `json:"role"`
			SteamID  int64  `json:"steamID"`
			JoinedAt string `json:"joinedAt"`
		} `json:"members"`
	} `json:"response"`
}

type Client struct {
	http    *http.Client
	baseURL string
	vtcID   int
	log     *zap.Logger
}

func NewClient(cfg *config.VTCConfiguration, log *zap.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: cfg.APIURL,
		vtcID:   cfg.ID,
		log:     log,
	}
}

// Snapshot fetches the current company statistics
func (c *Client) Snapshot(ctx context.Context) (*Snapshot, error) {
	url := fmt.Sprintf("%s/vtc/%d", c.baseURL, c.vtcID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error("vtc api unreachable", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		c.log.Error("vtc api returned non-ok status", zap.Int("status", res.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, res.StatusCode)
	}
	var payload vtcResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		c.log.Error("vtc api returned malformed payload", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if payload.Error {
		return nil, fmt.Errorf("%w: api reported an error", ErrUpstream)
	}
	snapshot := &Snapshot{
		Drivers:  len(payload.Response.Members),
		Distance: payload.Response.Distance,
		Convoys:  payload.Response.Convoys,
		Members:  make([]Member, len(payload.Response.Members)),
	}
	for i, m := range payload.Response.Members {
		snapshot.Members[i] = Member{
			Name:     m.Username,
			Role:     m.Role,
			SteamID:  m.SteamID,
			JoinedAt: m.JoinedAt,
		}
	}
	return snapshot, nil
}
