package stats

import (
	"context"
	"net/http"
	"testing"

	"github.com/prologistix/backend/vtc"
	"github.com/steinfletcher/apitest"
	"go.uber.org/zap"
)

type stubSnapshotSource struct {
	snapshot *vtc.Snapshot
	err      error
}

func (s *stubSnapshotSource) Snapshot(ctx context.Context) (*vtc.Snapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func TestHealthEndpoint(t *testing.T) {
	s := NewStatsRessource(zap.NewNop(), &stubSnapshotSource{})
	apitest.New().
		HandlerFunc(s.health).
		Get("/health").
		Expect(t).
		Body(`{"status":"ok"}`).
		Status(http.StatusOK).
		End()
}

func TestStatsEndpoint(t *testing.T) {
	source := &stubSnapshotSource{
		snapshot: &vtc.Snapshot{
			Drivers:  42,
			Distance: 125000,
			Convoys:  12,
		},
	}
	s := NewStatsRessource(zap.NewNop(), source)
	apitest.New().
		Handler(s.Router()).
		Get("/stats").
		Expect(t).
		Body(`{"drivers":42,"distance":125000,"convoys":12}`).
		Status(http.StatusOK).
		End()
}

func TestStatsEndpointUpstreamDown(t *testing.T) {
	s := NewStatsRessource(zap.NewNop(), &stubSnapshotSource{err: vtc.ErrUpstream})
	apitest.New().
		Handler(s.Router()).
		Get("/stats").
		Expect(t).
		Body(`{"error":"failed to fetch stats"}`).
		Status(http.StatusBadGateway).
		End()
}

func TestDriversEndpoint(t *testing.T) {
	source := &stubSnapshotSource{
		snapshot: &vtc.Snapshot{
			Drivers: 1,
			Members: []vtc.Member{
				{
					Name:     "Alice",
					Role:     "Owner",
					SteamID:  76561198000000001,
					JoinedAt: "2023-05-01 10:00:00",
				},
			},
		},
	}
	s := NewStatsRessource(zap.NewNop(), source)
	apitest.New().
		Handler(s.Router()).
		Get("/drivers").
		Expect(t).
		Body(`[{"name":"Alice","role":"Owner","steamId":76561198000000001,"joinedAt":"2023-05-01 10:00:00"}]`).
		Status(http.StatusOK).
		End()
}

func TestDriversEndpointUpstreamDown(t *testing.T) {
	s := NewStatsRessource(zap.NewNop(), &stubSnapshotSource{err: vtc.ErrUpstream})
	apitest.New().
		Handler(s.Router()).
		Get("/drivers").
		Expect(t).
		Body(`{"error":"failed to fetch drivers"}`).
		Status(http.StatusBadGateway).
		End()
}
