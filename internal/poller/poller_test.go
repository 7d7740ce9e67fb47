package poller

import (
	"errors"
	"testing"
	"time"

	"github.com/soc-lens/backend/internal/model"
)

type fakeFetcher struct {
	resp *model.AlertsResponse
	err  error
}

func (f *fakeFetcher) Fetch() (*model.AlertsResponse, error) {
	return f.resp, f.err
}

func TestTickCommitsLiveSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{resp: &model.AlertsResponse{Alerts: []model.Alert{{Rule: model.Rule{ID: "1"}}}}}
	p := New(fetcher, time.Second)

	if p.Latest().Status != StatusInitializing {
		t.Fatalf("initial status = %q", p.Latest().Status)
	}

	p.Tick()
	snap := p.Latest()
	if snap.Status != StatusLive {
		t.Fatalf("status = %q", snap.Status)
	}
	if snap.Stamp != 1 {
		t.Fatalf("stamp = %d", snap.Stamp)
	}
	if len(snap.Data.Alerts) != 1 {
		t.Fatalf("data = %+v", snap.Data)
	}
}

// 에러 틱은 상태만 error로 바꾸고 마지막 정상 데이터는 유지
func TestTickErrorKeepsLastData(t *testing.T) {
	fetcher := &fakeFetcher{resp: &model.AlertsResponse{Alerts: []model.Alert{{Rule: model.Rule{ID: "1"}}}}}
	p := New(fetcher, time.Second)
	p.Tick()

	fetcher.resp = nil
	fetcher.err = errors.New("feed gone")
	p.Tick()

	snap := p.Latest()
	if snap.Status != StatusError {
		t.Fatalf("status = %q", snap.Status)
	}
	if snap.Err == "" {
		t.Fatalf("error text must be recorded")
	}
	if snap.Data == nil || len(snap.Data.Alerts) != 1 {
		t.Fatalf("stale data must survive an error tick: %+v", snap.Data)
	}
	if snap.Stamp != 2 {
		t.Fatalf("stamp = %d", snap.Stamp)
	}
}

// 늦게 도착한 오래된 스냅샷은 버려진다 (마지막 전체 렌더가 이김)
func TestCommitDiscardsStaleStamp(t *testing.T) {
	p := New(&fakeFetcher{}, time.Second)

	fresh := Snapshot{Stamp: 5, Status: StatusLive, Data: &model.AlertsResponse{
		Alerts: []model.Alert{{Rule: model.Rule{ID: "fresh"}}},
	}}
	p.commit(fresh)

	stale := Snapshot{Stamp: 3, Status: StatusLive, Data: &model.AlertsResponse{
		Alerts: []model.Alert{{Rule: model.Rule{ID: "stale"}}},
	}}
	p.commit(stale)

	snap := p.Latest()
	if snap.Stamp != 5 {
		t.Fatalf("stamp = %d, stale commit must be discarded", snap.Stamp)
	}
	if snap.Data.Alerts[0].Rule.ID != "fresh" {
		t.Fatalf("data overwritten by stale snapshot")
	}
}
