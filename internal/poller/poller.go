// Package poller runs the fixed-interval dashboard poll loop.
//
// 틱은 5초 고정 간격으로 무한 반복하며 백오프나 재시도 상한이 없다.
// 느린 틱이 간격을 넘기면 다음 틱과 겹쳐서 돌 수 있고, 틱 사이에 상호
// 배제를 두지 않는다. 대신 커밋 시점에 단조 증가 스탬프를 비교해서
// 늦게 도착한 오래된 결과는 버린다 (마지막 전체 스냅샷이 이김).
package poller

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/soc-lens/backend/internal/metrics"
	"github.com/soc-lens/backend/internal/model"
)

type Status string

const (
	StatusInitializing Status = "initializing"
	StatusLive         Status = "live"
	StatusError        Status = "error"
)

// Snapshot - 폴링 한 틱의 결과
// Stamp는 틱 시작 시점에 발급되는 단조 증가 버전
type Snapshot struct {
	Stamp   uint64
	TakenAt time.Time
	Status  Status
	Data    *model.AlertsResponse
	Err     string
}

type alertsFetcher interface {
	Fetch() (*model.AlertsResponse, error)
}

type Poller struct {
	svc      alertsFetcher
	interval time.Duration

	nextStamp atomic.Uint64

	mu      sync.RWMutex
	current Snapshot
}

func New(svc alertsFetcher, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Poller{
		svc:      svc,
		interval: interval,
		current:  Snapshot{Status: StatusInitializing},
	}
}

// Run - 즉시 한 번 폴링하고 이후 고정 간격으로 반복
// 틱 결과와 무관하게 다음 틱은 항상 예약된다
func (p *Poller) Run(ctx context.Context) {
	p.Tick()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go p.Tick() // 느린 틱과 겹쳐도 그대로 진행
		}
	}
}

// Tick - 폴링 한 번 수행하고 스냅샷 커밋
func (p *Poller) Tick() {
	stamp := p.nextStamp.Add(1)
	start := time.Now()

	data, err := p.svc.Fetch()
	metrics.PollDuration.Observe(time.Since(start).Seconds())

	snap := Snapshot{Stamp: stamp, TakenAt: time.Now(), Data: data}
	if err != nil {
		snap.Status = StatusError
		snap.Err = err.Error()
		metrics.PollsTotal.WithLabelValues("error").Inc()
		log.Printf("Poll failed: %v", err)
	} else {
		snap.Status = StatusLive
		metrics.PollsTotal.WithLabelValues("live").Inc()
	}

	p.commit(snap)
}

// commit - 스탬프가 현재보다 클 때만 교체
// 에러 틱은 상태만 바꾸고 마지막 정상 데이터를 유지한다
func (p *Poller) commit(snap Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if snap.Stamp <= p.current.Stamp {
		log.Printf("Discarding stale poll result (stamp=%d, current=%d)", snap.Stamp, p.current.Stamp)
		return
	}
	if snap.Data == nil {
		snap.Data = p.current.Data
	}
	p.current = snap
}

// Latest - 가장 최신 스냅샷. 렌더 직전에 호출해야 함
func (p *Poller) Latest() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}
