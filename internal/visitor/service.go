package visitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Baseline carried over from the pre-digital visitor register.
const totalBaseline = 12847

const (
	totalKey     = "temple:visitors:total"
	dailyKeyFmt  = "temple:visitors:day:%s"
	dailyKeyTTL  = 48 * time.Hour
	statsTimeout = 3 * time.Second
)

// Stats is the public visitor counter snapshot.
type Stats struct {
	TotalVisitors  int64  `json:"total_visitors"`
	TodaysVisitors int64  `json:"todays_visitors"`
	LastResetDate  string `json:"last_reset_date"`
}

type Service interface {
	Track(ctx context.Context) error
	GetStats(ctx context.Context) (*Stats, error)
}

// service counts visits in Redis so every instance shares the same
// counters. Without Redis it degrades to process-local counters.
type service struct {
	rdb *redis.Client

	mu         sync.Mutex
	localTotal int64
	localDaily map[string]int64
}

func NewService(rdb *redis.Client) Service {
	return &service{rdb: rdb, localDaily: map[string]int64{}}
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (s *service) Track(ctx context.Context) error {
	day := today()
	if s.rdb == nil {
		s.mu.Lock()
		s.localTotal++
		s.localDaily[day]++
		s.mu.Unlock()
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, statsTimeout)
	defer cancel()

	dailyKey := fmt.Sprintf(dailyKeyFmt, day)
	pipe := s.rdb.Pipeline()
	pipe.Incr(ctx, totalKey)
	pipe.Incr(ctx, dailyKey)
	// daily keys expire on their own, no reset job needed
	pipe.Expire(ctx, dailyKey, dailyKeyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	day := today()
	if s.rdb == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return &Stats{
			TotalVisitors:  totalBaseline + s.localTotal,
			TodaysVisitors: s.localDaily[day],
			LastResetDate:  day,
		}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, statsTimeout)
	defer cancel()

	total, err := s.rdb.Get(ctx, totalKey).Int64()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	daily, err := s.rdb.Get(ctx, fmt.Sprintf(dailyKeyFmt, day)).Int64()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	return &Stats{
		TotalVisitors:  totalBaseline + total,
		TodaysVisitors: daily,
		LastResetDate:  day,
	}, nil
}
