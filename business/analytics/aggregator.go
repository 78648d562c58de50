package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pesqueriaOutfitters/domain"
	"pesqueriaOutfitters/pkg/logger"
)

type SignalConfig struct {
	BrowsingWindowHours   int
	BrowsingMaxEvents     int
	MinViewsForConversion int
}

const (
	defaultBrowsingWindowHours   = 24
	defaultBrowsingMaxEvents     = 100
	defaultMinViewsForConversion = 5
	conversionWindowDays         = 30
)

func DefaultSignalConfig() SignalConfig {
	return SignalConfig{
		BrowsingWindowHours:   defaultBrowsingWindowHours,
		BrowsingMaxEvents:     defaultBrowsingMaxEvents,
		MinViewsForConversion: defaultMinViewsForConversion,
	}
}

// SignalService derives rollups from recorded events. Every query recomputes
// from the event rows inside its window; nothing is cached between calls, so
// an empty window is just an empty answer.
type SignalService struct {
	eventRepo EventRepository
	cfg       SignalConfig
}

func NewSignalService(eventRepo EventRepository, cfg SignalConfig) *SignalService {
	if cfg.BrowsingWindowHours <= 0 {
		cfg.BrowsingWindowHours = defaultBrowsingWindowHours
	}
	if cfg.BrowsingMaxEvents <= 0 {
		cfg.BrowsingMaxEvents = defaultBrowsingMaxEvents
	}
	if cfg.MinViewsForConversion <= 0 {
		cfg.MinViewsForConversion = defaultMinViewsForConversion
	}

	return &SignalService{
		eventRepo: eventRepo,
		cfg:       cfg,
	}
}

// BrowsingPattern returns a session's recent product interactions in
// chronological order, bounded to the configured window.
func (s *SignalService) BrowsingPattern(ctx context.Context, sessionID string) ([]domain.BrowsingEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if sessionID == "" {
		return []domain.BrowsingEntry{}, nil
	}

	since := time.Now().Add(-time.Duration(s.cfg.BrowsingWindowHours) * time.Hour)

	events, err := s.eventRepo.FindBySession(ctx, sessionID, since, s.cfg.BrowsingMaxEvents)
	if err != nil {
		logger.Error("failed to load session events", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("load session events: %w", err)
	}

	entries := make([]domain.BrowsingEntry, 0, len(events))
	for _, ev := range events {
		if ev.ProductID == 0 {
			continue
		}
		entries = append(entries, domain.BrowsingEntry{
			ProductID: ev.ProductID,
			EventType: ev.EventType,
			CreatedAt: ev.CreatedAt,
		})
	}

	return entries, nil
}

// TrendingProductIDs ranks products by event volume inside the window,
// weighting recent events more heavily with a linear recency decay. Ties
// break by raw event count, then by product id, so output is deterministic.
func (s *SignalService) TrendingProductIDs(ctx context.Context, windowDays, limit int) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if windowDays <= 0 {
		windowDays = 7
	}
	if limit <= 0 {
		return []uint64{}, nil
	}

	now := time.Now()
	window := time.Duration(windowDays) * 24 * time.Hour
	since := now.Add(-window)

	rows, err := s.eventRepo.FindProductEvents(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load product events: %w", err)
	}
	if len(rows) == 0 {
		return []uint64{}, nil
	}

	type trendAgg struct {
		productID uint64
		score     float64
		count     int
	}

	byProduct := make(map[uint64]*trendAgg)
	for _, row := range rows {
		if row.ProductID == 0 {
			continue
		}

		agg, ok := byProduct[row.ProductID]
		if !ok {
			agg = &trendAgg{productID: row.ProductID}
			byProduct[row.ProductID] = agg
		}

		age := now.Sub(row.CreatedAt)
		if age < 0 {
			age = 0
		}
		recency := 1.0 - float64(age)/float64(window)
		if recency < 0 {
			recency = 0
		}

		agg.score += recency
		agg.count++
	}

	ranked := make([]*trendAgg, 0, len(byProduct))
	for _, agg := range byProduct {
		ranked = append(ranked, agg)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].productID < ranked[j].productID
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}

	out := make([]uint64, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, ranked[i].productID)
	}

	return out, nil
}

// MostViewed ranks products by view count over the given number of days.
func (s *SignalService) MostViewed(ctx context.Context, days, limit int) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if days <= 0 {
		days = 7
	}
	if limit <= 0 {
		return []uint64{}, nil
	}

	since := time.Now().Add(-time.Duration(days) * 24 * time.Hour)

	views, err := s.eventRepo.CountByProduct(ctx, domain.EventProductView, since)
	if err != nil {
		return nil, fmt.Errorf("count product views: %w", err)
	}

	return rankByCount(views, limit), nil
}

// HighConversion ranks products by purchase-to-view ratio over the last 30
// days. Products under the minimum view floor are excluded entirely: a
// 1-view/1-purchase fluke should not outrank an honest seller.
func (s *SignalService) HighConversion(ctx context.Context, limit int) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		return []uint64{}, nil
	}

	since := time.Now().Add(-conversionWindowDays * 24 * time.Hour)

	views, err := s.eventRepo.CountByProduct(ctx, domain.EventProductView, since)
	if err != nil {
		return nil, fmt.Errorf("count product views: %w", err)
	}

	purchases, err := s.eventRepo.CountByProduct(ctx, domain.EventPurchase, since)
	if err != nil {
		return nil, fmt.Errorf("count product purchases: %w", err)
	}

	type convAgg struct {
		productID uint64
		ratio     float64
		views     int
	}

	ranked := make([]convAgg, 0, len(views))
	for pid, viewCount := range views {
		if viewCount < s.cfg.MinViewsForConversion {
			continue
		}
		ranked = append(ranked, convAgg{
			productID: pid,
			ratio:     float64(purchases[pid]) / float64(viewCount),
			views:     viewCount,
		})
	}
	if len(ranked) == 0 {
		return []uint64{}, nil
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ratio != ranked[j].ratio {
			return ranked[i].ratio > ranked[j].ratio
		}
		if ranked[i].views != ranked[j].views {
			return ranked[i].views > ranked[j].views
		}
		return ranked[i].productID < ranked[j].productID
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}

	out := make([]uint64, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, ranked[i].productID)
	}

	return out, nil
}

func rankByCount(counts map[uint64]int, limit int) []uint64 {
	type countAgg struct {
		productID uint64
		count     int
	}

	ranked := make([]countAgg, 0, len(counts))
	for pid, count := range counts {
		if count > 0 {
			ranked = append(ranked, countAgg{productID: pid, count: count})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].productID < ranked[j].productID
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}

	out := make([]uint64, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, ranked[i].productID)
	}

	return out
}
