package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"giftdash/internal/cache"
	"giftdash/internal/errors"
	"giftdash/internal/model"
	"giftdash/internal/repository"
)

const defaultViewCacheTTL = 5 * time.Minute

// ViewCache memoizes serialized views. Implementations treat every failure
// as a miss.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DashboardService answers the dashboard's derived views over one record snapshot.
type DashboardService interface {
	ListCards(ctx context.Context, q ListQuery) (*CardTable, error)
	CardDetail(ctx context.Context, id model.ID) (*CardDetail, error)
	Timeline(ctx context.Context, id model.ID) ([]TimelineEntry, error)
	GeoPoints(ctx context.Context, q GeoQuery) (*MapData, error)
	Summary(ctx context.Context) Summary
	ToggleSort(state SortState, field SortField) SortState
}

// Options tunes a DashboardService.
type Options struct {
	// CacheTTL is the lifetime of memoized views. Zero uses the default,
	// negative disables memoization.
	CacheTTL time.Duration
	// MapsKey is handed to the map widget with every geo view.
	MapsKey string
}

// ListQuery is the input of the card table.
type ListQuery struct {
	Criteria
	Sort SortState
}

// GeoQuery is the input of the map view. ZoomPercent zero keeps the fitted
// camera; Focus is a "lat,lon" location to centre on.
type GeoQuery struct {
	Criteria
	ZoomPercent int
	Focus       string
}

// CardRow is one row of the card table.
type CardRow struct {
	Card      model.GiftCard `json:"card"`
	RiskScore int            `json:"risk_score"`
	RiskTier  RiskTier       `json:"risk_tier"`
	RiskTip   string         `json:"risk_tip"`
}

// CardTable is the filtered and sorted card list.
type CardTable struct {
	Cards    []CardRow `json:"cards"`
	Count    int       `json:"count"`
	Total    int       `json:"total"`
	Criteria Criteria  `json:"criteria"`
	Sort     SortState `json:"sort"`
}

// TimelineEntry is one event of a card's timeline.
type TimelineEntry struct {
	Event      model.GiftCardEvent `json:"event"`
	Marker     Marker              `json:"marker"`
	ShowAmount bool                `json:"show_amount"`
}

// CardDetail is the detail panel of a selected card.
type CardDetail struct {
	Card          model.GiftCard  `json:"card"`
	CurrentStatus string          `json:"current_status"`
	RiskScore     int             `json:"risk_score"`
	RiskTier      RiskTier        `json:"risk_tier"`
	Timeline      []TimelineEntry `json:"timeline"`
}

// MapData is everything the map widget consumes.
type MapData struct {
	Points          []model.GeoPoint `json:"points"`
	View            MapView          `json:"view"`
	SubscriptionKey string           `json:"subscription_key"`
}

// Summary holds the dashboard totals.
type Summary struct {
	TotalCards  int       `json:"total_cards"`
	TotalEvents int       `json:"total_events"`
	Version     string    `json:"version"`
	LoadedAt    time.Time `json:"loaded_at"`
}

type dashboardService struct {
	store  repository.RecordStore
	cache  ViewCache
	opts   Options
	logger *zap.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(store repository.RecordStore, viewCache ViewCache, opts Options, logger *zap.Logger) DashboardService {
	if opts.CacheTTL == 0 {
		opts.CacheTTL = defaultViewCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &dashboardService{
		store:  store,
		cache:  viewCache,
		opts:   opts,
		logger: logger,
	}
}

func (s *dashboardService) cacheKey(view string, params url.Values) string {
	return cache.Key(s.store.Version(), view, params.Encode())
}

func criteriaParams(c Criteria) url.Values {
	return url.Values{
		"giftcard": {c.GiftCard},
		"status":   {c.Status},
		"channel":  {c.Channel},
		"ip":       {c.IP},
	}
}

// ListCards filters then sorts the card table.
func (s *dashboardService) ListCards(ctx context.Context, q ListQuery) (*CardTable, error) {
	if q.Sort.Field == "" {
		q.Sort.Field = DefaultSortState().Field
	}
	switch q.Sort.Order {
	case "":
		q.Sort.Order = SortAsc
	case SortAsc, SortDesc:
	default:
		return nil, fmt.Errorf("list cards: %w", errors.ErrInvalidSortOrder)
	}

	params := criteriaParams(q.Criteria)
	params.Set("sort", string(q.Sort.Field))
	params.Set("order", string(q.Sort.Order))
	key := s.cacheKey("cards", params)

	var table CardTable
	if s.lookup(ctx, key, &table) {
		return &table, nil
	}

	cards := s.store.Cards()
	events := s.store.Events()
	sorted := Sort(Filter(cards, q.Criteria), events, q.Sort)

	rows := make([]CardRow, 0, len(sorted))
	for _, card := range sorted {
		score := RiskScore(card, events)
		tier := TierFor(score)
		rows = append(rows, CardRow{Card: card, RiskScore: score, RiskTier: tier, RiskTip: tier.Tip()})
	}

	table = CardTable{
		Cards:    rows,
		Count:    len(rows),
		Total:    len(cards),
		Criteria: q.Criteria,
		Sort:     q.Sort,
	}
	s.remember(ctx, key, table)
	return &table, nil
}

// CardDetail builds the detail panel for one card.
func (s *dashboardService) CardDetail(ctx context.Context, id model.ID) (*CardDetail, error) {
	card, ok := s.store.Card(id)
	if !ok {
		return nil, errors.ErrCardNotFound
	}

	events := s.store.Events()
	timeline := EventsForCard(card.GiftCardID, events)
	score := RiskScore(*card, events)

	return &CardDetail{
		Card:          *card,
		CurrentStatus: CurrentStatus(*card, timeline),
		RiskScore:     score,
		RiskTier:      TierFor(score),
		Timeline:      timelineEntries(timeline),
	}, nil
}

// Timeline returns the card's events, most recent first.
func (s *dashboardService) Timeline(ctx context.Context, id model.ID) ([]TimelineEntry, error) {
	card, ok := s.store.Card(id)
	if !ok {
		return nil, errors.ErrCardNotFound
	}
	return timelineEntries(EventsForCard(card.GiftCardID, s.store.Events())), nil
}

// GeoPoints aggregates the filtered cards for the map widget.
func (s *dashboardService) GeoPoints(ctx context.Context, q GeoQuery) (*MapData, error) {
	var focusLat, focusLon float64
	if q.Focus != "" {
		var ok bool
		if focusLat, focusLon, ok = ParseGeoLocation(q.Focus); !ok {
			return nil, fmt.Errorf("geo points: %w", errors.ErrInvalidFocus)
		}
	}
	if q.ZoomPercent != 0 {
		if _, ok := ZoomForPercent(q.ZoomPercent); !ok {
			return nil, fmt.Errorf("geo points: %w", errors.ErrInvalidZoom)
		}
	}

	key := s.cacheKey("geopoints", criteriaParams(q.Criteria))

	var data MapData
	if !s.lookup(ctx, key, &data) {
		points := GeoAggregate(Filter(s.store.Cards(), q.Criteria))
		data = MapData{Points: points, View: NewMapView(points)}
		s.remember(ctx, key, data)
	}

	// camera choices and the credential are applied per request, never cached
	if q.Focus != "" {
		data.View = data.View.Focus(focusLat, focusLon)
	}
	if q.ZoomPercent != 0 {
		data.View, _ = data.View.WithZoomPercent(q.ZoomPercent)
	}
	data.SubscriptionKey = s.opts.MapsKey
	return &data, nil
}

// Summary returns the totals footer.
func (s *dashboardService) Summary(ctx context.Context) Summary {
	return Summary{
		TotalCards:  len(s.store.Cards()),
		TotalEvents: len(s.store.Events()),
		Version:     s.store.Version(),
		LoadedAt:    s.store.LoadedAt(),
	}
}

// ToggleSort applies a sort column selection to state.
func (s *dashboardService) ToggleSort(state SortState, field SortField) SortState {
	return state.Toggle(field)
}

func timelineEntries(events []model.GiftCardEvent) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(events))
	for _, ev := range events {
		entries = append(entries, TimelineEntry{
			Event:      ev,
			Marker:     TimelineMarker(ev),
			ShowAmount: ev.Amount.Present(),
		})
	}
	return entries
}

func (s *dashboardService) memoEnabled() bool {
	return s.cache != nil && s.opts.CacheTTL > 0
}

// lookup decodes a memoized view into dst and reports whether it was found.
func (s *dashboardService) lookup(ctx context.Context, key string, dst any) bool {
	if !s.memoEnabled() {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Debug("view cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Debug("discarding undecodable cached view", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *dashboardService) remember(ctx context.Context, key string, view any) {
	if !s.memoEnabled() {
		return
	}
	payload, err := json.Marshal(view)
	if err != nil {
		s.logger.Debug("view not cacheable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.opts.CacheTTL); err != nil {
		s.logger.Debug("view cache set failed", zap.String("key", key), zap.Error(err))
	}
}
