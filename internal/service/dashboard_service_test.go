package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"giftdash/internal/errors"
	"giftdash/internal/model"
	"giftdash/internal/repository"
)

// MockViewCache is a mock implementation of ViewCache.
type MockViewCache struct {
	mock.Mock
}

func (m *MockViewCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockViewCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func dashboardFixture() *repository.Snapshot {
	cards := []model.GiftCard{
		card("1", "6006-0003", "Active", "Online", "192.168.1.1", "40.7,-74.0"),
		card("2", "6006-0001", "Active", "In-Store", "192.168.1.2", "40.7,-74.0"),
		card("3", "6006-0002", "Redeemed", "Online", "192.168.1.3", "34.05,-118.24"),
		card("4", "6006-0004", "Expired", "Retailer", "192.168.1.4", "invalid"),
	}
	events := []model.GiftCardEvent{
		event("1", "1", "Issuance", "2025-07-31T09:05:00", ""),
		event("2", "1", "RedemptionAttempt", "2025-07-31T09:08:00", "INVALID_PIN"),
		event("3", "1", "Redemption", "2025-07-31T09:12:00", ""),
		event("4", "1", "BalanceInquiry", "2025-07-31T09:15:00", ""),
		event("5", "2", "Issuance", "2025-07-31T09:10:00", ""),
		event("6", "2", "Expiration", "2025-07-31T09:20:00", "EXPIRED"),
	}
	events[0].Amount = model.ParseMoney("100")
	events[2].Amount = model.ParseMoney("25.50")
	events[3].Amount = model.ParseMoney("0")
	return repository.NewSnapshot(cards, events)
}

func newTestService(store repository.RecordStore, c ViewCache) DashboardService {
	return NewDashboardService(store, c, Options{MapsKey: "maps-key"}, nil)
}

func TestDashboardService_ListCards(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)

	table, err := svc.ListCards(context.Background(), ListQuery{
		Criteria: Criteria{Channel: "online"},
		Sort:     SortState{Field: SortByRisk, Order: SortDesc},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, table.Count)
	assert.Equal(t, 4, table.Total)
	require.Len(t, table.Cards, 2)
	assert.Equal(t, "6006-0003", table.Cards[0].Card.GiftCardNumber)
	assert.Equal(t, 25, table.Cards[0].RiskScore)
	assert.Equal(t, RiskMedium, table.Cards[0].RiskTier)
	assert.Equal(t, RiskMedium.Tip(), table.Cards[0].RiskTip)
	assert.Equal(t, 0, table.Cards[1].RiskScore)
	assert.Equal(t, RiskLow, table.Cards[1].RiskTier)
}

func TestDashboardService_ListCards_Defaults(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)

	table, err := svc.ListCards(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSortState(), table.Sort)
	assert.Equal(t, []string{"6006-0001", "6006-0002", "6006-0003", "6006-0004"}, rowNumbers(table))

	high := table.Cards[0]
	assert.Equal(t, 50, high.RiskScore)
	assert.Equal(t, RiskHigh, high.RiskTier)
}

func TestDashboardService_ListCards_InvalidOrder(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)

	_, err := svc.ListCards(context.Background(), ListQuery{Sort: SortState{Field: SortByIP, Order: "sideways"}})
	assert.ErrorIs(t, err, errors.ErrInvalidSortOrder)
}

func TestDashboardService_ListCards_Idempotent(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)
	q := ListQuery{Sort: SortState{Field: SortByRisk, Order: SortAsc}}

	first, err := svc.ListCards(context.Background(), q)
	require.NoError(t, err)
	second, err := svc.ListCards(context.Background(), q)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ListCards not idempotent (-first +second):\n%s", diff)
	}
}

func TestDashboardService_ListCards_MemoizesInCache(t *testing.T) {
	snap := dashboardFixture()
	mockCache := new(MockViewCache)

	var stored []byte
	mockCache.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
	mockCache.On("Set", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "giftdash:"+snap.Version()+":cards:")
	}), mock.Anything, defaultViewCacheTTL).Run(func(args mock.Arguments) {
		stored = args.Get(2).([]byte)
	}).Return(nil).Once()

	svc := newTestService(snap, mockCache)
	computed, err := svc.ListCards(context.Background(), ListQuery{Criteria: Criteria{Status: "active"}})
	require.NoError(t, err)
	require.NotEmpty(t, stored)

	mockCache.On("Get", mock.Anything, mock.Anything).Return(stored, nil).Once()
	cached, err := svc.ListCards(context.Background(), ListQuery{Criteria: Criteria{Status: "active"}})
	require.NoError(t, err)

	assert.Equal(t, rowNumbers(computed), rowNumbers(cached))
	assert.Equal(t, computed.Count, cached.Count)
	assert.Equal(t, computed.Cards[0].RiskScore, cached.Cards[0].RiskScore)
	mockCache.AssertExpectations(t)
}

func TestDashboardService_ListCards_CorruptCacheEntryIsRecomputed(t *testing.T) {
	mockCache := new(MockViewCache)
	mockCache.On("Get", mock.Anything, mock.Anything).Return([]byte("{not json"), nil)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(dashboardFixture(), mockCache)
	table, err := svc.ListCards(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 4, table.Count)
}

func TestDashboardService_ListCards_NegativeTTLSkipsCache(t *testing.T) {
	mockCache := new(MockViewCache)
	svc := NewDashboardService(dashboardFixture(), mockCache, Options{CacheTTL: -1}, nil)

	_, err := svc.ListCards(context.Background(), ListQuery{})
	require.NoError(t, err)
	mockCache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardService_CardDetail(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)

	detail, err := svc.CardDetail(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "6006-0003", detail.Card.GiftCardNumber)
	assert.Equal(t, "BalanceInquiry", detail.CurrentStatus)
	assert.Equal(t, 25, detail.RiskScore)
	assert.Equal(t, RiskMedium, detail.RiskTier)

	require.Len(t, detail.Timeline, 4)
	assert.Equal(t, model.ID("4"), detail.Timeline[0].Event.EventID)
	assert.False(t, detail.Timeline[0].ShowAmount)
	assert.Equal(t, MarkerSuccess, detail.Timeline[0].Marker)
	assert.True(t, detail.Timeline[1].ShowAmount)
	assert.Equal(t, MarkerError, detail.Timeline[2].Marker)
	assert.True(t, detail.Timeline[3].ShowAmount)
}

func TestDashboardService_CardDetail_NoEventsFallsBackToStatus(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)

	detail, err := svc.CardDetail(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "Expired", detail.CurrentStatus)
	assert.Equal(t, 0, detail.RiskScore)
	assert.Equal(t, RiskLow, detail.RiskTier)
	assert.NotNil(t, detail.Timeline)
	assert.Empty(t, detail.Timeline)
}

func TestDashboardService_CardNotFound(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)

	_, err := svc.CardDetail(context.Background(), "404")
	assert.ErrorIs(t, err, errors.ErrCardNotFound)

	_, err = svc.Timeline(context.Background(), "404")
	assert.ErrorIs(t, err, errors.ErrCardNotFound)
}

func TestDashboardService_Timeline(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)

	entries, err := svc.Timeline(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Expiration", entries[0].Event.EventType)
	assert.Equal(t, MarkerError, entries[0].Marker)
	assert.Equal(t, "Issuance", entries[1].Event.EventType)
}

func TestDashboardService_GeoPoints(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)

	data, err := svc.GeoPoints(context.Background(), GeoQuery{})
	require.NoError(t, err)

	assert.Equal(t, "maps-key", data.SubscriptionKey)
	require.Len(t, data.Points, 2)
	assert.Equal(t, []string{"6006-0003", "6006-0001"}, numbers(data.Points[0].Cards))
	assert.Equal(t, []string{"6006-0002"}, numbers(data.Points[1].Cards))
	assert.True(t, data.View.AutoFit)
	assert.Equal(t, [2]float64{-74.0, 40.7}, data.View.Center)

	filtered, err := svc.GeoPoints(context.Background(), GeoQuery{Criteria: Criteria{Status: "redeemed"}})
	require.NoError(t, err)
	require.Len(t, filtered.Points, 1)
	assert.False(t, filtered.View.AutoFit)
}

func TestDashboardService_GeoPoints_CachedEntryGetsCurrentKey(t *testing.T) {
	cached, err := json.Marshal(MapData{
		Points:          []model.GeoPoint{{Lat: 1, Lon: 2}},
		SubscriptionKey: "stale",
	})
	require.NoError(t, err)

	mockCache := new(MockViewCache)
	mockCache.On("Get", mock.Anything, mock.Anything).Return(cached, nil)

	svc := newTestService(dashboardFixture(), mockCache)
	data, err := svc.GeoPoints(context.Background(), GeoQuery{})
	require.NoError(t, err)
	assert.Equal(t, "maps-key", data.SubscriptionKey)
	assert.Len(t, data.Points, 1)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardService_GeoPoints_Camera(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)
	ctx := context.Background()

	data, err := svc.GeoPoints(ctx, GeoQuery{})
	require.NoError(t, err)
	assert.Equal(t, ZoomPresets(), data.View.Presets)

	zoomed, err := svc.GeoPoints(ctx, GeoQuery{ZoomPercent: 50})
	require.NoError(t, err)
	assert.Equal(t, 8, zoomed.View.Zoom)
	assert.False(t, zoomed.View.AutoFit)
	assert.Nil(t, zoomed.View.Bounds)
	assert.Len(t, zoomed.Points, 2)

	focused, err := svc.GeoPoints(ctx, GeoQuery{Focus: "34.05,-118.24"})
	require.NoError(t, err)
	assert.Equal(t, [2]float64{-118.24, 34.05}, focused.View.Center)
	assert.Equal(t, 16, focused.View.Zoom)
	assert.False(t, focused.View.AutoFit)

	both, err := svc.GeoPoints(ctx, GeoQuery{Focus: "34.05,-118.24", ZoomPercent: 10})
	require.NoError(t, err)
	assert.Equal(t, [2]float64{-118.24, 34.05}, both.View.Center)
	assert.Equal(t, 2, both.View.Zoom)
}

func TestDashboardService_GeoPoints_InvalidCamera(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)

	_, err := svc.GeoPoints(context.Background(), GeoQuery{ZoomPercent: 75})
	assert.ErrorIs(t, err, errors.ErrInvalidZoom)

	_, err = svc.GeoPoints(context.Background(), GeoQuery{Focus: "nowhere"})
	assert.ErrorIs(t, err, errors.ErrInvalidFocus)
}

func TestDashboardService_GeoPoints_CameraNotCached(t *testing.T) {
	mockCache := new(MockViewCache)
	mockCache.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.MatchedBy(func(payload []byte) bool {
		var stored MapData
		return json.Unmarshal(payload, &stored) == nil && stored.View.Zoom == 2 && stored.SubscriptionKey == ""
	}), mock.Anything).Return(nil).Once()

	svc := newTestService(dashboardFixture(), mockCache)
	data, err := svc.GeoPoints(context.Background(), GeoQuery{ZoomPercent: 100})
	require.NoError(t, err)
	assert.Equal(t, 16, data.View.Zoom)
	mockCache.AssertExpectations(t)
}

func TestDashboardService_CacheFailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mockCache := new(MockViewCache)
	mockCache.On("Get", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	svc := NewDashboardService(dashboardFixture(), mockCache, Options{}, zap.New(core))
	table, err := svc.ListCards(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 4, table.Count)

	assert.Equal(t, 1, logs.FilterMessage("view cache get failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("view cache set failed").Len())
}

func TestDashboardService_Summary(t *testing.T) {
	snap := dashboardFixture()
	summary := newTestService(snap, nil).Summary(context.Background())

	assert.Equal(t, 4, summary.TotalCards)
	assert.Equal(t, 6, summary.TotalEvents)
	assert.Equal(t, snap.Version(), summary.Version)
	assert.Equal(t, snap.LoadedAt(), summary.LoadedAt)
}

func TestDashboardService_ToggleSort(t *testing.T) {
	svc := newTestService(dashboardFixture(), nil)
	state := svc.ToggleSort(DefaultSortState(), SortByGiftCard)
	assert.Equal(t, SortState{Field: SortByGiftCard, Order: SortDesc}, state)
	assert.Equal(t, SortState{Field: SortByIP, Order: SortAsc}, svc.ToggleSort(state, SortByIP))
}

func rowNumbers(table *CardTable) []string {
	out := make([]string, 0, len(table.Cards))
	for _, row := range table.Cards {
		out = append(out, row.Card.GiftCardNumber)
	}
	return out
}
