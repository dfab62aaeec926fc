package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"giftdash/internal/model"
	"giftdash/internal/repository"
)

type mockCardRepo struct {
	mock.Mock
	events *mockEventRepo
}

func (m *mockCardRepo) Create(ctx context.Context, card *model.GiftCard) error {
	return m.Called(ctx, card).Error(0)
}

func (m *mockCardRepo) Update(ctx context.Context, card *model.GiftCard) error {
	return m.Called(ctx, card).Error(0)
}

func (m *mockCardRepo) FindByID(ctx context.Context, id model.ID) (*model.GiftCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GiftCard), args.Error(1)
}

func (m *mockCardRepo) FindAll(ctx context.Context) ([]model.GiftCard, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.GiftCard), args.Error(1)
}

func (m *mockCardRepo) WithTransaction(ctx context.Context, fn func(ctx context.Context, cards repository.GiftCardRepository, events repository.GiftCardEventRepository) error) error {
	return fn(ctx, m, m.events)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.GiftCardEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepo) CreateBatch(ctx context.Context, events []model.GiftCardEvent) error {
	return m.Called(ctx, events).Error(0)
}

func (m *mockEventRepo) Update(ctx context.Context, event *model.GiftCardEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id model.ID) (*model.GiftCardEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GiftCardEvent), args.Error(1)
}

func (m *mockEventRepo) FindAll(ctx context.Context) ([]model.GiftCardEvent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.GiftCardEvent), args.Error(1)
}

func TestSeedCards(t *testing.T) {
	ctx := context.Background()
	cards := []model.GiftCard{
		{GiftCardID: "1", GiftCardNumber: "A"},
		{GiftCardID: "2", GiftCardNumber: "B"},
		{GiftCardID: "1", GiftCardNumber: "A-dup"},
	}

	repo := new(mockCardRepo)
	repo.On("FindByID", ctx, model.ID("1")).Return(&model.GiftCard{GiftCardID: "1"}, nil)
	repo.On("FindByID", ctx, model.ID("2")).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Update", ctx, mock.MatchedBy(func(c *model.GiftCard) bool {
		return c.GiftCardNumber == "A" && c.Position == 0
	})).Return(nil)
	repo.On("Create", ctx, mock.MatchedBy(func(c *model.GiftCard) bool {
		return c.GiftCardNumber == "B" && c.Position == 1
	})).Return(nil)

	stats, err := seedCards(ctx, repo, cards)
	require.NoError(t, err)
	assert.Equal(t, seedStats{created: 1, updated: 1, skipped: 1}, stats)
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "FindByID", 2)
}

func TestSeedCardsLookupError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCardRepo)
	repo.On("FindByID", ctx, model.ID("1")).Return(nil, errors.New("connection refused"))

	_, err := seedCards(ctx, repo, []model.GiftCard{{GiftCardID: "1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error checking gift card 1")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeedEvents(t *testing.T) {
	ctx := context.Background()
	events := []model.GiftCardEvent{
		{EventID: "10", GiftCardID: "1", EventType: "Issuance"},
		{EventID: "11", GiftCardID: "1", EventType: "Redemption"},
		{EventID: "12", GiftCardID: "2", EventType: "Issuance"},
	}

	repo := new(mockEventRepo)
	repo.On("FindByID", ctx, model.ID("10")).Return(&model.GiftCardEvent{EventID: "10"}, nil)
	repo.On("FindByID", ctx, model.ID("11")).Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindByID", ctx, model.ID("12")).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Update", ctx, mock.AnythingOfType("*model.GiftCardEvent")).Return(nil)
	repo.On("CreateBatch", ctx, mock.MatchedBy(func(batch []model.GiftCardEvent) bool {
		return len(batch) == 2 && batch[0].EventID == "11" && batch[0].Position == 1 && batch[1].Position == 2
	})).Return(nil)

	stats, err := seedEvents(ctx, repo, events)
	require.NoError(t, err)
	assert.Equal(t, seedStats{created: 2, updated: 1}, stats)
	repo.AssertExpectations(t)
}

func TestSeedEventsNothingNew(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEventRepo)
	repo.On("FindByID", ctx, model.ID("10")).Return(&model.GiftCardEvent{EventID: "10"}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*model.GiftCardEvent")).Return(nil)

	stats, err := seedEvents(ctx, repo, []model.GiftCardEvent{{EventID: "10"}, {EventID: "10"}})
	require.NoError(t, err)
	assert.Equal(t, seedStats{updated: 1, skipped: 1}, stats)
	repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestSeedAllInOneTransaction(t *testing.T) {
	ctx := context.Background()
	events := new(mockEventRepo)
	cards := &mockCardRepo{events: events}

	cards.On("FindByID", ctx, model.ID("1")).Return(nil, gorm.ErrRecordNotFound)
	cards.On("Create", ctx, mock.AnythingOfType("*model.GiftCard")).Return(nil)
	events.On("FindByID", ctx, model.ID("10")).Return(nil, gorm.ErrRecordNotFound)
	events.On("CreateBatch", ctx, mock.Anything).Return(errors.New("deadlock"))

	var cardStats seedStats
	err := cards.WithTransaction(ctx, func(ctx context.Context, cardTx repository.GiftCardRepository, eventTx repository.GiftCardEventRepository) error {
		var err error
		cardStats, _, err = seedAll(ctx, cardTx, eventTx,
			[]model.GiftCard{{GiftCardID: "1"}},
			[]model.GiftCardEvent{{EventID: "10", GiftCardID: "1"}},
		)
		return err
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed gift card events")
	assert.Equal(t, 1, cardStats.created)
	cards.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestSeedAllStopsAfterCardFailure(t *testing.T) {
	ctx := context.Background()
	events := new(mockEventRepo)
	cards := new(mockCardRepo)
	cards.On("FindByID", ctx, model.ID("1")).Return(nil, errors.New("connection refused"))

	_, _, err := seedAll(ctx, cards, events, []model.GiftCard{{GiftCardID: "1"}}, []model.GiftCardEvent{{EventID: "10"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed gift cards")
	events.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
