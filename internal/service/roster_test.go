package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/service"
	mocks "github.com/SergeyBogomolovv/restaurant-order-bot/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/restaurant-order-bot/pkg/trm/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRosterService_Add(t *testing.T) {
	type MockBehavior func(repo *mocks.MockRosterRepo)

	dbError := errors.New("db error")
	person := entities.DeliveryPerson{Restaurant: "default", Name: "Ahmad", Phone: "0933123456"}

	testCases := []struct {
		name         string
		person       entities.DeliveryPerson
		mockBehavior MockBehavior
		wantErr      error
		wantInvalid  bool
	}{
		{
			name:   "OK",
			person: entities.DeliveryPerson{Restaurant: "default", Name: "  Ahmad ", Phone: " 0933123456"},
			mockBehavior: func(repo *mocks.MockRosterRepo) {
				repo.EXPECT().DeliveryPersonExists(mock.Anything, "default", "Ahmad").Return(false, nil).Once()
				repo.EXPECT().SaveDeliveryPerson(mock.Anything, person).Return(nil).Once()
			},
		},
		{
			name:   "duplicate name",
			person: person,
			mockBehavior: func(repo *mocks.MockRosterRepo) {
				repo.EXPECT().DeliveryPersonExists(mock.Anything, "default", "Ahmad").Return(true, nil).Once()
			},
			wantErr: entities.ErrDeliveryPersonExists,
		},
		{
			name:   "save fails",
			person: person,
			mockBehavior: func(repo *mocks.MockRosterRepo) {
				repo.EXPECT().DeliveryPersonExists(mock.Anything, "default", "Ahmad").Return(false, nil).Once()
				repo.EXPECT().SaveDeliveryPerson(mock.Anything, person).Return(dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name:   "concurrent insert of the same name",
			person: person,
			mockBehavior: func(repo *mocks.MockRosterRepo) {
				repo.EXPECT().DeliveryPersonExists(mock.Anything, "default", "Ahmad").Return(false, nil).Once()
				repo.EXPECT().SaveDeliveryPerson(mock.Anything, person).Return(entities.ErrDeliveryPersonExists).Once()
			},
			wantErr: entities.ErrDeliveryPersonExists,
		},
		{
			name:         "phone too short",
			person:       entities.DeliveryPerson{Restaurant: "default", Name: "Ahmad", Phone: "12"},
			mockBehavior: func(_ *mocks.MockRosterRepo) {},
			wantInvalid:  true,
		},
		{
			name:         "empty name",
			person:       entities.DeliveryPerson{Restaurant: "default", Name: "   ", Phone: "0933123456"},
			mockBehavior: func(_ *mocks.MockRosterRepo) {},
			wantInvalid:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockRosterRepo(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(repo)

			svc := service.NewRosterService(logger, tx, repo)

			err := svc.Add(context.Background(), tc.person)

			if tc.wantInvalid {
				var verr validator.ValidationErrors
				assert.ErrorAs(t, err, &verr)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRosterService_Delete(t *testing.T) {
	repo := mocks.NewMockRosterRepo(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().DeleteDeliveryPerson(mock.Anything, "default", "Ahmad").Return(nil).Once()
	repo.EXPECT().DeleteDeliveryPerson(mock.Anything, "default", "Ghost").
		Return(entities.ErrDeliveryPersonNotFound).Once()

	svc := service.NewRosterService(logger, tx, repo)

	assert.NoError(t, svc.Delete(context.Background(), "default", " Ahmad"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "default", "Ghost"), entities.ErrDeliveryPersonNotFound)
}

func TestRosterService_List(t *testing.T) {
	repo := mocks.NewMockRosterRepo(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	people := []entities.DeliveryPerson{{Restaurant: "default", Name: "Ahmad", Phone: "0933123456"}}
	repo.EXPECT().ListDeliveryPeople(mock.Anything, "default").Return(people, nil).Once()

	svc := service.NewRosterService(logger, tx, repo)

	got, err := svc.List(context.Background(), "default")
	assert.NoError(t, err)
	assert.Equal(t, people, got)
}
