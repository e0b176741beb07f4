package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostconnect/config"
	"hostconnect/infras/otel/mocks"
	roomtypeMocks "hostconnect/internal/domains/roomtype/mocks"
	"hostconnect/internal/domains/roomtype/model"
	"hostconnect/internal/domains/roomtype/model/dto"
	"hostconnect/internal/domains/roomtype/service"
	cacheMocks "hostconnect/shared/cache/mocks"
	"hostconnect/shared/failure"
	gModel "hostconnect/shared/model"
	"hostconnect/shared/timezone"
)

func newRoomTypeService(ctrl *gomock.Controller) (service.RoomType, *roomtypeMocks.MockRoomType, *cacheMocks.MockRedisCache) {
	mockRepo := roomtypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	// Invalidation runs on background goroutines.
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestRoomTypeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newRoomTypeService(ctrl)

	req := dto.CreateRoomTypeRequest{
		PropertyID: "property-1",
		Name:       "Deluxe",
		Capacity:   2,
		BasePrice:  200.00,
	}

	t.Run("successful creation", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
				assert.Equal(t, model.StatusActive, roomType.Status)
				assert.NotEmpty(t, roomType.ID)

				return nil
			})

		err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestRoomTypeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newRoomTypeService(ctrl)

	roomType := model.RoomType{
		ID:         "roomtype-1",
		PropertyID: "property-1",
		Name:       "Deluxe",
		Capacity:   2,
		BasePrice:  200.00,
		Status:     model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	t.Run("cache miss falls back to repository", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)

		res, err := svc.Get(context.Background(), "roomtype-1")

		assert.NoError(t, err)
		assert.Equal(t, "roomtype-1", res.ID)
		assert.Equal(t, 200.00, res.BasePrice)
	})

	t.Run("missing room type", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomTypeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newRoomTypeService(ctrl)

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(context.Background(), dto.UpdateRoomTypeRequest{BasePrice: 250.00}, "roomtype-1")

		assert.NoError(t, err)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		err := svc.Update(context.Background(), dto.UpdateRoomTypeRequest{}, "roomtype-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("missing room type", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateRoomTypeRequest{BasePrice: 250.00}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomTypeService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newRoomTypeService(ctrl)

	t.Run("successful deactivation", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusInactive, fields["status"])

				return nil
			})

		err := svc.Deactivate(context.Background(), "roomtype-1")

		assert.NoError(t, err)
	})

	t.Run("missing room type", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Deactivate(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
