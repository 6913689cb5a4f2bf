package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/visioncart/storefront/internal/core/domain"
	"github.com/visioncart/storefront/internal/core/service"
)

type MockShopCatalog struct {
	mock.Mock
}

func (m *MockShopCatalog) ListShopProducts(
	ctx context.Context, shopID string,
) ([]domain.ProductRecord, error) {
	args := m.Called(ctx, shopID)
	records, _ := args.Get(0).([]domain.ProductRecord)
	return records, args.Error(1)
}

func (m *MockShopCatalog) RemoveProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type stubSessions struct {
	current domain.Session
	subs    []func(domain.Session)
}

func (s *stubSessions) Current() domain.Session { return s.current }

func (s *stubSessions) Subscribe(fn func(domain.Session)) {
	s.subs = append(s.subs, fn)
}

func (s *stubSessions) broadcast(sess domain.Session) {
	s.current = sess
	for _, fn := range s.subs {
		fn(sess)
	}
}

func shopRecords() []domain.ProductRecord {
	return []domain.ProductRecord{
		{
			ProductID: "p1",
			Name:      "Aviator Black",
			Specifications: map[string]string{
				domain.SpecBaseModel:   "VC100",
				domain.SpecFrameColour: "Black",
			},
		},
		{
			ProductID: "p2",
			Name:      "Aviator Gold",
			Specifications: map[string]string{
				domain.SpecBaseModel:   "VC100",
				domain.SpecFrameColour: "Gold",
			},
		},
		{
			ProductID: "p3",
			Name:      "Wayfarer",
			Specifications: map[string]string{
				domain.SpecModelNo: "WF-2",
			},
		},
	}
}

func TestInventoryService(t *testing.T) {

	t.Run("RefreshGroupsShopProducts", func(t *testing.T) {
		catalog := new(MockShopCatalog)
		catalog.On("ListShopProducts", context.Background(), "shop-1").
			Return(shopRecords(), nil)

		s := service.NewInventoryService(catalog, catalog, nil)
		families, err := s.Refresh(context.Background(), "shop-1")
		require.NoError(t, err)

		require.Len(t, families, 2)
		assert.Equal(t, "VC100", families[0].Key)
		assert.Len(t, families[0].Variants, 2)
		assert.Equal(t, "WF-2", families[1].Key)

		assert.Equal(t, families, s.Families())
	})

	t.Run("RefreshError", func(t *testing.T) {
		catalog := new(MockShopCatalog)
		listErr := errors.New("unreachable")
		catalog.On("ListShopProducts", context.Background(), "shop-1").
			Return(nil, listErr)

		s := service.NewInventoryService(catalog, catalog, nil)
		_, err := s.Refresh(context.Background(), "shop-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, listErr)
	})

	t.Run("RemoveRegroupsLocally", func(t *testing.T) {
		catalog := new(MockShopCatalog)
		catalog.On("ListShopProducts", context.Background(), "shop-1").
			Return(shopRecords(), nil)
		catalog.On("RemoveProduct", context.Background(), "p2").Return(nil)

		s := service.NewInventoryService(catalog, catalog, nil)
		_, err := s.Refresh(context.Background(), "shop-1")
		require.NoError(t, err)

		families, err := s.Remove(context.Background(), "p2")
		require.NoError(t, err)

		require.Len(t, families, 2)
		assert.Len(t, families[0].Variants, 1)
		assert.Equal(t, "p1", families[0].Variants[0].ProductID)

		// One list call total: the deletion regroups without a reload.
		catalog.AssertNumberOfCalls(t, "ListShopProducts", 1)
	})

	t.Run("RemoveErrorKeepsInventory", func(t *testing.T) {
		catalog := new(MockShopCatalog)
		catalog.On("ListShopProducts", context.Background(), "shop-1").
			Return(shopRecords(), nil)
		catalog.On("RemoveProduct", context.Background(), "p2").
			Return(errors.New("forbidden"))

		s := service.NewInventoryService(catalog, catalog, nil)
		_, err := s.Refresh(context.Background(), "shop-1")
		require.NoError(t, err)

		_, err = s.Remove(context.Background(), "p2")
		require.Error(t, err)
		assert.Len(t, s.Families(), 2)
	})

	t.Run("SignOutClearsInventory", func(t *testing.T) {
		catalog := new(MockShopCatalog)
		catalog.On("ListShopProducts", context.Background(), "shop-1").
			Return(shopRecords(), nil)

		sessions := &stubSessions{}
		s := service.NewInventoryService(catalog, catalog, sessions)

		_, err := s.Refresh(context.Background(), "shop-1")
		require.NoError(t, err)
		require.NotEmpty(t, s.Families())

		// A seller session keeps the inventory.
		sessions.broadcast(domain.Session{Token: "t", Role: domain.RoleSeller})
		assert.NotEmpty(t, s.Families())

		sessions.broadcast(domain.Session{})
		assert.Empty(t, s.Families())
	})
}
