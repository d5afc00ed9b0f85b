package offer_test

import (
	"testing"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	t.Run("valid_percentage_offer", func(t *testing.T) {
		o, err := offer.NewOffer(
			kernel.NewUUID(), "SAVE15", offer.DiscountPercentage, 15, offer.ScopeAll(), nil, nil,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "SAVE15", o.CouponCode())
		assert.Equal(t, offer.DiscountPercentage, o.DiscountType())
		assert.InDelta(t, 15, o.DiscountValue(), 0)
		assert.Nil(t, o.MinOrderValue())
		assert.Nil(t, o.ExpiresAt())
	})

	t.Run("valid_fixed_offer_with_minimum", func(t *testing.T) {
		minOrder := kernel.NewMoney(2000)

		o, err := offer.NewOffer(
			kernel.NewUUID(), "TENOFF", offer.DiscountFixed, 1000, offer.ScopeAll(), &minOrder, nil,
		)

		require.NoError(t, err)
		require.NotNil(t, o.MinOrderValue())
		assert.Equal(t, int64(2000), o.MinOrderValue().Cents())
	})

	t.Run("empty_coupon_code_is_rejected", func(t *testing.T) {
		_, err := offer.NewOffer(
			kernel.NewUUID(), "", offer.DiscountFixed, 500, offer.ScopeAll(), nil, nil,
		)
		require.ErrorIs(t, err, offer.ErrCouponCodeIsRequired)
	})

	t.Run("percentage_out_of_range_is_rejected", func(t *testing.T) {
		_, err := offer.NewOffer(
			kernel.NewUUID(), "BAD", offer.DiscountPercentage, 101, offer.ScopeAll(), nil, nil,
		)
		require.Error(t, err)

		_, err = offer.NewOffer(
			kernel.NewUUID(), "BAD", offer.DiscountPercentage, 0, offer.ScopeAll(), nil, nil,
		)
		require.Error(t, err)
	})

	t.Run("non_positive_fixed_value_is_rejected", func(t *testing.T) {
		_, err := offer.NewOffer(
			kernel.NewUUID(), "BAD", offer.DiscountFixed, 0, offer.ScopeAll(), nil, nil,
		)
		require.Error(t, err)
	})

	t.Run("unknown_discount_type_is_rejected", func(t *testing.T) {
		_, err := offer.NewOffer(
			kernel.NewUUID(), "BAD", offer.DiscountType(0), 10, offer.ScopeAll(), nil, nil,
		)
		require.Error(t, err)
	})
}

func TestOffer_IsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no_expiry_never_expires", func(t *testing.T) {
		o, err := offer.NewOffer(
			kernel.NewUUID(), "FOREVER", offer.DiscountFixed, 100, offer.ScopeAll(), nil, nil,
		)
		require.NoError(t, err)

		assert.False(t, o.IsExpired(now))
	})

	t.Run("future_expiry", func(t *testing.T) {
		expiry := now.Add(time.Hour)
		o, err := offer.NewOffer(
			kernel.NewUUID(), "SOON", offer.DiscountFixed, 100, offer.ScopeAll(), nil, &expiry,
		)
		require.NoError(t, err)

		assert.False(t, o.IsExpired(now))
		assert.False(t, o.IsExpired(expiry))
		assert.True(t, o.IsExpired(expiry.Add(time.Second)))
	})
}

func TestScope_CoversItem(t *testing.T) {
	itemID := kernel.NewUUID()
	otherItemID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	otherRestaurantID := kernel.NewUUID()

	t.Run("all_covers_everything", func(t *testing.T) {
		s := offer.ScopeAll()

		assert.Equal(t, offer.ScopeKindAll, s.Kind())
		assert.True(t, s.CoversItem(itemID, restaurantID))
		assert.True(t, s.CoversItem(otherItemID, otherRestaurantID))
	})

	t.Run("restaurant_scope_matches_owner", func(t *testing.T) {
		s := offer.ScopeRestaurant(restaurantID)

		assert.Equal(t, offer.ScopeKindRestaurant, s.Kind())
		assert.True(t, s.CoversItem(itemID, restaurantID))
		assert.False(t, s.CoversItem(itemID, otherRestaurantID))
	})

	t.Run("item_scope_matches_listed_items", func(t *testing.T) {
		s := offer.ScopeItems([]kernel.UUID{itemID})

		assert.Equal(t, offer.ScopeKindItems, s.Kind())
		assert.True(t, s.CoversItem(itemID, restaurantID))
		assert.False(t, s.CoversItem(otherItemID, restaurantID))
	})
}

func TestNewAppliedOffer(t *testing.T) {
	t.Run("binds_offer_and_discount", func(t *testing.T) {
		o, err := offer.NewOffer(
			kernel.NewUUID(), "TENOFF", offer.DiscountFixed, 1000, offer.ScopeAll(), nil, nil,
		)
		require.NoError(t, err)

		applied, err := offer.NewAppliedOffer(o, kernel.NewMoney(1000))

		require.NoError(t, err)
		assert.True(t, applied.Offer().IsEqual(o))
		assert.Equal(t, int64(1000), applied.DiscountAmount().Cents())
	})

	t.Run("rejects_unconstructed_offer", func(t *testing.T) {
		_, err := offer.NewAppliedOffer(nil, kernel.NewMoney(100))
		require.Error(t, err)
	})

	t.Run("rejects_negative_discount", func(t *testing.T) {
		o, err := offer.NewOffer(
			kernel.NewUUID(), "TENOFF", offer.DiscountFixed, 1000, offer.ScopeAll(), nil, nil,
		)
		require.NoError(t, err)

		_, err = offer.NewAppliedOffer(o, kernel.NewMoney(-1))
		require.Error(t, err)
	})
}
