package menu_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBurger(t *testing.T) (*menu.MenuItem, menu.CustomizationOption, menu.CustomizationOption) {
	t.Helper()

	size := menu.CustomizationOption{
		ID:       kernel.NewUUID(),
		Name:     "Size",
		Mode:     menu.SelectionSingle,
		Required: true,
		Choices: []menu.Choice{
			{Name: "Regular", PriceDelta: kernel.NewMoney(0)},
			{Name: "Large", PriceDelta: kernel.NewMoney(150)},
		},
	}
	extras := menu.CustomizationOption{
		ID:   kernel.NewUUID(),
		Name: "Extras",
		Mode: menu.SelectionMultiple,
		Choices: []menu.Choice{
			{Name: "Cheese", PriceDelta: kernel.NewMoney(100)},
			{Name: "Bacon", PriceDelta: kernel.NewMoney(200)},
		},
	}

	item, err := menu.NewMenuItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Burger",
		kernel.NewMoney(899),
		[]menu.CustomizationOption{size, extras},
		menu.AllDay(),
		"Mains",
	)
	require.NoError(t, err)

	return item, size, extras
}

func TestNewMenuItem(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		item, _, _ := newBurger(t)

		require.NoError(t, item.Validate())
		assert.Equal(t, "Burger", item.Name())
		assert.Equal(t, int64(899), item.BasePrice().Cents())
		assert.Equal(t, "Mains", item.Category())
		assert.True(t, item.Window().IsAllDay())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), kernel.NewUUID(), "", kernel.NewMoney(100), nil, menu.AllDay(), "",
		)
		require.ErrorIs(t, err, menu.ErrItemNameIsRequired)
	})

	t.Run("negative_price_is_rejected", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), kernel.NewUUID(), "Burger", kernel.NewMoney(-1), nil, menu.AllDay(), "",
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item menu.MenuItem
		require.ErrorIs(t, item.Validate(), menu.ErrMenuItemIsNotConstructed)
	})
}

func TestMenuItem_UnitPrice(t *testing.T) {
	t.Run("base_plus_selected_deltas", func(t *testing.T) {
		item, size, extras := newBurger(t)

		price, err := item.UnitPrice([]menu.Selection{
			{OptionID: size.ID, Choices: []string{"Large"}},
			{OptionID: extras.ID, Choices: []string{"Cheese", "Bacon"}},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(899+150+100+200), price.Cents())
	})

	t.Run("required_option_missing", func(t *testing.T) {
		item, _, extras := newBurger(t)

		_, err := item.UnitPrice([]menu.Selection{
			{OptionID: extras.ID, Choices: []string{"Cheese"}},
		})

		require.ErrorIs(t, err, menu.ErrRequiredOptionMissing)
	})

	t.Run("single_option_rejects_multiple_choices", func(t *testing.T) {
		item, size, _ := newBurger(t)

		_, err := item.UnitPrice([]menu.Selection{
			{OptionID: size.ID, Choices: []string{"Regular", "Large"}},
		})

		require.ErrorIs(t, err, menu.ErrSingleOptionMultipleChoices)
	})

	t.Run("unknown_option", func(t *testing.T) {
		item, size, _ := newBurger(t)

		_, err := item.UnitPrice([]menu.Selection{
			{OptionID: size.ID, Choices: []string{"Regular"}},
			{OptionID: kernel.NewUUID(), Choices: []string{"Anything"}},
		})

		require.ErrorIs(t, err, menu.ErrUnknownOption)
	})

	t.Run("unknown_choice", func(t *testing.T) {
		item, size, _ := newBurger(t)

		_, err := item.UnitPrice([]menu.Selection{
			{OptionID: size.ID, Choices: []string{"Gigantic"}},
		})

		require.ErrorIs(t, err, menu.ErrUnknownChoice)
	})

	t.Run("no_options_no_selections", func(t *testing.T) {
		item, err := menu.NewMenuItem(
			kernel.NewUUID(), kernel.NewUUID(), "Fries", kernel.NewMoney(399), nil, menu.AllDay(), "",
		)
		require.NoError(t, err)

		price, err := item.UnitPrice(nil)

		require.NoError(t, err)
		assert.Equal(t, int64(399), price.Cents())
	})
}

func TestServingWindow_Contains(t *testing.T) {
	parse := func(s string) kernel.TimeOfDay {
		tod, err := kernel.ParseTimeOfDay(s)
		require.NoError(t, err)
		return tod
	}

	t.Run("all_day_contains_everything", func(t *testing.T) {
		w := menu.AllDay()

		assert.True(t, w.IsAllDay())
		assert.True(t, w.Contains(parse("00:00")))
		assert.True(t, w.Contains(parse("23:59")))
	})

	t.Run("plain_window", func(t *testing.T) {
		w := menu.CustomWindow(parse("06:00"), parse("11:00"))

		assert.True(t, w.Contains(parse("06:00")))
		assert.True(t, w.Contains(parse("11:00")))
		assert.False(t, w.Contains(parse("11:01")))
	})

	t.Run("midnight_wraparound_window", func(t *testing.T) {
		w := menu.CustomWindow(parse("22:00"), parse("06:00"))

		assert.True(t, w.Contains(parse("23:30")))
		assert.True(t, w.Contains(parse("02:00")))
		assert.False(t, w.Contains(parse("12:00")))
	})
}
