package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nut-orders-backend/internal/models"
)

func TestApplyDailyLoadingEdit_Append(t *testing.T) {
	current := []int64{10, 20}

	next, err := ApplyDailyLoadingEdit(current, AppendLoading(5))

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20, 5}, next)
	assert.Equal(t, []int64{10, 20}, current)
}

func TestApplyDailyLoadingEdit_AppendToEmpty(t *testing.T) {
	next, err := ApplyDailyLoadingEdit(nil, AppendLoading(40))

	require.NoError(t, err)
	assert.Equal(t, []int64{40}, next)
}

func TestApplyDailyLoadingEdit_RejectsNonPositive(t *testing.T) {
	for _, qty := range []int64{0, -3} {
		_, err := ApplyDailyLoadingEdit([]int64{10}, AppendLoading(qty))
		assert.ErrorIs(t, err, models.ErrInvalidQuantity)
	}
}

func TestApplyDailyLoadingEdit_Remove(t *testing.T) {
	current := []int64{10, 20, 30}

	next, err := ApplyDailyLoadingEdit(current, RemoveLoadingAt(1))

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 30}, next)
	assert.Equal(t, []int64{10, 20, 30}, current)
}

func TestApplyDailyLoadingEdit_RemoveOutOfRangeIsNoop(t *testing.T) {
	next, err := ApplyDailyLoadingEdit([]int64{10, 20}, RemoveLoadingAt(5))

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, next)
}

func TestApplyDailyLoadingEdit_ZeroValueEdit(t *testing.T) {
	_, err := ApplyDailyLoadingEdit([]int64{10}, LoadingEdit{})
	assert.Error(t, err)
}

func TestSummarizeLoading(t *testing.T) {
	order := &models.Order{ID: uuid.New(), Quantity: 100, DailyLoading: []int64{30, 25}}

	summary := SummarizeLoading(order)

	assert.Equal(t, order.ID.String(), summary.OrderID)
	assert.Equal(t, int64(55), summary.TotalLoaded)
	assert.Equal(t, int64(45), summary.Remaining)
	assert.Equal(t, []models.LoadingPoint{
		{Day: "Day 1", Quantity: 30},
		{Day: "Day 2", Quantity: 25},
	}, summary.Days)
}

func TestSummarizeLoading_OverloadedHasNoRemaining(t *testing.T) {
	summary := SummarizeLoading(&models.Order{ID: uuid.New(), Quantity: 10, DailyLoading: []int64{8, 8}})

	assert.Equal(t, int64(16), summary.TotalLoaded)
	assert.Zero(t, summary.Remaining)
}

func TestSummarizeLoading_Empty(t *testing.T) {
	summary := SummarizeLoading(&models.Order{ID: uuid.New(), Quantity: 10})

	assert.NotNil(t, summary.Days)
	assert.Empty(t, summary.Days)
	assert.Equal(t, int64(10), summary.Remaining)
}
