package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"icecream/internal/adapters/out/memory"
	"icecream/internal/core/application/usecases/queries"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/clock"
	"icecream/internal/pkg/errs"
)

func TestGetAllOrdersQueryHandler(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	stored := seedOrders(t, repo, sampleSeeds()...)

	orders, err := queries.NewGetAllOrdersQueryHandler(repo).Handle(t.Context(), queries.NewGetAllOrdersQuery())

	require.NoError(t, err)
	assert.Equal(t, ids(stored), ids(orders))
}

func TestGetAllOrdersQueryHandler_EmptyStore(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())

	orders, err := queries.NewGetAllOrdersQueryHandler(repo).Handle(t.Context(), queries.NewGetAllOrdersQuery())

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetAllOrdersQueryHandler_RejectsZeroQuery(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())

	_, err := queries.NewGetAllOrdersQueryHandler(repo).Handle(t.Context(), queries.GetAllOrdersQuery{})

	require.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestGetOrderByIDQueryHandler(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	stored := seedOrders(t, repo, sampleSeeds()...)
	handler := queries.NewGetOrderByIDQueryHandler(repo)

	t.Run("found", func(t *testing.T) {
		query, err := queries.NewGetOrderByIDQuery(stored[1].ID())
		require.NoError(t, err)

		o, found, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Bob Smith", o.Customer().Name())
	})

	t.Run("missing", func(t *testing.T) {
		query, err := queries.NewGetOrderByIDQuery(999)
		require.NoError(t, err)

		o, found, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, o)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := queries.NewGetOrderByIDQuery(0)

		require.True(t, errs.IsValidation(err))
	})
}

func TestGetOrdersByCustomerEmailQueryHandler_IgnoresCase(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	stored := seedOrders(t, repo, sampleSeeds()...)

	query, err := queries.NewGetOrdersByCustomerEmailQuery("Alice.Johnson@EMAIL.com")
	require.NoError(t, err)
	orders, err := queries.NewGetOrdersByCustomerEmailQueryHandler(repo).Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, []order.ID{stored[0].ID(), stored[3].ID()}, ids(orders))
}

func TestGetOrdersByCustomerPhoneQueryHandler(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	stored := seedOrders(t, repo, sampleSeeds()...)

	query, err := queries.NewGetOrdersByCustomerPhoneQuery("+1-555-202-3456")
	require.NoError(t, err)
	orders, err := queries.NewGetOrdersByCustomerPhoneQueryHandler(repo).Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, []order.ID{stored[1].ID()}, ids(orders))
}

func TestGetOrdersByStatusQueryHandler(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	stored := seedOrders(t, repo, sampleSeeds()...)
	handler := queries.NewGetOrdersByStatusQueryHandler(repo)

	t.Run("all in status", func(t *testing.T) {
		query, err := queries.NewGetOrdersByStatusQuery(order.Pending, nil)
		require.NoError(t, err)

		orders, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []order.ID{stored[1].ID(), stored[2].ID()}, ids(orders))
	})

	t.Run("created after", func(t *testing.T) {
		since := now.Add(-time.Hour)
		query, err := queries.NewGetOrdersByStatusQuery(order.Pending, &since)
		require.NoError(t, err)

		orders, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []order.ID{stored[2].ID()}, ids(orders))
	})

	t.Run("no match", func(t *testing.T) {
		query, err := queries.NewGetOrdersByStatusQuery(order.Refunded, nil)
		require.NoError(t, err)

		orders, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestGetRecentOrdersQueryHandler_NewestFirstWithin24Hours(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	stored := seedOrders(t, repo, sampleSeeds()...)

	orders, err := queries.NewGetRecentOrdersQueryHandler(repo, clock.Fixed(now)).
		Handle(t.Context(), queries.NewGetRecentOrdersQuery())

	require.NoError(t, err)
	assert.Equal(t, []order.ID{stored[2].ID(), stored[1].ID(), stored[0].ID()}, ids(orders))
}

func TestSearchOrdersByCustomerNameQueryHandler(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	stored := seedOrders(t, repo, sampleSeeds()...)
	handler := queries.NewSearchOrdersByCustomerNameQueryHandler(repo)

	orders, err := handler.Handle(t.Context(), queries.NewSearchOrdersByCustomerNameQuery("ali"))
	require.NoError(t, err)
	assert.Equal(t, []order.ID{stored[0].ID(), stored[3].ID()}, ids(orders))

	orders, err = handler.Handle(t.Context(), queries.NewSearchOrdersByCustomerNameQuery("zed"))
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSearchOrdersByDeliveryAddressQueryHandler(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	stored := seedOrders(t, repo, sampleSeeds()...)

	orders, err := queries.NewSearchOrdersByDeliveryAddressQueryHandler(repo).
		Handle(t.Context(), queries.NewSearchOrdersByDeliveryAddressQuery("oak avenue"))

	require.NoError(t, err)
	assert.Equal(t, []order.ID{stored[0].ID(), stored[3].ID()}, ids(orders))
}

func TestGetOrdersCreatedBetweenQueryHandler(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	stored := seedOrders(t, repo, sampleSeeds()...)

	query, err := queries.NewGetOrdersCreatedBetweenQuery(now.Add(-2*time.Hour), now.Add(-90*time.Minute))
	require.NoError(t, err)
	orders, err := queries.NewGetOrdersCreatedBetweenQueryHandler(repo).Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, []order.ID{stored[0].ID(), stored[1].ID()}, ids(orders))
}

func TestNewGetOrdersCreatedBetweenQuery_Validation(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
	}{
		{name: "from after to", from: now, to: now.Add(-time.Minute)},
		{name: "missing from", to: now},
		{name: "missing to", from: now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewGetOrdersCreatedBetweenQuery(tt.from, tt.to)

			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}

	_, err := queries.NewGetOrdersCreatedBetweenQuery(now, now)
	require.NoError(t, err)
}

func TestGetStalePendingOrdersQueryHandler(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	stored := seedOrders(t, repo, sampleSeeds()...)

	query, err := queries.NewGetStalePendingOrdersQuery(30 * time.Minute)
	require.NoError(t, err)
	orders, err := queries.NewGetStalePendingOrdersQueryHandler(repo, clock.Fixed(now)).Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, []order.ID{stored[1].ID()}, ids(orders))
}

func TestNewGetStalePendingOrdersQuery_RejectsNonPositive(t *testing.T) {
	_, err := queries.NewGetStalePendingOrdersQuery(0)

	require.True(t, errs.IsValidation(err))
}

func TestNewGetStalePendingOrdersQueryFromMinutes(t *testing.T) {
	t.Run("largest representable minutes", func(t *testing.T) {
		query, err := queries.NewGetStalePendingOrdersQueryFromMinutes(queries.MaxOlderThanMinutes)

		require.NoError(t, err)
		assert.Equal(t, time.Duration(153722867)*time.Minute, query.OlderThan())
		assert.Positive(t, query.OlderThan())
	})

	for _, minutes := range []int64{0, -5, queries.MaxOlderThanMinutes + 1, 307445735} {
		_, err := queries.NewGetStalePendingOrdersQueryFromMinutes(minutes)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "minutes=%d", minutes)
		assert.True(t, errs.IsValidation(err))
	}
}
