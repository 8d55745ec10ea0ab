package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

var (
	_ usecase.CustomerRepository = (*CustomerRepository)(nil)
	_ usecase.AccountRepository  = (*AccountRepository)(nil)
	_ usecase.IDGenerator        = (*ULIDGenerator)(nil)
)

func TestCustomerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()

	require.NoError(t, repo.Create(ctx, &domain.Customer{TaxID: "222", Name: "Bruno"}))
	require.NoError(t, repo.Create(ctx, &domain.Customer{TaxID: "111", Name: "Ana"}))

	err := repo.Create(ctx, &domain.Customer{TaxID: "111", Name: "Other"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCustomer)

	got, err := repo.GetByTaxID(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	_, err = repo.GetByTaxID(ctx, "333")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	got.AddAccount(7)
	require.NoError(t, repo.Update(ctx, got))

	err = repo.Update(ctx, &domain.Customer{TaxID: "333"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "222", list[0].TaxID)
	assert.Equal(t, "111", list[1].TaxID)
	assert.Equal(t, []int{7}, list[1].AccountNumbers)
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	next, err := repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	require.NoError(t, repo.Create(ctx, domain.NewAccount(1, "", "111")))

	err = repo.Create(ctx, domain.NewAccount(5, "", "111"))
	assert.Error(t, err)

	next, err = repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
	require.NoError(t, repo.Create(ctx, domain.NewAccount(next, "", "222")))

	acc, err := repo.GetByNumber(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "222", acc.CustomerTaxID)

	for _, n := range []int{0, 3, -1} {
		_, err := repo.GetByNumber(ctx, n)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound, "number %d", n)
	}

	err = repo.Update(ctx, domain.NewAccount(9, "", "111"))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Number)
	assert.Equal(t, 2, list[1].Number)

	// The returned slice is a copy.
	list[0] = nil
	again, _ := repo.List(ctx)
	assert.NotNil(t, again[0])
}

func TestAccountRepository_ConcurrentReads(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	for i := 1; i <= 10; i++ {
		require.NoError(t, repo.Create(ctx, domain.NewAccount(i, "", fmt.Sprint(i))))
	}

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			acc, err := repo.GetByNumber(ctx, n)
			assert.NoError(t, err)
			assert.Equal(t, n, acc.Number)
		}(i)
	}
	wg.Wait()
}

func TestULIDGenerator(t *testing.T) {
	gen := NewULIDGenerator()
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	gen.now = func() time.Time { return fixed }

	ids := make([]string, 0, 100)
	for range 100 {
		id := gen.Generate()
		parsed, err := ulid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, ulid.Timestamp(fixed), parsed.Time())
		ids = append(ids, id)
	}

	// Monotonic within one millisecond.
	assert.True(t, sort.StringsAreSorted(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, len(ids))
}
