package employee_test

import (
	"testing"

	"go-staff/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestMemoryRepository_OrderAndCopies(t *testing.T) {
	repo := employee.NewMemoryRepository()

	repo.ReplaceAll([]employee.Employee{
		{ID: 1, Name: "Alice", Age: 30},
		{ID: 2, Name: "Bob", Age: 40},
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		records := repo.List()
		assert.Len(t, records, 2)
		assert.Equal(t, int64(1), records[0].ID)
		assert.Equal(t, int64(2), records[1].ID)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		records := repo.List()
		records[0].Name = "mutated"

		fresh := repo.List()
		assert.Equal(t, "Alice", fresh[0].Name)
	})

	t.Run("stored slice is a copy of the input", func(t *testing.T) {
		input := []employee.Employee{{ID: 7, Name: "Carol", Age: 50}}
		repo.ReplaceAll(input)
		input[0].Name = "mutated"

		assert.Equal(t, "Carol", repo.List()[0].Name)
	})
}

func TestMemoryRepository_Counter(t *testing.T) {
	repo := employee.NewMemoryRepository()

	assert.Equal(t, int64(1), repo.NextID())

	repo.SetNextID(5)
	assert.Equal(t, int64(5), repo.NextID())
}

func TestMemoryRepository_Reset(t *testing.T) {
	repo := employee.NewMemoryRepository()
	repo.ReplaceAll([]employee.Employee{{ID: 3, Name: "Dave", Age: 25}})
	repo.SetNextID(9)

	repo.Reset()

	assert.Empty(t, repo.List())
	assert.Equal(t, int64(1), repo.NextID())
}
