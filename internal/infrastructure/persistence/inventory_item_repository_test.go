package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGormInventoryItemRepository_FindByProducts(t *testing.T) {
	t.Run("loads items for a whole page in one query", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryItemRepository(gormDB)

		firstProductID := uuid.New()
		secondProductID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "inventory_id", "product_id"}).
			AddRow(uuid.New(), uuid.New(), firstProductID).
			AddRow(uuid.New(), uuid.New(), secondProductID)

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id IN \(\$1,\$2\)`).
			WithArgs(firstProductID, secondProductID).
			WillReturnRows(rows)

		items, err := repo.FindByProducts(context.Background(), []uuid.UUID{firstProductID, secondProductID})

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty product list skips the database", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryItemRepository(gormDB)

		items, err := repo.FindByProducts(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
