package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGormInventoryItemLogRepository_ExistsTransferForItems(t *testing.T) {
	t.Run("detects transfer rows", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryItemLogRepository(gormDB)

		itemID := uuid.New()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "inventory_item_logs" WHERE inventory_item_id IN \(\$1\) AND \(from_inventory_id IS NOT NULL OR to_inventory_id IS NOT NULL\)`).
			WithArgs(itemID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		exists, err := repo.ExistsTransferForItems(context.Background(), []uuid.UUID{itemID})

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no transfer rows", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryItemLogRepository(gormDB)

		itemID := uuid.New()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "inventory_item_logs"`).
			WithArgs(itemID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsTransferForItems(context.Background(), []uuid.UUID{itemID})

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty item list skips the database", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryItemLogRepository(gormDB)

		exists, err := repo.ExistsTransferForItems(context.Background(), nil)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryItemLogRepository_FindTransferItemIDs(t *testing.T) {
	t.Run("returns distinct item ids with transfer rows", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryItemLogRepository(gormDB)

		soldItemID := uuid.New()
		otherItemID := uuid.New()
		mock.ExpectQuery(`SELECT DISTINCT "inventory_item_id" FROM "inventory_item_logs" WHERE inventory_item_id IN \(\$1,\$2\) AND \(from_inventory_id IS NOT NULL OR to_inventory_id IS NOT NULL\)`).
			WithArgs(soldItemID, otherItemID).
			WillReturnRows(sqlmock.NewRows([]string{"inventory_item_id"}).AddRow(soldItemID))

		ids, err := repo.FindTransferItemIDs(context.Background(), []uuid.UUID{soldItemID, otherItemID})

		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{soldItemID}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty item list skips the database", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryItemLogRepository(gormDB)

		ids, err := repo.FindTransferItemIDs(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryItemLogRepository_DeleteByItems_Empty(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormInventoryItemLogRepository(gormDB)

	err := repo.DeleteByItems(context.Background(), nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
