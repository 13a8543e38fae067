package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormProductRepository_FindByID(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		productID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "name", "description", "category_id", "supplier_id", "image", "published"}).
			AddRow(productID, "Winter Jacket", "Warm", uuid.New(), uuid.New(), "primary.jpg", true)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnRows(rows)

		product, err := repo.FindByID(context.Background(), productID)

		assert.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Winter Jacket", product.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		productID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByID(context.Background(), productID)

		assert.Nil(t, product)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindBySupplier(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormProductRepository(gormDB)

	supplierID := uuid.New()
	filter := shared.DefaultFilter()

	rows := sqlmock.NewRows([]string{"id", "name", "supplier_id"}).
		AddRow(uuid.New(), "Jacket", supplierID).
		AddRow(uuid.New(), "Boots", supplierID)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE supplier_id = \$1 ORDER BY created_at DESC LIMIT .*`).
		WithArgs(supplierID, 20).
		WillReturnRows(rows)

	products, err := repo.FindBySupplier(context.Background(), supplierID, filter)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProductRepository_FindAll_RejectsUnknownSortField(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormProductRepository(gormDB)

	filter := shared.DefaultFilter()
	filter.OrderBy = "published; DROP TABLE products"

	// The injected sort field is discarded in favor of the default.
	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY created_at DESC LIMIT .*`).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindAll(context.Background(), filter)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProductRepository_Delete(t *testing.T) {
	t.Run("deletes existing product", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		productID := uuid.New()
		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), productID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports not found when nothing was deleted", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		productID := uuid.New()
		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), productID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
