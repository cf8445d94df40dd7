package database

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := InitDatabase(DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestInitDatabaseSQLite(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Ping(db))

	for _, table := range []string{"restaurants", "pizzas", "restaurant_pizzas"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestForeignKeysCascadeOnRestaurantDelete(t *testing.T) {
	db := setupTestDB(t)

	restaurant := models.Restaurant{Name: "Sanjay's Pizza", Address: "address2"}
	pizza := models.Pizza{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"}
	require.NoError(t, db.Create(&restaurant).Error)
	require.NoError(t, db.Create(&pizza).Error)
	rp := models.RestaurantPizza{Price: 4, RestaurantID: restaurant.ID, PizzaID: pizza.ID}
	require.NoError(t, db.Create(&rp).Error)

	// Bypass the service layer so only the storage rule removes the association
	require.NoError(t, db.Exec("DELETE FROM restaurants WHERE id = ?", restaurant.ID).Error)

	var remaining int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestForeignKeysRejectDanglingReferences(t *testing.T) {
	db := setupTestDB(t)

	rp := models.RestaurantPizza{Price: 4, RestaurantID: 404, PizzaID: 404}
	assert.Error(t, db.Create(&rp).Error)
}

func TestPriceHookRejectsInvalidRows(t *testing.T) {
	db := setupTestDB(t)

	restaurant := models.Restaurant{Name: "Kiki's Pizza", Address: "address3"}
	pizza := models.Pizza{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"}
	require.NoError(t, db.Create(&restaurant).Error)
	require.NoError(t, db.Create(&pizza).Error)

	rp := models.RestaurantPizza{Price: 31, RestaurantID: restaurant.ID, PizzaID: pizza.ID}
	assert.Error(t, db.Create(&rp).Error)

	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	assert.Zero(t, count)
}
