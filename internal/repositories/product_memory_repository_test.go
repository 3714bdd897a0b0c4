package repositories_test

import (
	"testing"

	"marketplace/internal/models"
	"marketplace/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMemoryProductRepository_CRUD(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	product := &models.Product{Name: "Bamileke Stool", Price: 15000.0, Category: "Furniture"}
	assert.NoError(t, repo.Create(product))
	assert.NotEmpty(t, product.ID) // id is generated when the caller omits it

	stored, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.Name, stored.Name)

	stored.Price = 16000.0
	assert.NoError(t, repo.Update(stored))
	updated, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 16000.0, updated.Price)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	assert.NoError(t, repo.Delete(product.ID))
	_, err = repo.GetByID(product.ID)
	assert.True(t, models.IsNotFound(err, models.KindProduct))
}

func TestMemoryProductRepository_MissingProductErrors(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	_, err := repo.GetByID("99")
	assert.True(t, models.IsNotFound(err, models.KindProduct))

	err = repo.Update(&models.Product{ID: "99", Name: "Ghost"})
	assert.True(t, models.IsNotFound(err, models.KindProduct))

	err = repo.Delete("99")
	assert.True(t, models.IsNotFound(err, models.KindProduct))
}
