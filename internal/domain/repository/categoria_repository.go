package repository

import "github.com/inventra/inventario-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)
	Update(c *entity.Categoria) error
	Delete(id string) error
}
