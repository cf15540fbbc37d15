package crud

import "gorm.io/gorm"

// Repositorio implementa o conjunto de operações comum a todas as entidades
// (criar, listar, buscar por id, excluir). Os repositórios de cada entidade
// embutem esta base e acrescentam apenas o comportamento específico
// (atualização parcial, cascatas, cargas manuais de relações).
type Repositorio[T any] struct {
	// Ordenacao é a coluna usada nas listagens, sempre em ordem ascendente.
	Ordenacao string
}

func (r *Repositorio[T]) Criar(db *gorm.DB, entidade *T) error {
	return db.Create(entidade).Error
}

func (r *Repositorio[T]) ListarTodos(db *gorm.DB, preloads ...string) ([]T, error) {
	var entidades []T
	tx := db
	for _, p := range preloads {
		tx = tx.Preload(p)
	}
	if r.Ordenacao != "" {
		tx = tx.Order(r.Ordenacao + " asc")
	}
	err := tx.Find(&entidades).Error
	return entidades, err
}

func (r *Repositorio[T]) BuscarPorID(db *gorm.DB, id uint, preloads ...string) (*T, error) {
	var entidade T
	tx := db
	for _, p := range preloads {
		tx = tx.Preload(p)
	}
	if err := tx.First(&entidade, id).Error; err != nil {
		return nil, err
	}
	return &entidade, nil
}

// Deletar exclui por id; nenhuma linha afetada equivale a registro não
// encontrado, para que o handler devolva 404 e não 204.
func (r *Repositorio[T]) Deletar(db *gorm.DB, id uint) error {
	res := db.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
