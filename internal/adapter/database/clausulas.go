package database

import (
	"strings"

	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"gorm.io/gorm"
)

// Clausula é um predicado opcional de consulta. Clausulas nulas (filtro
// ausente) não restringem a consulta; as presentes são combinadas com AND
// na ordem em que aparecem.
type Clausula func(tx *gorm.DB) *gorm.DB

// AplicarClausulas dobra a lista ordenada de cláusulas sobre a consulta base
func AplicarClausulas(tx *gorm.DB, clausulas []Clausula) *gorm.DB {
	for _, clausula := range clausulas {
		if clausula != nil {
			tx = clausula(tx)
		}
	}
	return tx
}

// ClausulaIgual restringe a coluna ao valor exato
func ClausulaIgual[T any](coluna string, valor *T) Clausula {
	if valor == nil {
		return nil
	}
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(coluna+" = ?", *valor)
	}
}

// ClausulaContem restringe a coluna por substring, sem diferenciar
// maiúsculas de minúsculas
func ClausulaContem(coluna string, valor *string) Clausula {
	if valor == nil {
		return nil
	}
	padrao := "%" + strings.ToLower(*valor) + "%"
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER("+coluna+") LIKE ?", padrao)
	}
}

// ClausulaMinimo restringe a coluna ao limite inferior, inclusivo
func ClausulaMinimo[T any](coluna string, valor *T) Clausula {
	if valor == nil {
		return nil
	}
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(coluna+" >= ?", *valor)
	}
}

// ClausulaMaximo restringe a coluna ao limite superior, inclusivo
func ClausulaMaximo[T any](coluna string, valor *T) Clausula {
	if valor == nil {
		return nil
	}
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(coluna+" <= ?", *valor)
	}
}

// pesquisarPagina conta o total e devolve a página ordenada. O id entra
// como desempate para manter a paginação estável quando a chave de
// ordenação repete valores.
func pesquisarPagina[T any](tx *gorm.DB, ordenacao string, pagina pagination.Pagina) ([]*T, int64, error) {
	pagina = pagina.Normalizar()

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if ordenacao != "" && ordenacao != "id" {
		tx = tx.Order(ordenacao)
	}
	tx = tx.Order("id")

	var registros []*T
	if err := tx.Limit(pagina.Tamanho).Offset(pagina.Offset()).Find(&registros).Error; err != nil {
		return nil, 0, err
	}

	return registros, total, nil
}
