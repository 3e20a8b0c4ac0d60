package model

import (
	"time"

	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
)

// StatusInventario é o vocabulário fechado de status de um inventário
type StatusInventario string

const (
	InventarioPlanejado   StatusInventario = "PLANEJADO"
	InventarioEmAndamento StatusInventario = "EM_ANDAMENTO"
	InventarioEmRevisao   StatusInventario = "EM_REVISAO"
	InventarioConcluido   StatusInventario = "CONCLUIDO"
	InventarioCancelado   StatusInventario = "CANCELADO"
)

// StatusInventarios lista todos os valores definidos
func StatusInventarios() []StatusInventario {
	return []StatusInventario{
		InventarioPlanejado,
		InventarioEmAndamento,
		InventarioEmRevisao,
		InventarioConcluido,
		InventarioCancelado,
	}
}

// ParseStatusInventario converte um nome no valor correspondente
func ParseStatusInventario(nome string) (StatusInventario, error) {
	for _, s := range StatusInventarios() {
		if string(s) == nome {
			return s, nil
		}
	}
	return "", apierror.InvalidEnumValue("status de inventário", nome)
}

// Label retorna o rótulo de exibição do status
func (s StatusInventario) Label() string {
	switch s {
	case InventarioPlanejado:
		return "Planejado"
	case InventarioEmAndamento:
		return "Em andamento"
	case InventarioEmRevisao:
		return "Em revisão"
	case InventarioConcluido:
		return "Concluído"
	case InventarioCancelado:
		return "Cancelado"
	}
	return string(s)
}

// Descricao retorna o texto explicativo do status
func (s StatusInventario) Descricao() string {
	switch s {
	case InventarioPlanejado:
		return "Campanha de contagem planejada, ainda não iniciada"
	case InventarioEmAndamento:
		return "Contagem em execução"
	case InventarioEmRevisao:
		return "Contagem encerrada, divergências sob análise"
	case InventarioConcluido:
		return "Campanha concluída"
	case InventarioCancelado:
		return "Campanha cancelada"
	}
	return string(s)
}

// Ativo indica campanha planejada ou em execução
func (s StatusInventario) Ativo() bool {
	return s == InventarioPlanejado || s == InventarioEmAndamento
}

// EmRevisao indica campanha sob análise de divergências
func (s StatusInventario) EmRevisao() bool {
	return s == InventarioEmRevisao
}

// Finalizado indica campanha encerrada
func (s StatusInventario) Finalizado() bool {
	return s == InventarioConcluido || s == InventarioCancelado
}

// Inventario é uma campanha de verificação sobre um conjunto de bens
type Inventario struct {
	ID           string           `gorm:"primaryKey;type:uuid" json:"id"`
	Nome         string           `gorm:"uniqueIndex;not null;size:100" json:"nome"`
	Status       StatusInventario `gorm:"size:20;not null;index" json:"status"`
	DataInicio   *time.Time       `json:"dataInicio,omitempty"`
	DataFim      *time.Time       `json:"dataFim,omitempty"`
	Responsavel  string           `gorm:"size:100" json:"responsavel,omitempty"`
	Observacoes  string           `gorm:"type:text" json:"observacoes,omitempty"`
	CriadoEm     time.Time        `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time        `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// TableName define o nome da tabela
func (Inventario) TableName() string {
	return "inventarios"
}

// InventarioBem vincula um bem a um inventário. O lado "muitos" guarda as
// chaves; o inventário nunca carrega a coleção em memória.
type InventarioBem struct {
	InventarioID string    `gorm:"primaryKey;type:uuid" json:"inventarioId"`
	BemID        string    `gorm:"primaryKey;type:uuid" json:"bemId"`
	Verificado   bool      `gorm:"default:false" json:"verificado"`
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
}

// TableName define o nome da tabela
func (InventarioBem) TableName() string {
	return "inventario_bens"
}
