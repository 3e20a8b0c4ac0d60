package model

import (
	"time"

	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
)

// TipoMovimentacao é o vocabulário fechado de tipos de movimentação
type TipoMovimentacao string

const (
	MovimentacaoEntrada       TipoMovimentacao = "ENTRADA"
	MovimentacaoSaida         TipoMovimentacao = "SAIDA"
	MovimentacaoTransferencia TipoMovimentacao = "TRANSFERENCIA"
	MovimentacaoManutencao    TipoMovimentacao = "MANUTENCAO"
	MovimentacaoEmprestimo    TipoMovimentacao = "EMPRESTIMO"
	MovimentacaoDevolucao     TipoMovimentacao = "DEVOLUCAO"
)

// TiposMovimentacao lista todos os valores definidos
func TiposMovimentacao() []TipoMovimentacao {
	return []TipoMovimentacao{
		MovimentacaoEntrada,
		MovimentacaoSaida,
		MovimentacaoTransferencia,
		MovimentacaoManutencao,
		MovimentacaoEmprestimo,
		MovimentacaoDevolucao,
	}
}

// ParseTipoMovimentacao converte um nome no valor correspondente
func ParseTipoMovimentacao(nome string) (TipoMovimentacao, error) {
	for _, t := range TiposMovimentacao() {
		if string(t) == nome {
			return t, nil
		}
	}
	return "", apierror.InvalidEnumValue("tipo de movimentação", nome)
}

// Label retorna o rótulo de exibição do tipo
func (t TipoMovimentacao) Label() string {
	switch t {
	case MovimentacaoEntrada:
		return "Entrada"
	case MovimentacaoSaida:
		return "Saída"
	case MovimentacaoTransferencia:
		return "Transferência"
	case MovimentacaoManutencao:
		return "Envio para manutenção"
	case MovimentacaoEmprestimo:
		return "Empréstimo"
	case MovimentacaoDevolucao:
		return "Devolução"
	}
	return string(t)
}

// Descricao retorna o texto explicativo do tipo
func (t TipoMovimentacao) Descricao() string {
	switch t {
	case MovimentacaoEntrada:
		return "Incorporação do bem ao acervo ou retorno ao estoque"
	case MovimentacaoSaida:
		return "Saída definitiva do bem da localização"
	case MovimentacaoTransferencia:
		return "Mudança do bem entre localizações"
	case MovimentacaoManutencao:
		return "Envio do bem para manutenção externa"
	case MovimentacaoEmprestimo:
		return "Cessão temporária do bem a um responsável"
	case MovimentacaoDevolucao:
		return "Retorno do bem emprestado"
	}
	return string(t)
}

// Entrada indica movimentação que traz o bem para dentro
func (t TipoMovimentacao) Entrada() bool {
	return t == MovimentacaoEntrada || t == MovimentacaoDevolucao
}

// Saida indica movimentação que leva o bem para fora
func (t TipoMovimentacao) Saida() bool {
	return t == MovimentacaoSaida || t == MovimentacaoEmprestimo
}

// Transferencia indica movimentação entre localizações
func (t TipoMovimentacao) Transferencia() bool {
	return t == MovimentacaoTransferencia
}

// Movimentacao é o registro imutável de uma movimentação de bem.
// OrigemID é nula em entradas; o registro nunca é alterado após criado.
type Movimentacao struct {
	ID          string           `gorm:"primaryKey;type:uuid" json:"id"`
	BemID       string           `gorm:"index;not null;type:uuid" json:"bemId"`
	Tipo        TipoMovimentacao `gorm:"size:20;not null;index" json:"tipo"`
	OrigemID    *string          `gorm:"type:uuid" json:"origemId,omitempty"`
	DestinoID   string           `gorm:"not null;type:uuid" json:"destinoId"`
	Responsavel string           `gorm:"size:100" json:"responsavel"`
	Observacoes string           `gorm:"type:text" json:"observacoes,omitempty"`
	DataHora    time.Time        `gorm:"index;not null" json:"dataHora"`
	CriadoEm    time.Time        `gorm:"autoCreateTime" json:"criadoEm"`
}

// TableName define o nome da tabela
func (Movimentacao) TableName() string {
	return "movimentacoes"
}
