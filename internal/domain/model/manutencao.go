package model

import (
	"time"

	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
)

// StatusManutencao é o vocabulário fechado de status de uma manutenção
type StatusManutencao string

const (
	ManutencaoAgendada        StatusManutencao = "AGENDADA"
	ManutencaoEmAndamento     StatusManutencao = "EM_ANDAMENTO"
	ManutencaoAguardandoPecas StatusManutencao = "AGUARDANDO_PECAS"
	ManutencaoConcluida       StatusManutencao = "CONCLUIDA"
	ManutencaoCancelada       StatusManutencao = "CANCELADA"
)

// StatusManutencoes lista todos os valores definidos
func StatusManutencoes() []StatusManutencao {
	return []StatusManutencao{
		ManutencaoAgendada,
		ManutencaoEmAndamento,
		ManutencaoAguardandoPecas,
		ManutencaoConcluida,
		ManutencaoCancelada,
	}
}

// ParseStatusManutencao converte um nome no valor correspondente
func ParseStatusManutencao(nome string) (StatusManutencao, error) {
	for _, s := range StatusManutencoes() {
		if string(s) == nome {
			return s, nil
		}
	}
	return "", apierror.InvalidEnumValue("status de manutenção", nome)
}

// Label retorna o rótulo de exibição do status
func (s StatusManutencao) Label() string {
	switch s {
	case ManutencaoAgendada:
		return "Agendada"
	case ManutencaoEmAndamento:
		return "Em andamento"
	case ManutencaoAguardandoPecas:
		return "Aguardando peças"
	case ManutencaoConcluida:
		return "Concluída"
	case ManutencaoCancelada:
		return "Cancelada"
	}
	return string(s)
}

// Descricao retorna o texto explicativo do status
func (s StatusManutencao) Descricao() string {
	switch s {
	case ManutencaoAgendada:
		return "Manutenção programada, ainda não iniciada"
	case ManutencaoEmAndamento:
		return "Manutenção em execução"
	case ManutencaoAguardandoPecas:
		return "Execução suspensa aguardando peças"
	case ManutencaoConcluida:
		return "Manutenção finalizada com sucesso"
	case ManutencaoCancelada:
		return "Manutenção cancelada antes da conclusão"
	}
	return string(s)
}

// Ativa indica manutenção agendada ou em execução
func (s StatusManutencao) Ativa() bool {
	return s == ManutencaoAgendada || s == ManutencaoEmAndamento
}

// Finalizada indica manutenção encerrada
func (s StatusManutencao) Finalizada() bool {
	return s == ManutencaoConcluida || s == ManutencaoCancelada
}

// Aguardando indica manutenção suspensa
func (s StatusManutencao) Aguardando() bool {
	return s == ManutencaoAguardandoPecas
}

// TipoManutencao é o vocabulário fechado de tipos de manutenção
type TipoManutencao string

const (
	ManutencaoPreventiva TipoManutencao = "PREVENTIVA"
	ManutencaoPreditiva  TipoManutencao = "PREDITIVA"
	ManutencaoCorretiva  TipoManutencao = "CORRETIVA"
	ManutencaoCalibracao TipoManutencao = "CALIBRACAO"
)

// TiposManutencao lista todos os valores definidos
func TiposManutencao() []TipoManutencao {
	return []TipoManutencao{
		ManutencaoPreventiva,
		ManutencaoPreditiva,
		ManutencaoCorretiva,
		ManutencaoCalibracao,
	}
}

// ParseTipoManutencao converte um nome no valor correspondente
func ParseTipoManutencao(nome string) (TipoManutencao, error) {
	for _, t := range TiposManutencao() {
		if string(t) == nome {
			return t, nil
		}
	}
	return "", apierror.InvalidEnumValue("tipo de manutenção", nome)
}

// Label retorna o rótulo de exibição do tipo
func (t TipoManutencao) Label() string {
	switch t {
	case ManutencaoPreventiva:
		return "Preventiva"
	case ManutencaoPreditiva:
		return "Preditiva"
	case ManutencaoCorretiva:
		return "Corretiva"
	case ManutencaoCalibracao:
		return "Calibração"
	}
	return string(t)
}

// Descricao retorna o texto explicativo do tipo
func (t TipoManutencao) Descricao() string {
	switch t {
	case ManutencaoPreventiva:
		return "Intervenção programada para evitar falhas"
	case ManutencaoPreditiva:
		return "Intervenção baseada em monitoramento de desgaste"
	case ManutencaoCorretiva:
		return "Reparo de falha já ocorrida"
	case ManutencaoCalibracao:
		return "Ajuste especializado de instrumentos"
	}
	return string(t)
}

// Planejada indica manutenção programada (preventiva ou preditiva)
func (t TipoManutencao) Planejada() bool {
	return t == ManutencaoPreventiva || t == ManutencaoPreditiva
}

// Corretiva indica reparo de falha
func (t TipoManutencao) Corretiva() bool {
	return t == ManutencaoCorretiva
}

// Especializada indica serviço técnico especializado
func (t TipoManutencao) Especializada() bool {
	return t == ManutencaoCalibracao
}

// Manutencao registra uma intervenção de manutenção sobre um bem
type Manutencao struct {
	ID               string           `gorm:"primaryKey;type:uuid" json:"id"`
	BemID            string           `gorm:"index;not null;type:uuid" json:"bemId"`
	Status           StatusManutencao `gorm:"size:20;not null;index" json:"status"`
	Tipo             TipoManutencao   `gorm:"size:20;not null;index" json:"tipo"`
	DataAgendada     *time.Time       `json:"dataAgendada,omitempty"`
	DataInicio       *time.Time       `json:"dataInicio,omitempty"`
	DataFim          *time.Time       `json:"dataFim,omitempty"`
	Responsavel      string           `gorm:"size:100" json:"responsavel,omitempty"`
	Fornecedor       string           `gorm:"size:150" json:"fornecedor,omitempty"`
	Custo            float64          `json:"custo"`
	Prioridade       int              `json:"prioridade"`
	DescricaoServico string           `gorm:"type:text" json:"descricaoServico,omitempty"`
	CriadoEm         time.Time        `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm     time.Time        `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// TableName define o nome da tabela
func (Manutencao) TableName() string {
	return "manutencoes"
}
