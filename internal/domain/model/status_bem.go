package model

import "github.com/jairomfjr/patrimonio-sub001/pkg/apierror"

// StatusBem é o vocabulário fechado de status operacionais de um bem
type StatusBem string

const (
	StatusAtivo        StatusBem = "ATIVO"
	StatusReservado    StatusBem = "RESERVADO"
	StatusEmManutencao StatusBem = "EM_MANUTENCAO"
	StatusExtraviado   StatusBem = "EXTRAVIADO"
	StatusInativo      StatusBem = "INATIVO"
	StatusBaixado      StatusBem = "BAIXADO"
)

// StatusBens lista todos os valores definidos
func StatusBens() []StatusBem {
	return []StatusBem{
		StatusAtivo,
		StatusReservado,
		StatusEmManutencao,
		StatusExtraviado,
		StatusInativo,
		StatusBaixado,
	}
}

// ParseStatusBem converte um nome no valor correspondente
func ParseStatusBem(nome string) (StatusBem, error) {
	for _, s := range StatusBens() {
		if string(s) == nome {
			return s, nil
		}
	}
	return "", apierror.InvalidEnumValue("status de bem", nome)
}

// Label retorna o rótulo de exibição do status
func (s StatusBem) Label() string {
	switch s {
	case StatusAtivo:
		return "Ativo"
	case StatusReservado:
		return "Reservado"
	case StatusEmManutencao:
		return "Em manutenção"
	case StatusExtraviado:
		return "Extraviado"
	case StatusInativo:
		return "Inativo"
	case StatusBaixado:
		return "Baixado"
	}
	return string(s)
}

// Descricao retorna o texto explicativo do status
func (s StatusBem) Descricao() string {
	switch s {
	case StatusAtivo:
		return "Bem em uso normal"
	case StatusReservado:
		return "Bem reservado para uso futuro"
	case StatusEmManutencao:
		return "Bem sob manutenção"
	case StatusExtraviado:
		return "Bem não localizado"
	case StatusInativo:
		return "Bem fora de uso, sem baixa formal"
	case StatusBaixado:
		return "Bem desfeito do acervo"
	}
	return string(s)
}

// Operacional indica que o bem está disponível para uso
func (s StatusBem) Operacional() bool {
	return s == StatusAtivo || s == StatusReservado
}

// EmManutencao indica que o bem está indisponível por manutenção
func (s StatusBem) EmManutencao() bool {
	return s == StatusEmManutencao
}

// Problema indica situação irregular ou fora de serviço
func (s StatusBem) Problema() bool {
	return s == StatusExtraviado || s == StatusInativo || s == StatusBaixado
}

// Terminal indica status do qual o bem não retorna
func (s StatusBem) Terminal() bool {
	return s == StatusBaixado
}

// Tabela de transições permitidas entre status. BAIXADO é terminal e só é
// atingido pelo serviço de baixa.
var transicoesStatus = map[StatusBem][]StatusBem{
	StatusAtivo:        {StatusReservado, StatusEmManutencao, StatusExtraviado, StatusInativo, StatusBaixado},
	StatusReservado:    {StatusAtivo, StatusEmManutencao, StatusExtraviado, StatusInativo},
	StatusEmManutencao: {StatusAtivo, StatusReservado, StatusInativo, StatusBaixado},
	StatusExtraviado:   {StatusAtivo, StatusBaixado},
	StatusInativo:      {StatusAtivo, StatusBaixado},
	StatusBaixado:      {},
}

// PodeTransicionarPara verifica a tabela de transições de status
func (s StatusBem) PodeTransicionarPara(destino StatusBem) bool {
	if s == destino {
		return true
	}
	for _, permitido := range transicoesStatus[s] {
		if permitido == destino {
			return true
		}
	}
	return false
}
