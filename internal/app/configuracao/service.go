package configuracao

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/jairomfjr/patrimonio-sub001/pkg/cache"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
)

const (
	prefixoCache = "configuracao:"
	ttlCache     = 10 * time.Minute
)

// tiposConfiguracao são os tipos de valor aceitos
var tiposConfiguracao = map[string]bool{
	"string": true,
	"int":    true,
	"bool":   true,
	"float":  true,
}

// Service concentra as regras de negócio de configurações. Leituras por
// chave passam pelo cache; escritas invalidam a entrada.
type Service struct {
	configuracoes repository.ConfiguracaoRepository
	cache         cache.Cache
	logger        *zap.Logger
}

// NewService cria o serviço de configurações
func NewService(
	configuracoes repository.ConfiguracaoRepository,
	cacheStore cache.Cache,
	logger *zap.Logger,
) *Service {
	return &Service{
		configuracoes: configuracoes,
		cache:         cacheStore,
		logger:        logger,
	}
}

func validarValor(tipo, valor string) error {
	switch tipo {
	case "int":
		if _, err := strconv.Atoi(valor); err != nil {
			return apierror.Validation("valor não é um inteiro válido", err).WithField("valor", "inteiro inválido")
		}
	case "bool":
		if _, err := strconv.ParseBool(valor); err != nil {
			return apierror.Validation("valor não é um booleano válido", err).WithField("valor", "booleano inválido")
		}
	case "float":
		if _, err := strconv.ParseFloat(valor, 64); err != nil {
			return apierror.Validation("valor não é um número válido", err).WithField("valor", "número inválido")
		}
	}
	return nil
}

// Criar cadastra uma configuração com chave única
func (s *Service) Criar(ctx context.Context, chave, valor, tipo, descricao string, editavel bool) (*model.Configuracao, error) {
	if chave == "" {
		return nil, apierror.Validation("chave da configuração é obrigatória", nil).WithField("chave", "obrigatória")
	}
	if tipo == "" {
		tipo = "string"
	}
	if !tiposConfiguracao[tipo] {
		return nil, apierror.InvalidEnumValue("tipo de configuração", tipo)
	}
	if err := validarValor(tipo, valor); err != nil {
		return nil, err
	}

	configuracao := &model.Configuracao{
		ID:        uuid.New().String(),
		Chave:     chave,
		Valor:     valor,
		Tipo:      tipo,
		Editavel:  editavel,
		Descricao: descricao,
	}

	if err := s.configuracoes.Criar(ctx, configuracao); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, apierror.CampoDuplicado("configuração", "chave", chave)
		}
		return nil, apierror.Internal(err)
	}

	s.logger.Info("configuração criada", zap.String("chave", chave))
	return configuracao, nil
}

// BuscarPorChave obtém uma configuração, preferindo o cache
func (s *Service) BuscarPorChave(ctx context.Context, chave string) (*model.Configuracao, error) {
	var configuracao model.Configuracao

	chaveCache := prefixoCache + chave
	found, err := s.cache.Get(ctx, chaveCache, &configuracao)
	if err != nil {
		s.logger.Warn("falha ao consultar cache de configuração", zap.String("chave", chave), zap.Error(err))
	} else if found {
		return &configuracao, nil
	}

	encontrada, err := s.configuracoes.BuscarPorChave(ctx, chave)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("configuração", err)
		}
		return nil, apierror.Internal(err)
	}

	if err := s.cache.Set(ctx, chaveCache, encontrada, ttlCache); err != nil {
		s.logger.Warn("falha ao gravar configuração no cache", zap.String("chave", chave), zap.Error(err))
	}

	return encontrada, nil
}

// Listar retorna a página de configurações ordenada por chave
func (s *Service) Listar(ctx context.Context, pagina pagination.Pagina) (*pagination.Resultado[*model.Configuracao], error) {
	configuracoes, total, err := s.configuracoes.Listar(ctx, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(configuracoes, total, pagina), nil
}

// Atualizar altera o valor de uma configuração editável e invalida o cache
func (s *Service) Atualizar(ctx context.Context, chave, valor, descricao string) (*model.Configuracao, error) {
	configuracao, err := s.configuracoes.BuscarPorChave(ctx, chave)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("configuração", err)
		}
		return nil, apierror.Internal(err)
	}

	if !configuracao.Editavel {
		return nil, apierror.BusinessRule("configuração não é editável", nil)
	}
	if err := validarValor(configuracao.Tipo, valor); err != nil {
		return nil, err
	}

	configuracao.Valor = valor
	if descricao != "" {
		configuracao.Descricao = descricao
	}

	if err := s.configuracoes.Atualizar(ctx, configuracao); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("configuração", err)
		}
		return nil, apierror.Internal(err)
	}

	if err := s.cache.Delete(ctx, prefixoCache+chave); err != nil {
		s.logger.Warn("falha ao invalidar cache de configuração", zap.String("chave", chave), zap.Error(err))
	}

	s.logger.Info("configuração atualizada", zap.String("chave", chave))
	return configuracao, nil
}
