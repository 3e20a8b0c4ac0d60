package inventario

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
)

// Service concentra as regras de negócio de inventários
type Service struct {
	inventarios repository.InventarioRepository
	bens        repository.BemRepository
	logger      *zap.Logger
}

// NewService cria o serviço de inventários
func NewService(
	inventarios repository.InventarioRepository,
	bens repository.BemRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		inventarios: inventarios,
		bens:        bens,
		logger:      logger,
	}
}

// Criar cadastra uma campanha de inventário no status PLANEJADO
func (s *Service) Criar(ctx context.Context, nome, responsavel, observacoes string) (*model.Inventario, error) {
	if nome == "" {
		return nil, apierror.Validation("nome do inventário é obrigatório", nil).WithField("nome", "obrigatório")
	}

	existe, err := s.inventarios.ExisteNome(ctx, nome, "")
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if existe {
		return nil, apierror.CampoDuplicado("inventário", "nome", nome)
	}

	inventario := &model.Inventario{
		ID:          uuid.New().String(),
		Nome:        nome,
		Status:      model.InventarioPlanejado,
		Responsavel: responsavel,
		Observacoes: observacoes,
	}

	if err := s.inventarios.Criar(ctx, inventario); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, apierror.CampoDuplicado("inventário", "nome", nome)
		}
		return nil, apierror.Internal(err)
	}

	s.logger.Info("inventário criado", zap.String("id", inventario.ID), zap.String("nome", nome))
	return inventario, nil
}

// BuscarPorID obtém um inventário pelo identificador
func (s *Service) BuscarPorID(ctx context.Context, id string) (*model.Inventario, error) {
	inventario, err := s.inventarios.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("inventário", err)
		}
		return nil, apierror.Internal(err)
	}
	return inventario, nil
}

// Pesquisar retorna a página de inventários que satisfaz o filtro
func (s *Service) Pesquisar(ctx context.Context, filtro repository.FiltroInventarios, pagina pagination.Pagina) (*pagination.Resultado[*model.Inventario], error) {
	inventarios, total, err := s.inventarios.Pesquisar(ctx, filtro, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(inventarios, total, pagina), nil
}

// Iniciar coloca a campanha em andamento
func (s *Service) Iniciar(ctx context.Context, id string) (*model.Inventario, error) {
	inventario, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inventario.Status != model.InventarioPlanejado {
		return nil, apierror.BusinessRule("só inventários planejados podem ser iniciados", nil)
	}

	agora := time.Now()
	inventario.Status = model.InventarioEmAndamento
	inventario.DataInicio = &agora

	if err := s.inventarios.Atualizar(ctx, inventario); err != nil {
		return nil, apierror.Internal(err)
	}
	return inventario, nil
}

// EncerrarContagem envia a campanha para revisão de divergências
func (s *Service) EncerrarContagem(ctx context.Context, id string) (*model.Inventario, error) {
	inventario, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inventario.Status != model.InventarioEmAndamento {
		return nil, apierror.BusinessRule("só inventários em andamento podem encerrar a contagem", nil)
	}

	inventario.Status = model.InventarioEmRevisao
	if err := s.inventarios.Atualizar(ctx, inventario); err != nil {
		return nil, apierror.Internal(err)
	}
	return inventario, nil
}

// Concluir encerra a campanha
func (s *Service) Concluir(ctx context.Context, id string) (*model.Inventario, error) {
	inventario, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inventario.Status != model.InventarioEmAndamento && inventario.Status != model.InventarioEmRevisao {
		return nil, apierror.BusinessRule("inventário não está em condição de ser concluído", nil)
	}

	agora := time.Now()
	inventario.Status = model.InventarioConcluido
	inventario.DataFim = &agora

	if err := s.inventarios.Atualizar(ctx, inventario); err != nil {
		return nil, apierror.Internal(err)
	}

	s.logger.Info("inventário concluído", zap.String("id", id))
	return inventario, nil
}

// Cancelar aborta a campanha
func (s *Service) Cancelar(ctx context.Context, id string) (*model.Inventario, error) {
	inventario, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inventario.Status.Finalizado() {
		return nil, apierror.BusinessRule("inventário já finalizado", nil)
	}

	inventario.Status = model.InventarioCancelado
	if err := s.inventarios.Atualizar(ctx, inventario); err != nil {
		return nil, apierror.Internal(err)
	}
	return inventario, nil
}

// Excluir remove uma campanha que ainda não saiu do planejamento
func (s *Service) Excluir(ctx context.Context, id string) error {
	inventario, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}

	if inventario.Status != model.InventarioPlanejado && inventario.Status != model.InventarioCancelado {
		return apierror.BusinessRule("só inventários planejados ou cancelados podem ser excluídos", nil)
	}

	if err := s.inventarios.Excluir(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.NotFound("inventário", err)
		}
		return apierror.Internal(err)
	}
	return nil
}

// AdicionarBem inclui um bem na campanha ainda não finalizada
func (s *Service) AdicionarBem(ctx context.Context, inventarioID, bemID string) error {
	inventario, err := s.BuscarPorID(ctx, inventarioID)
	if err != nil {
		return err
	}
	if inventario.Status.Finalizado() {
		return apierror.BusinessRule("inventário finalizado não aceita novos bens", nil)
	}

	if _, err := s.bens.BuscarPorID(ctx, bemID); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.BemNaoEncontrado(bemID)
		}
		return apierror.Internal(err)
	}

	if err := s.inventarios.AdicionarBem(ctx, inventarioID, bemID); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return apierror.BusinessRule("bem já incluído no inventário", nil)
		}
		return apierror.Internal(err)
	}
	return nil
}

// RemoverBem exclui um bem da campanha ainda não finalizada
func (s *Service) RemoverBem(ctx context.Context, inventarioID, bemID string) error {
	inventario, err := s.BuscarPorID(ctx, inventarioID)
	if err != nil {
		return err
	}
	if inventario.Status.Finalizado() {
		return apierror.BusinessRule("inventário finalizado não pode ser alterado", nil)
	}

	if err := s.inventarios.RemoverBem(ctx, inventarioID, bemID); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.NotFound("bem no inventário", err)
		}
		return apierror.Internal(err)
	}
	return nil
}

// ListarBens retorna a página de vínculos da campanha
func (s *Service) ListarBens(ctx context.Context, inventarioID string, pagina pagination.Pagina) (*pagination.Resultado[*model.InventarioBem], error) {
	if _, err := s.BuscarPorID(ctx, inventarioID); err != nil {
		return nil, err
	}

	vinculos, total, err := s.inventarios.ListarBens(ctx, inventarioID, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(vinculos, total, pagina), nil
}

// MarcarVerificado registra o resultado da conferência de um bem. Só vale
// durante a contagem.
func (s *Service) MarcarVerificado(ctx context.Context, inventarioID, bemID string, verificado bool) error {
	inventario, err := s.BuscarPorID(ctx, inventarioID)
	if err != nil {
		return err
	}
	if inventario.Status != model.InventarioEmAndamento {
		return apierror.BusinessRule("verificação só é registrada com o inventário em andamento", nil)
	}

	if err := s.inventarios.MarcarVerificado(ctx, inventarioID, bemID, verificado); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.NotFound("bem no inventário", err)
		}
		return apierror.Internal(err)
	}
	return nil
}
