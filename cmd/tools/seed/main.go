package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/adapter/database"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/pkg/config"
	"github.com/jairomfjr/patrimonio-sub001/pkg/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Popula o banco com um acervo de demonstração. Recusa a execução quando já
// existem categorias cadastradas, para não misturar dados reais com os de
// demonstração.
func main() {
	var force bool
	flag.BoolVar(&force, "force", false, "Semear mesmo com categorias já cadastradas")
	flag.Parse()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		fmt.Printf("falha ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Printf("falha ao inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := database.NewDatabase(ctx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
		SlowThreshold:   cfg.Database.SlowThreshold,
	}, logger)
	if err != nil {
		logger.Fatal("falha ao conectar ao banco de dados", zap.Error(err))
	}
	defer db.Close()

	var total int64
	if err := db.DB().WithContext(ctx).Model(&model.Categoria{}).Count(&total).Error; err != nil {
		logger.Fatal("falha ao verificar categorias existentes", zap.Error(err))
	}
	if total > 0 && !force {
		fmt.Printf("Já existem %d categorias cadastradas. Use -force para semear mesmo assim.\n", total)
		os.Exit(1)
	}

	if err := semear(ctx, db.DB()); err != nil {
		logger.Fatal("falha ao semear banco de dados", zap.Error(err))
	}

	logger.Info("dados de demonstração criados")
	fmt.Println("Dados de demonstração criados com sucesso.")
}

func semear(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categorias := []model.Categoria{
			{ID: uuid.New().String(), Nome: "Informática", Descricao: "Equipamentos de informática e rede"},
			{ID: uuid.New().String(), Nome: "Mobiliário", Descricao: "Móveis e utensílios de escritório"},
			{ID: uuid.New().String(), Nome: "Veículos", Descricao: "Frota institucional"},
		}
		if err := tx.Create(&categorias).Error; err != nil {
			return err
		}

		localizacoes := []model.Localizacao{
			{ID: uuid.New().String(), Nome: "Sede - Almoxarifado", Endereco: "Av. Central, 100", Responsavel: "Carlos Pereira"},
			{ID: uuid.New().String(), Nome: "Sede - TI", Endereco: "Av. Central, 100, 2º andar", Responsavel: "Ana Souza"},
			{ID: uuid.New().String(), Nome: "Filial Norte", Endereco: "Rua das Palmeiras, 45", Responsavel: "João Lima"},
		}
		if err := tx.Create(&localizacoes).Error; err != nil {
			return err
		}

		bens := []model.Bem{
			{
				ID:                uuid.New().String(),
				Nome:              "Notebook Dell Latitude 5440",
				NumeroSerie:       "NB-2024-0001",
				Descricao:         "Notebook corporativo, 16 GB RAM",
				DataAquisicao:     time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
				ValorAquisicao:    7200,
				Status:            model.StatusAtivo,
				EstadoConservacao: model.ConservacaoExcelente,
				Ativo:             true,
				CategoriaID:       categorias[0].ID,
				LocalizacaoID:     localizacoes[0].ID,
			},
			{
				ID:                uuid.New().String(),
				Nome:              "Switch 48 portas",
				NumeroSerie:       "SW-2023-0107",
				DataAquisicao:     time.Date(2023, 8, 2, 0, 0, 0, 0, time.UTC),
				ValorAquisicao:    4300,
				Status:            model.StatusAtivo,
				EstadoConservacao: model.ConservacaoBom,
				Ativo:             true,
				CategoriaID:       categorias[0].ID,
				LocalizacaoID:     localizacoes[0].ID,
			},
			{
				ID:                uuid.New().String(),
				Nome:              "Mesa de reunião 8 lugares",
				NumeroSerie:       "MB-2019-0342",
				DataAquisicao:     time.Date(2019, 5, 20, 0, 0, 0, 0, time.UTC),
				ValorAquisicao:    2100,
				Status:            model.StatusAtivo,
				EstadoConservacao: model.ConservacaoRegular,
				Ativo:             true,
				CategoriaID:       categorias[1].ID,
				LocalizacaoID:     localizacoes[0].ID,
			},
			{
				ID:                uuid.New().String(),
				Nome:              "Fiat Strada",
				NumeroSerie:       "VE-2021-0003",
				Descricao:         "Veículo utilitário para logística",
				DataAquisicao:     time.Date(2021, 11, 9, 0, 0, 0, 0, time.UTC),
				ValorAquisicao:    86000,
				Status:            model.StatusEmManutencao,
				EstadoConservacao: model.ConservacaoRuim,
				Ativo:             true,
				CategoriaID:       categorias[2].ID,
				LocalizacaoID:     localizacoes[0].ID,
			},
		}
		if err := tx.Create(&bens).Error; err != nil {
			return err
		}

		// todo bem entra pelo almoxarifado; as transferências abaixo levam
		// cada um à sua localização atual
		almoxarifado := localizacoes[0].ID
		movimentacoes := make([]model.Movimentacao, 0, len(bens)+3)
		for i := range bens {
			movimentacoes = append(movimentacoes, model.Movimentacao{
				ID:          uuid.New().String(),
				BemID:       bens[i].ID,
				Tipo:        model.MovimentacaoEntrada,
				DestinoID:   almoxarifado,
				Responsavel: localizacoes[0].Responsavel,
				Observacoes: "Incorporação ao acervo",
				DataHora:    bens[i].DataAquisicao,
			})
		}

		transferencias := []struct {
			indice  int
			destino model.Localizacao
		}{
			{0, localizacoes[1]},
			{1, localizacoes[1]},
			{3, localizacoes[2]},
		}
		for _, transferencia := range transferencias {
			origem := almoxarifado
			bem := &bens[transferencia.indice]
			movimentacoes = append(movimentacoes, model.Movimentacao{
				ID:          uuid.New().String(),
				BemID:       bem.ID,
				Tipo:        model.MovimentacaoTransferencia,
				OrigemID:    &origem,
				DestinoID:   transferencia.destino.ID,
				Responsavel: transferencia.destino.Responsavel,
				DataHora:    bem.DataAquisicao.AddDate(0, 0, 7),
			})
			bem.LocalizacaoID = transferencia.destino.ID
			if err := tx.Model(&model.Bem{}).Where("id = ?", bem.ID).
				Update("localizacao_id", transferencia.destino.ID).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&movimentacoes).Error; err != nil {
			return err
		}

		inicio := time.Now().AddDate(0, 0, -3)
		inventario := model.Inventario{
			ID:          uuid.New().String(),
			Nome:        "Inventário Geral de Demonstração",
			Status:      model.InventarioEmAndamento,
			DataInicio:  &inicio,
			Responsavel: localizacoes[0].Responsavel,
			Observacoes: "Campanha de contagem sobre o acervo de demonstração",
		}
		if err := tx.Create(&inventario).Error; err != nil {
			return err
		}
		vinculos := make([]model.InventarioBem, 0, len(bens))
		for i := range bens {
			vinculos = append(vinculos, model.InventarioBem{
				InventarioID: inventario.ID,
				BemID:        bens[i].ID,
				Verificado:   i == 0,
			})
		}
		if err := tx.Create(&vinculos).Error; err != nil {
			return err
		}

		configuracoes := []model.Configuracao{
			{ID: uuid.New().String(), Chave: "inventario.dias_alerta", Valor: "30", Tipo: "int", Editavel: true, Descricao: "Dias de antecedência para alertar inventários planejados"},
			{ID: uuid.New().String(), Chave: "manutencao.custo_alerta", Valor: "5000", Tipo: "float", Editavel: true, Descricao: "Custo acumulado de manutenção que dispara alerta"},
			{ID: uuid.New().String(), Chave: "sistema.nome_orgao", Valor: "Prefeitura Municipal", Tipo: "string", Editavel: true, Descricao: "Nome do órgão exibido em relatórios"},
		}
		return tx.Create(&configuracoes).Error
	})
}
