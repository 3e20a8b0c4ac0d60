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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Cria o perfil Administrador e um usuário admin vinculado a ele. Reexecutar
// com um username já existente é um erro, não uma atualização.
func main() {
	var (
		username string
		email    string
		nome     string
		senha    string
	)

	flag.StringVar(&username, "username", "admin", "Username do administrador")
	flag.StringVar(&email, "email", "admin@example.com", "E-mail do administrador")
	flag.StringVar(&nome, "nome", "Administrador", "Nome do administrador")
	flag.StringVar(&senha, "senha", "", "Senha do administrador (obrigatória)")
	flag.Parse()

	if senha == "" {
		fmt.Println("Erro: a flag -senha é obrigatória")
		os.Exit(1)
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
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

	var existente model.Usuario
	err = db.DB().WithContext(ctx).Where("username = ?", username).First(&existente).Error
	if err == nil {
		logger.Fatal("usuário já existe", zap.String("username", username))
	}
	if err != gorm.ErrRecordNotFound {
		logger.Fatal("falha ao consultar usuário", zap.Error(err))
	}

	perfil, err := perfilAdministrador(ctx, db.DB(), cfg.Auth.NivelAcessoAdmin)
	if err != nil {
		logger.Fatal("falha ao garantir perfil Administrador", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("falha ao gerar hash da senha", zap.Error(err))
	}

	usuario := &model.Usuario{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Nome:      nome,
		SenhaHash: string(hash),
		Ativo:     true,
	}

	err = db.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(usuario).Error; err != nil {
			return err
		}
		vinculo := &model.UsuarioPerfil{UsuarioID: usuario.ID, PerfilID: perfil.ID}
		return tx.Create(vinculo).Error
	})
	if err != nil {
		logger.Fatal("falha ao criar administrador", zap.Error(err))
	}

	logger.Info("administrador criado",
		zap.String("id", usuario.ID),
		zap.String("username", username),
		zap.Int("nivel_acesso", perfil.NivelAcesso))
	fmt.Printf("Administrador %s criado com sucesso.\n", username)
}

// perfilAdministrador busca ou cria o perfil com o nível administrativo
func perfilAdministrador(ctx context.Context, db *gorm.DB, nivel int) (*model.Perfil, error) {
	var perfil model.Perfil
	err := db.WithContext(ctx).Where("nome = ?", "Administrador").First(&perfil).Error
	if err == nil {
		return &perfil, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	perfil = model.Perfil{
		ID:          uuid.New().String(),
		Nome:        "Administrador",
		NivelAcesso: nivel,
		Ativo:       true,
		Permissoes:  "*",
	}
	if err := db.WithContext(ctx).Create(&perfil).Error; err != nil {
		return nil, err
	}
	return &perfil, nil
}
