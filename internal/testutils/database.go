package testutils

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB abre um banco SQLite em memória com o esquema completo
// aplicado. Cada chamada cria um banco isolado.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "Failed to open in-memory database")

	err = db.AutoMigrate(
		&model.Categoria{},
		&model.Localizacao{},
		&model.Bem{},
		&model.Movimentacao{},
		&model.Manutencao{},
		&model.Baixa{},
		&model.Inventario{},
		&model.InventarioBem{},
		&model.Usuario{},
		&model.Perfil{},
		&model.UsuarioPerfil{},
		&model.Notificacao{},
		&model.Configuracao{},
		&model.RegistroAuditoria{},
	)
	require.NoError(t, err, "Failed to migrate test database")

	return db
}
