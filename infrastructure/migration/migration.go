package migration

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Up aplica todas as migrações pendentes
func Up(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logrus.Info("migration: nenhuma migração pendente")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "erro ao aplicar migrações")
	}

	version, _, _ := m.Version()
	logrus.Infof("migration: banco migrado para a versão %d", version)
	return nil
}

// Down desfaz as últimas steps migrações
func Down(db *sql.DB, steps int) error {
	if steps <= 0 {
		return errors.Errorf("quantidade de passos inválida: %d", steps)
	}

	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	err = m.Steps(-steps)
	if errors.Is(err, migrate.ErrNoChange) {
		logrus.Info("migration: nenhuma migração para desfazer")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "erro ao desfazer migrações")
	}

	version, _, verr := m.Version()
	if errors.Is(verr, migrate.ErrNilVersion) {
		logrus.Info("migration: todas as migrações foram desfeitas")
		return nil
	}
	logrus.Infof("migration: banco voltou para a versão %d", version)
	return nil
}

// Status devolve a versão atual; versão 0 significa nenhuma migração aplicada
func Status(db *sql.DB) (uint, bool, error) {
	m, err := newMigrate(db)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "erro ao ler a versão das migrações")
	}
	return version, dirty, nil
}

// newMigrate não fecha a instância: fechar o driver fecharia também o *sql.DB compartilhado
func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar driver postgres")
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler migrações embutidas")
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar instância de migração")
	}
	return m, nil
}
