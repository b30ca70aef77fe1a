package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ipay-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ipay-report-api/infrastructure/migration"
	"github.com/vfg2006/ipay-report-api/internal/config"
	"github.com/vfg2006/ipay-report-api/pkg/log"
)

const usage = "uso: migrate up | down [passos] | status"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel, cfg.App.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	switch os.Args[1] {
	case "up":
		err = migration.Up(conn.DB)
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil {
				logrus.Fatalf("Quantidade de passos inválida: %s", os.Args[2])
			}
		}
		err = migration.Down(conn.DB, steps)
	case "status":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = migration.Status(conn.DB)
		if err == nil {
			logrus.WithField("dirty", dirty).Infof("Versão atual das migrações: %d", version)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migração")
	}
}
