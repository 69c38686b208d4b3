package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/web-traffic-api/infrastructure/database/postgres"
	"github.com/vfg2006/web-traffic-api/infrastructure/integrator/websource"
	"github.com/vfg2006/web-traffic-api/infrastructure/integrator/websource/browserclient"
	"github.com/vfg2006/web-traffic-api/infrastructure/repository"
	"github.com/vfg2006/web-traffic-api/internal/api"
	"github.com/vfg2006/web-traffic-api/internal/config"
	"github.com/vfg2006/web-traffic-api/internal/scheduler"
	"github.com/vfg2006/web-traffic-api/internal/usecases/authenticating"
	"github.com/vfg2006/web-traffic-api/internal/usecases/checking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewTrafficSnapshotRepository(pgConn)
	scrapeErrorRepo := repository.NewScrapeErrorRepository(pgConn)
	metadataRepo := repository.NewMetadataRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	browserClient := browserclient.NewClient(&cfg.Scraper)
	webSourceIntegrator := websource.New(cfg, browserClient)

	// Inicializa o serviço de verificação com suporte a cache
	checkingService := checking.NewService(
		cfg,
		webSourceIntegrator,
		snapshotRepo,
		scrapeErrorRepo,
	).WithCache(metadataRepo)

	// Inicializa o agendador de atualização mensal
	monthlyRefreshService := scheduler.NewMonthlyRefreshService(
		checkingService,
		snapshotRepo,
		scrapeErrorRepo,
		metadataRepo,
		cfg,
	)

	if err := monthlyRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização mensal de tráfego")
	} else {
		logrus.Info("Agendador de atualização mensal de tráfego iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		checkingService,
		authenticator,
		monthlyRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados e garante o schema
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao garantir o schema do banco de dados")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
