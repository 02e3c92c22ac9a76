package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/velatec/activos-api/internal/application/analytics"
	"github.com/velatec/activos-api/internal/application/auth"
	appcustody "github.com/velatec/activos-api/internal/application/custody"
	"github.com/velatec/activos-api/internal/application/notify"
	"github.com/velatec/activos-api/internal/application/reports"
	"github.com/velatec/activos-api/internal/application/usecase"
	inframailer "github.com/velatec/activos-api/internal/infrastructure/mailer"
	infrapdf "github.com/velatec/activos-api/internal/infrastructure/pdf"
	"github.com/velatec/activos-api/internal/infrastructure/postgres"
	"github.com/velatec/activos-api/internal/infrastructure/storage"
	httpRouter "github.com/velatec/activos-api/internal/interfaces/http"
	"github.com/velatec/activos-api/migrations"
	"github.com/velatec/activos-api/pkg/config"
	"github.com/velatec/activos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.Migrate {
		if err := migrations.Up(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones de base de datos")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	colaboradorRepo := postgres.NewColaboradorRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	equipoRepo := postgres.NewEquipoRepository(pool)
	histRepo := postgres.NewHistorialRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	servicioRepo := postgres.NewServicioRepository(pool)
	notifRepo := postgres.NewNotificacionRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fileStore, err := storage.NewLocalStore(cfg.Storage.UploadsDir, cfg.Storage.PublicBase)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local de archivos")
	}
	actaGenerator := infrapdf.NewMarotoActaGenerator()
	smtpMailer := inframailer.NewSMTPMailer(cfg.SMTP)
	notifyUC := notify.NewUseCase(notifRepo, movRepo, smtpMailer, log)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	colaboradorUC := usecase.NewColaboradorUseCase(colaboradorRepo, empresaRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	equipoUC := usecase.NewEquipoUseCase(txRunner, equipoRepo, histRepo, usuarioRepo)
	servicioUC := usecase.NewServicioUseCase(servicioRepo, proveedorRepo, usuarioRepo)
	custodyUC := appcustody.NewUseCase(
		txRunner, equipoRepo, colaboradorRepo, empresaRepo, movRepo,
		actaGenerator, fileStore, notifyUC,
	)
	exportUC := reports.NewExportUseCase(movRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	// Barrido periódico del outbox de correo.
	workerCtx, workerCancel := context.WithCancel(ctx)
	defer workerCancel()
	outboxWorker := notify.NewWorker(notifyUC, cfg.Outbox, log)
	if err := outboxWorker.Start(workerCtx); err != nil {
		log.Fatal().Err(err).Msg("worker de outbox")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20, // actas PDF subidas por multipart
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Actas generadas y firmadas, servidas como estáticos.
	app.Static(cfg.Storage.PublicBase, fileStore.BasePath())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		EmpresaUC:     empresaUC,
		ColaboradorUC: colaboradorUC,
		ProveedorUC:   proveedorUC,
		EquipoUC:      equipoUC,
		ServicioUC:    servicioUC,
		CustodyUC:     custodyUC,
		ExportUC:      exportUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	workerCancel()
	outboxWorker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
