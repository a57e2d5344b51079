package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/Supply-api/docs" // registra el swagger embebido
	"github.com/jhoicas/Supply-api/internal/application/document"
	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
	"github.com/jhoicas/Supply-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Supply-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Supply-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Supply-api/internal/interfaces/http"
	"github.com/jhoicas/Supply-api/pkg/config"
	"github.com/jhoicas/Supply-api/pkg/logger"
)

// repositories agrupa los puertos de persistencia según el backend elegido.
type repositories struct {
	suppliers repository.SupplierRepository
	skus      repository.SkuRepository
	pos       repository.PurchaseOrderRepository
	inbounds  repository.InboundRepository
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer repos.close()

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		DocsPath:     cfg.Docs.FilePath,
	}, log, httpRouter.RouterDeps{
		SupplierUC:       usecase.NewSupplierUseCase(repos.suppliers),
		SkuUC:            usecase.NewSkuUseCase(repos.skus, repos.suppliers),
		PurchaseOrderUC:  usecase.NewPurchaseOrderUseCase(repos.pos, repos.skus),
		InboundUC:        usecase.NewInboundUseCase(repos.inbounds, repos.pos),
		PurchaseOrderPDF: document.NewPurchaseOrderPDFUseCase(repos.pos, repos.skus, pdfGenerator),
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	if cfg.App.Store == config.StoreMemory {
		log.Warn().Msg("STORE=memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &repositories{
			suppliers: store.Suppliers(),
			skus:      store.Skus(),
			pos:       store.PurchaseOrders(),
			inbounds:  store.Inbounds(),
			close:     func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		mg, err := postgres.NewMigrator(cfg.DB.ConnectionString())
		if err != nil {
			return nil, err
		}
		upErr := mg.Up()
		if err := mg.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
		if upErr != nil {
			return nil, upErr
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("max_conns", cfg.DB.MaxConns).Msg("pool PostgreSQL listo")
	return &repositories{
		suppliers: postgres.NewSupplierRepository(pool),
		skus:      postgres.NewSkuRepository(pool),
		pos:       postgres.NewPurchaseOrderRepository(pool),
		inbounds:  postgres.NewInboundRepository(pool),
		close:     pool.Close,
	}, nil
}
