package notify

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/velatec/activos-api/pkg/config"
	"github.com/velatec/activos-api/pkg/logger"
)

// Worker programa el barrido periódico del outbox con cron.
type Worker struct {
	uc   *UseCase
	cfg  config.OutboxConfig
	log  *logger.Logger
	cron *cron.Cron
}

// NewWorker construye el worker del outbox.
func NewWorker(uc *UseCase, cfg config.OutboxConfig, log *logger.Logger) *Worker {
	return &Worker{uc: uc, cfg: cfg, log: log, cron: cron.New()}
}

// Start registra el job y arranca el scheduler. El contexto cancela los barridos
// en curso cuando la aplicación se apaga.
func (w *Worker) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.cfg.CronSpec, func() {
		w.uc.ProcesarPendientes(ctx, w.cfg.MaxIntentos, w.cfg.BatchSize)
	})
	if err != nil {
		return err
	}
	w.cron.Start()
	w.log.Info().Str("cron", w.cfg.CronSpec).Msg("worker de outbox iniciado")
	return nil
}

// Stop detiene el scheduler y espera a que termine el barrido en curso.
func (w *Worker) Stop() {
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
}
