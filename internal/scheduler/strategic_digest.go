// Package scheduler contém os serviços agendados que rodam sobre o motor de análise
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-insights-api/internal/config"
	"github.com/vfg2006/retail-insights-api/internal/domain"
	"github.com/vfg2006/retail-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/retail-insights-api/pkg/log"
	"github.com/vfg2006/retail-insights-api/pkg/utils"
)

// BranchAnalyzer é o subconjunto do dashboard usado pelo resumo estratégico
type BranchAnalyzer interface {
	GetBranchPerformance(ctx context.Context, filter domain.Filter) ([]domain.BranchPerformance, error)
}

type StrategicDigestConfig struct {
	CronSchedule string
	Enabled      bool
}

// DigestReport é o resultado de uma execução do resumo estratégico
type DigestReport struct {
	RunID          string                     `json:"run_id"`
	BranchCount    int                        `json:"branch_count"`
	DangerCount    int                        `json:"danger_count"`
	WarningCount   int                        `json:"warning_count"`
	DangerBranches []domain.BranchPerformance `json:"danger_branches"`
}

// StrategicDigestService avalia periodicamente o desempenho das filiais e registra
// nos logs as filiais na faixa de perigo. Não persiste nada.
type StrategicDigestService struct {
	scheduler *gocron.Scheduler
	analyzer  BranchAnalyzer
	config    StrategicDigestConfig

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *DigestReport
	lastError           string
}

func NewStrategicDigestService(analyzer BranchAnalyzer, cfg *config.Config) *StrategicDigestService {
	digestConfig := StrategicDigestConfig{
		CronSchedule: cfg.StrategicDigest.CronSchedule,
		Enabled:      cfg.StrategicDigest.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"enabled":       digestConfig.Enabled,
	}).Info("Configuração do agendador do resumo estratégico carregada")

	return &StrategicDigestService{
		scheduler: gocron.NewScheduler(time.Local),
		analyzer:  analyzer,
		config:    digestConfig,
	}
}

// Start inicia o agendador
func (s *StrategicDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Resumo estratégico desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo estratégico")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunDigest(ctx); err != nil {
			logrus.WithError(err).Error("Erro na execução do resumo estratégico")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo estratégico: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo estratégico")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest executa o resumo estratégico. Retorna nil sem erro quando já existe
// uma execução em andamento.
func (s *StrategicDigestService) RunDigest(ctx context.Context) (*DigestReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo estratégico já em andamento, ignorando")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	report, err := s.buildReport(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastReport = report
	}
	s.syncMutex.Unlock()

	return report, err
}

func (s *StrategicDigestService) buildReport(ctx context.Context) (*DigestReport, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da execução: %w", err)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{"job": "strategic_digest", "run_id": runID})
	logger.Info("Iniciando resumo estratégico das filiais")

	branches, err := s.analyzer.GetBranchPerformance(ctx, domain.Filter{})
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular desempenho das filiais: %w", err)
	}

	danger := ranking.Filter(branches, func(b domain.BranchPerformance) bool {
		return b.Status == domain.StatusDanger
	})
	warning := ranking.Filter(branches, func(b domain.BranchPerformance) bool {
		return b.Status == domain.StatusWarning
	})

	for _, branch := range danger {
		logger.WithFields(log.Fields{
			"branch":     branch.BranchName,
			"city":       branch.CityName,
			"efficiency": branch.Efficiency,
		}).Warnf("Filial %s (%s) com eficiência de %d%%: %s", branch.BranchName, branch.CityName, branch.Efficiency, branch.Recommendation)
	}

	report := &DigestReport{
		RunID:          runID,
		BranchCount:    len(branches),
		DangerCount:    len(danger),
		WarningCount:   len(warning),
		DangerBranches: danger,
	}

	logger.Infof("Resumo estratégico concluído: %d filiais, %d em perigo, %d em atenção", report.BranchCount, report.DangerCount, report.WarningCount)

	return report, nil
}

// TriggerManualSync inicia manualmente o resumo estratégico. Retorna false se já
// existe uma execução em andamento.
func (s *StrategicDigestService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo estratégico já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando resumo estratégico manual")
	go func() {
		if _, err := s.RunDigest(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do resumo estratégico")
		}
	}()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *StrategicDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report":            s.lastReport,
		"last_error":             s.lastError,
	}
}
