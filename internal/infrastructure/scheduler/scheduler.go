package scheduler

import (
	"github.com/robfig/cron/v3"

	"github.com/rafabene/loja-backend/internal/domain/ports"
)

// Job é uma tarefa periódica de manutenção
type Job struct {
	Name string
	Spec string // expressão cron, ex.: "@every 5m"
	Run  func()
}

// Scheduler executa tarefas de manutenção em segundo plano
type Scheduler struct {
	cron   *cron.Cron
	logger ports.Logger
}

// New cria um novo scheduler
func New(logger ports.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

// Add registra uma tarefa; panics na tarefa são registrados e não derrubam o processo
func (s *Scheduler) Add(job Job) error {
	_, err := s.cron.AddFunc(job.Spec, func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("scheduled job panicked", "job", job.Name, "panic", r)
			}
		}()
		job.Run()
	})
	return err
}

// Start inicia o agendador
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop aguarda as tarefas em execução e encerra o agendador
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
