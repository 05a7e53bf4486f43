package monitoring

import (
	"context"
	"time"

	"github.com/naveenrjn/prep-hub-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// HealthChecker probes the AI backend. Satisfied by the Ollama client.
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// Maintenance runs the recurring background jobs: an hourly reachability
// probe of the AI backend and a daily prune of old chat transcripts.
type Maintenance struct {
	chatSvc   services.ChatServiceProvider
	health    HealthChecker
	retention time.Duration
	cron      *cron.Cron
}

// NewMaintenance creates the maintenance runner.
func NewMaintenance(chatSvc services.ChatServiceProvider, health HealthChecker, retention time.Duration) *Maintenance {
	return &Maintenance{
		chatSvc:   chatSvc,
		health:    health,
		retention: retention,
		cron:      cron.New(),
	}
}

// Run registers the jobs and starts the scheduler. The health probe also runs
// once immediately so a misconfigured backend shows up in the logs at boot.
func (m *Maintenance) Run() {
	log.Info().Msg("Starting background maintenance scheduler...")

	m.probeAIBackend()

	if _, err := m.cron.AddFunc("@hourly", m.probeAIBackend); err != nil {
		log.Error().Err(err).Msg("Failed to register AI health probe")
	}
	if _, err := m.cron.AddFunc("@daily", m.pruneChatHistory); err != nil {
		log.Error().Err(err).Msg("Failed to register chat history prune")
	}

	m.cron.Start()
}

// Stop halts the scheduler, waiting for any running job to finish.
func (m *Maintenance) Stop() {
	log.Info().Msg("Stopping background maintenance scheduler.")
	<-m.cron.Stop().Done()
}

func (m *Maintenance) probeAIBackend() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if m.health.HealthCheck(ctx) {
		log.Debug().Msg("AI backend reachable")
		return
	}
	log.Warn().Msg("AI backend unreachable; chat will answer with fallback text")
}

func (m *Maintenance) pruneChatHistory() {
	cutoff := time.Now().Add(-m.retention)
	deleted, err := m.chatSvc.PruneOlderThan(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Failed to prune chat history")
		return
	}
	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Pruned old chat history")
	}
}
