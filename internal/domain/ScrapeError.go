package domain

import "time"

// ScrapeErrorEntry registra uma falha de extração para um domínio em um dia.
// Única por (domain, day); retry_count é incrementado a cada nova falha no
// mesmo dia, o que permite ao agendador evitar domínios estruturalmente quebrados.
type ScrapeErrorEntry struct {
	ID          int64     `json:"id"`
	Domain      string    `json:"domain"`
	Message     string    `json:"message"`
	AttemptedAt time.Time `json:"attempted_at"`
	RetryCount  int       `json:"retry_count"`
}
