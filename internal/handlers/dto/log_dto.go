package dto

import (
	"time"

	"github.com/rafabene/loja-backend/internal/services"
)

// ClientLogRequest é um lote de logs do frontend
type ClientLogRequest struct {
	Logs []ClientLogLine `json:"logs" binding:"required,min=1,max=500,dive"`
}

// ClientLogLine é uma linha do lote; timestamp é ISO 8601
type ClientLogLine struct {
	Timestamp string `json:"timestamp"`
	Origin    string `json:"origin" binding:"max=100"`
	Message   string `json:"message" binding:"required,max=2000"`
}

// ToEntries converte o lote; timestamps ilegíveis ficam zerados
func (r ClientLogRequest) ToEntries() []services.ClientLogEntry {
	entries := make([]services.ClientLogEntry, len(r.Logs))
	for i, line := range r.Logs {
		ts, _ := time.Parse(time.RFC3339Nano, line.Timestamp)
		entries[i] = services.ClientLogEntry{
			Timestamp: ts,
			Origin:    line.Origin,
			Message:   line.Message,
		}
	}
	return entries
}
