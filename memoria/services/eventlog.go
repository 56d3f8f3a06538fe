package services

import (
	"time"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
)

// EventLog es el registro acotado de eventos del simulador. Se implementa como
// ring buffer de capacidad fija: al llenarse, cada evento nuevo pisa al más
// antiguo, así la cota es un invariante de la estructura y no una limpieza periódica.
type EventLog struct {
	entries []models.LogEntry
	start   int
	count   int
}

func NewEventLog(capacity int) *EventLog {
	if capacity < 1 {
		capacity = 1
	}
	return &EventLog{entries: make([]models.LogEntry, capacity)}
}

// Record agrega un evento con la hora actual.
func (l *EventLog) Record(message string) {
	index := (l.start + l.count) % len(l.entries)
	l.entries[index] = models.LogEntry{Timestamp: time.Now(), Message: message}

	if l.count < len(l.entries) {
		l.count++
	} else {
		l.start = (l.start + 1) % len(l.entries)
	}
}

// Tail devuelve los últimos n eventos en orden cronológico.
// Si n supera la cantidad registrada devuelve todos.
func (l *EventLog) Tail(n int) []models.LogEntry {
	if n > l.count {
		n = l.count
	}
	if n < 0 {
		n = 0
	}

	result := make([]models.LogEntry, 0, n)
	for i := l.count - n; i < l.count; i++ {
		result = append(result, l.entries[(l.start+i)%len(l.entries)])
	}
	return result
}

func (l *EventLog) Len() int {
	return l.count
}

func (l *EventLog) Capacity() int {
	return len(l.entries)
}
