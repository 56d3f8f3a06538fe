package services

import (
	"errors"
	"fmt"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
	"github.com/sisoputnfrba/simulador-paginacion/utils/list"
)

// Errores que pueden devolver las operaciones del administrador de memoria.
// Se comparan con errors.Is, los handlers los traducen al contrato JSON.
var (
	ErrProcessNotFound   = errors.New("proceso no encontrado")
	ErrInvalidPage       = errors.New("número de página fuera de rango")
	ErrInvalidPageCount  = errors.New("la cantidad de páginas debe ser positiva")
	ErrUnknownAlgorithm  = errors.New("algoritmo de reemplazo desconocido")
	ErrNoFramesAvailable = errors.New("no hay marcos disponibles")
	ErrNoProcesses       = errors.New("no hay procesos en ejecución")
)

// MemoryManager administra el pool de marcos físicos, los procesos y la tabla
// de páginas del simulador. Es una estructura de propiedad explícita: no usa
// estado global y no es segura para uso concurrente, la capa de transporte es
// la que serializa las operaciones (ver handlers.Simulator).
type MemoryManager struct {
	frames    []*models.Frame
	pageTable map[models.PageKey]*models.PageEntry
	processes map[int]*models.Process
	metrics   map[int]*models.ProcessMetrics

	// Cola de admisión de marcos, solo se mantiene bajo FIFO.
	admissionQueue *list.ArrayList[int]

	processCounter int
	clock          int64 // reloj lógico, avanza en cada acceso
	stats          models.Stats
	events         *EventLog
}

// NewMemoryManager crea un administrador vacío con la cantidad de marcos
// indicada y un registro de eventos de la capacidad dada.
func NewMemoryManager(frameCount int, eventLogCapacity int) *MemoryManager {
	return &MemoryManager{
		frames:         make([]*models.Frame, frameCount),
		pageTable:      make(map[models.PageKey]*models.PageEntry),
		processes:      make(map[int]*models.Process),
		metrics:        make(map[int]*models.ProcessMetrics),
		admissionQueue: &list.ArrayList[int]{},
		processCounter: 1,
		events:         NewEventLog(eventLogCapacity),
	}
}

// Reset descarta todos los procesos, marcos, tablas, estadísticas y eventos,
// dejando el administrador como recién construido con los mismos parámetros.
func (m *MemoryManager) Reset() {
	*m = *NewMemoryManager(len(m.frames), m.events.Capacity())
}

// tick avanza el reloj lógico y devuelve el nuevo valor.
func (m *MemoryManager) tick() int64 {
	m.clock++
	return m.clock
}

// metricsFor devuelve las métricas del proceso, creándolas si todavía no existen.
func (m *MemoryManager) metricsFor(pid int) *models.ProcessMetrics {
	if _, exists := m.metrics[pid]; !exists {
		m.metrics[pid] = &models.ProcessMetrics{}
	}
	return m.metrics[pid]
}

// processColor deriva el color de presentación del PID, siempre el mismo para un mismo proceso.
func processColor(pid int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", (pid*137)%360)
}
