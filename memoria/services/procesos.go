package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
)

// CreateProcess da de alta un proceso con la cantidad de páginas indicada.
// El PID es secuencial desde 1 y no se reutiliza mientras viva el administrador.
// No se reserva ningún marco: las páginas se cargan recién en el primer acceso.
func (m *MemoryManager) CreateProcess(pages int) (*models.Process, error) {
	if pages < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageCount, pages)
	}

	pid := m.processCounter
	m.processCounter++

	process := &models.Process{
		PID:   pid,
		Size:  pages,
		Pages: make([]models.Page, pages),
		Color: processColor(pid),
	}
	for i := range process.Pages {
		process.Pages[i] = models.Page{PageNum: i}
	}

	m.processes[pid] = process
	m.metricsFor(pid)

	m.events.Record(fmt.Sprintf("Proceso P%d creado (%d páginas)", pid, pages))
	slog.Info("Proceso creado", "pid", pid, "paginas", pages)

	return process, nil
}

// RemoveProcess finaliza un proceso: libera todos sus marcos, purga la cola de
// admisión, elimina sus entradas de la tabla de páginas, sus métricas y su
// descriptor. Si el PID no existe no se toca ningún estado.
func (m *MemoryManager) RemoveProcess(pid int) error {
	if _, exists := m.processes[pid]; !exists {
		return fmt.Errorf("%w: pid %d", ErrProcessNotFound, pid)
	}

	// Marcos que ocupa el proceso
	owned := make(map[int]bool)
	for i, frame := range m.frames {
		if frame != nil && frame.PID == pid {
			owned[i] = true
			m.frames[i] = nil
		}
	}

	m.admissionQueue.RemoveAllWhere(func(frame int) bool {
		return owned[frame]
	})

	for key := range m.pageTable {
		if key.PID == pid {
			delete(m.pageTable, key)
		}
	}

	delete(m.processes, pid)
	delete(m.metrics, pid)

	m.events.Record(fmt.Sprintf("Proceso P%d finalizado", pid))
	slog.Info("Proceso finalizado", "pid", pid, "marcos_liberados", len(owned))

	return nil
}
