package services

import (
	"sort"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
)

// Snapshot arma la proyección de solo lectura del estado completo: contenido
// de los marcos, procesos con la residencia de cada página resuelta desde la
// tabla de páginas, estadísticas, métricas por proceso y los últimos lastN
// eventos. No muta ningún estado, todo lo devuelto son copias.
func (m *MemoryManager) Snapshot(lastN int) models.State {
	memory := make([]*models.Frame, len(m.frames))
	for i, frame := range m.frames {
		if frame != nil {
			copia := *frame
			memory[i] = &copia
		}
	}

	// Procesos ordenados por PID para que la salida sea estable
	pids := make([]int, 0, len(m.processes))
	for pid := range m.processes {
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	processes := make([]models.Process, 0, len(pids))
	for _, pid := range pids {
		process := m.processes[pid]

		pages := make([]models.Page, len(process.Pages))
		for i := range process.Pages {
			pages[i] = models.Page{PageNum: i}
			if entry, resident := m.pageTable[models.PageKey{PID: pid, Page: i}]; resident {
				frame := entry.Frame
				pages[i].FrameNum = &frame
			}
		}

		processes = append(processes, models.Process{
			PID:   process.PID,
			Size:  process.Size,
			Pages: pages,
			Color: process.Color,
		})
	}

	metrics := make(map[int]models.ProcessMetrics, len(m.metrics))
	for pid, procMetrics := range m.metrics {
		metrics[pid] = *procMetrics
	}

	return models.State{
		Memory:    memory,
		Processes: processes,
		Stats:     m.stats,
		Metrics:   metrics,
		Logs:      m.events.Tail(lastN),
	}
}
