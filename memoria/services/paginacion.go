package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
)

// AccessPage simula el acceso de un proceso a una de sus páginas bajo el
// algoritmo de reemplazo indicado ("FIFO" o "LRU"). Devuelve true si fue page
// hit y false si fue page fault. Toda la validación ocurre antes de mutar
// estado: un error nunca deja una mutación parcial.
func (m *MemoryManager) AccessPage(pid int, page int, algorithm string) (bool, error) {
	if algorithm != models.AlgorithmFIFO && algorithm != models.AlgorithmLRU {
		return false, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
	}

	process, exists := m.processes[pid]
	if !exists {
		return false, fmt.Errorf("%w: pid %d", ErrProcessNotFound, pid)
	}

	if page < 0 || page >= process.Size {
		return false, fmt.Errorf("%w: página %d de P%d (el proceso tiene %d)", ErrInvalidPage, page, pid, process.Size)
	}

	key := models.PageKey{PID: pid, Page: page}

	// Page hit: la página ya está residente
	if entry, resident := m.pageTable[key]; resident {
		now := m.tick()
		entry.LastUsed = now

		m.stats.PageHits++
		metrics := m.metricsFor(pid)
		metrics.Accesses++
		metrics.PageHits++

		m.events.Record(fmt.Sprintf("Page hit: P%d página %d", pid, page))
		slog.Debug("Page hit", "pid", pid, "pagina", page, "marco", entry.Frame)
		return true, nil
	}

	// Page fault: se resuelve el marco destino antes de tocar contadores,
	// así un fallo en la selección de víctima no deja estado parcial.
	frame := m.findFreeFrame()
	victim := -1
	if frame == -1 {
		v, err := m.selectVictim(algorithm)
		if err != nil {
			return false, err
		}
		victim = v
		frame = v
	}

	now := m.tick()

	m.stats.PageFaults++
	metrics := m.metricsFor(pid)
	metrics.Accesses++
	metrics.PageFaults++

	if victim != -1 {
		m.evict(victim)
	}

	m.frames[frame] = &models.Frame{PID: pid, Page: page, Color: process.Color}
	m.pageTable[key] = &models.PageEntry{Frame: frame, AllocatedAt: now, LastUsed: now}

	if algorithm == models.AlgorithmFIFO {
		m.admissionQueue.Add(frame)
	}

	m.events.Record(fmt.Sprintf("Page fault: P%d página %d asignada al marco %d", pid, page, frame))
	slog.Debug("Page fault", "pid", pid, "pagina", page, "marco", frame, "algoritmo", algorithm)
	return false, nil
}

// findFreeFrame devuelve el índice del primer marco libre, o -1 si no hay.
func (m *MemoryManager) findFreeFrame() int {
	for i, frame := range m.frames {
		if frame == nil {
			return i
		}
	}
	return -1
}

// selectVictim elige el marco a desalojar según el algoritmo de reemplazo.
// Si no hay ninguna página residente para desalojar devuelve ErrNoFramesAvailable,
// un estado que no debería poder alcanzarse mientras se cumplan los invariantes.
func (m *MemoryManager) selectVictim(algorithm string) (int, error) {
	if algorithm == models.AlgorithmFIFO {
		frame, err := m.admissionQueue.Peek()
		if err != nil {
			return -1, fmt.Errorf("%w: la cola de admisión está vacía", ErrNoFramesAvailable)
		}
		return frame, nil
	}
	return m.selectVictimLRU()
}

// selectVictimLRU busca la entrada residente con menor último uso. Ante
// igualdad gana el menor índice de marco: con el reloj lógico el empate no
// puede darse, pero el criterio queda determinístico de todas formas.
func (m *MemoryManager) selectVictimLRU() (int, error) {
	victim := -1
	var oldest int64

	for _, entry := range m.pageTable {
		if victim == -1 || entry.LastUsed < oldest ||
			(entry.LastUsed == oldest && entry.Frame < victim) {
			oldest = entry.LastUsed
			victim = entry.Frame
		}
	}

	if victim == -1 {
		return -1, ErrNoFramesAvailable
	}
	return victim, nil
}

// evict desaloja la página residente en el marco indicado: elimina su entrada
// de la tabla de páginas, la saca de la cola de admisión si estaba y libera el marco.
func (m *MemoryManager) evict(frame int) {
	for key, entry := range m.pageTable {
		if entry.Frame != frame {
			continue
		}

		delete(m.pageTable, key)
		m.admissionQueue.RemoveWhere(func(f int) bool {
			return f == frame
		})
		m.frames[frame] = nil
		m.metricsFor(key.PID).Evictions++

		m.events.Record(fmt.Sprintf("Page fault: se desaloja P%d página %d del marco %d", key.PID, key.Page, frame))
		slog.Debug("Víctima desalojada", "pid", key.PID, "pagina", key.Page, "marco", frame)
		return
	}
}
