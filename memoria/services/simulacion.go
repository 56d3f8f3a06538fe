package services

import (
	"math/rand"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
)

// SimulateAccess genera un acceso aleatorio: elige un proceso existente al
// azar y una página al azar dentro de su tamaño, y lo ejecuta con AccessPage.
// Si no hay procesos dados de alta devuelve ErrNoProcesses.
func (m *MemoryManager) SimulateAccess(algorithm string) (models.AccessSample, error) {
	if len(m.processes) == 0 {
		return models.AccessSample{}, ErrNoProcesses
	}

	pids := make([]int, 0, len(m.processes))
	for pid := range m.processes {
		pids = append(pids, pid)
	}

	pid := pids[rand.Intn(len(pids))]
	page := rand.Intn(m.processes[pid].Size)

	hit, err := m.AccessPage(pid, page, algorithm)
	if err != nil {
		return models.AccessSample{}, err
	}

	return models.AccessSample{PID: pid, Page: page, Hit: hit}, nil
}
