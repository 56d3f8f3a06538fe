package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
)

// checkInvariants verifica las propiedades estructurales del administrador:
// cada marco aparece en a lo sumo una entrada de la tabla, la cantidad de
// marcos ocupados coincide con la cantidad de entradas, toda entrada refiere a
// un proceso vivo y los tiempos de uso nunca preceden a los de asignación.
func checkInvariants(t *testing.T, m *MemoryManager) {
	t.Helper()

	framesSeen := make(map[int]bool)
	for key, entry := range m.pageTable {
		if framesSeen[entry.Frame] {
			t.Errorf("Frame %d appears in more than one page table entry", entry.Frame)
		}
		framesSeen[entry.Frame] = true

		if _, exists := m.processes[key.PID]; !exists {
			t.Errorf("Page table entry for P%d but the process does not exist", key.PID)
		}

		if entry.LastUsed < entry.AllocatedAt {
			t.Errorf("Entry for P%d page %d has LastUsed %d before AllocatedAt %d",
				key.PID, key.Page, entry.LastUsed, entry.AllocatedAt)
		}

		frame := m.frames[entry.Frame]
		if frame == nil || frame.PID != key.PID || frame.Page != key.Page {
			t.Errorf("Frame %d content does not match entry for P%d page %d", entry.Frame, key.PID, key.Page)
		}
	}

	occupied := 0
	for _, frame := range m.frames {
		if frame != nil {
			occupied++
		}
	}
	if occupied != len(m.pageTable) {
		t.Errorf("Expected %d occupied frames, got %d", len(m.pageTable), occupied)
	}
}

// checkQueueMatchesFrames verifica que, corriendo bajo FIFO, la cola de
// admisión contenga exactamente los marcos ocupados.
func checkQueueMatchesFrames(t *testing.T, m *MemoryManager) {
	t.Helper()

	queued := make(map[int]bool)
	for _, frame := range m.admissionQueue.GetAll() {
		if queued[frame] {
			t.Errorf("Frame %d queued more than once", frame)
		}
		queued[frame] = true
	}

	occupied := make(map[int]bool)
	for i, frame := range m.frames {
		if frame != nil {
			occupied[i] = true
		}
	}

	if !reflect.DeepEqual(queued, occupied) {
		t.Errorf("Expected queue set %v to match occupied frames %v", queued, occupied)
	}
}

func TestAccessPage_SecondAccessIsHit(t *testing.T) {
	m := NewMemoryManager(4, 50)
	m.CreateProcess(2)

	hit, err := m.AccessPage(1, 0, models.AlgorithmFIFO)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if hit {
		t.Errorf("Expected fault on first access")
	}

	hit, err = m.AccessPage(1, 0, models.AlgorithmFIFO)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !hit {
		t.Errorf("Expected hit on second access")
	}

	checkInvariants(t, m)
	checkQueueMatchesFrames(t, m)
}

// Escenario completo bajo FIFO con 2 marcos: el hit sobre la página más vieja
// no la protege, la víctima sigue siendo la primera admitida.
func TestAccessPage_FIFO_EvictsOldestDespiteHit(t *testing.T) {
	m := NewMemoryManager(2, 50)
	m.CreateProcess(2) // P1
	m.CreateProcess(1) // P2

	hit, _ := m.AccessPage(1, 0, models.AlgorithmFIFO)
	if hit {
		t.Errorf("Expected fault for P1 page 0")
	}
	hit, _ = m.AccessPage(1, 1, models.AlgorithmFIFO)
	if hit {
		t.Errorf("Expected fault for P1 page 1")
	}
	hit, _ = m.AccessPage(1, 0, models.AlgorithmFIFO)
	if !hit {
		t.Errorf("Expected hit for P1 page 0")
	}

	hit, _ = m.AccessPage(2, 0, models.AlgorithmFIFO)
	if hit {
		t.Errorf("Expected fault for P2 page 0")
	}

	// P2 página 0 debe haber desalojado a P1 página 0 del marco 0
	if m.frames[0] == nil || m.frames[0].PID != 2 || m.frames[0].Page != 0 {
		t.Errorf("Expected frame 0 to hold P2 page 0, got %+v", m.frames[0])
	}
	if m.frames[1] == nil || m.frames[1].PID != 1 || m.frames[1].Page != 1 {
		t.Errorf("Expected frame 1 to hold P1 page 1, got %+v", m.frames[1])
	}
	if _, resident := m.pageTable[models.PageKey{PID: 1, Page: 0}]; resident {
		t.Errorf("Expected P1 page 0 to be evicted")
	}

	if m.stats.PageHits != 1 || m.stats.PageFaults != 3 {
		t.Errorf("Expected stats {hits:1, faults:3}, got {hits:%d, faults:%d}",
			m.stats.PageHits, m.stats.PageFaults)
	}

	checkInvariants(t, m)
	checkQueueMatchesFrames(t, m)
}

// Bajo LRU el hit sí protege: con los 2 marcos llenos, el hit sobre la página
// asignada primero convierte en víctima a la segunda.
func TestAccessPage_LRU_HitProtectsOldest(t *testing.T) {
	m := NewMemoryManager(2, 50)
	m.CreateProcess(2) // P1
	m.CreateProcess(1) // P2

	m.AccessPage(1, 0, models.AlgorithmLRU)
	m.AccessPage(1, 1, models.AlgorithmLRU)

	hit, _ := m.AccessPage(1, 0, models.AlgorithmLRU)
	if !hit {
		t.Fatalf("Expected hit for P1 page 0")
	}

	hit, _ = m.AccessPage(2, 0, models.AlgorithmLRU)
	if hit {
		t.Errorf("Expected fault for P2 page 0")
	}

	if _, resident := m.pageTable[models.PageKey{PID: 1, Page: 0}]; !resident {
		t.Errorf("Expected P1 page 0 to stay resident after its hit")
	}
	if _, resident := m.pageTable[models.PageKey{PID: 1, Page: 1}]; resident {
		t.Errorf("Expected P1 page 1 to be the LRU victim")
	}

	checkInvariants(t, m)
}

func TestAccessPage_ProcessNotFound(t *testing.T) {
	m := NewMemoryManager(4, 50)

	_, err := m.AccessPage(99, 0, models.AlgorithmFIFO)
	if !errors.Is(err, ErrProcessNotFound) {
		t.Errorf("Expected ErrProcessNotFound, got: %v", err)
	}
}

func TestAccessPage_InvalidPage(t *testing.T) {
	m := NewMemoryManager(4, 50)
	m.CreateProcess(2)

	before := m.Snapshot(10)

	_, err := m.AccessPage(1, 5, models.AlgorithmFIFO)
	if !errors.Is(err, ErrInvalidPage) {
		t.Errorf("Expected ErrInvalidPage, got: %v", err)
	}
	_, err = m.AccessPage(1, -1, models.AlgorithmFIFO)
	if !errors.Is(err, ErrInvalidPage) {
		t.Errorf("Expected ErrInvalidPage for negative page, got: %v", err)
	}

	after := m.Snapshot(10)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Expected state to be unchanged after invalid accesses")
	}
}

func TestAccessPage_UnknownAlgorithm(t *testing.T) {
	m := NewMemoryManager(4, 50)
	m.CreateProcess(2)

	_, err := m.AccessPage(1, 0, "CLOCK")
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got: %v", err)
	}
}

// Sin marcos configurados no hay residentes para desalojar: el caso defensivo
// que los invariantes hacen inalcanzable con frameCount > 0.
func TestAccessPage_NoFramesAvailable(t *testing.T) {
	m := NewMemoryManager(0, 50)
	m.CreateProcess(1)

	_, err := m.AccessPage(1, 0, models.AlgorithmFIFO)
	if !errors.Is(err, ErrNoFramesAvailable) {
		t.Errorf("Expected ErrNoFramesAvailable under FIFO, got: %v", err)
	}

	_, err = m.AccessPage(1, 0, models.AlgorithmLRU)
	if !errors.Is(err, ErrNoFramesAvailable) {
		t.Errorf("Expected ErrNoFramesAvailable under LRU, got: %v", err)
	}
}

// Una corrida larga mezclando procesos mantiene los invariantes después de cada operación.
func TestAccessPage_InvariantsHoldAcrossRun(t *testing.T) {
	m := NewMemoryManager(3, 50)
	m.CreateProcess(4) // P1
	m.CreateProcess(3) // P2

	accesses := []struct {
		pid  int
		page int
	}{
		{1, 0}, {1, 1}, {1, 2}, {1, 3}, {2, 0}, {1, 0}, {2, 1}, {2, 2}, {1, 3}, {2, 0},
	}

	for _, access := range accesses {
		if _, err := m.AccessPage(access.pid, access.page, models.AlgorithmFIFO); err != nil {
			t.Fatalf("Unexpected error accessing P%d page %d: %v", access.pid, access.page, err)
		}
		checkInvariants(t, m)
		checkQueueMatchesFrames(t, m)
	}

	if m.stats.PageHits+m.stats.PageFaults != len(accesses) {
		t.Errorf("Expected %d accesses accounted, got %d",
			len(accesses), m.stats.PageHits+m.stats.PageFaults)
	}
}
