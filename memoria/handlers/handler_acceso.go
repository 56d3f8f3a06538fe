package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
	"github.com/sisoputnfrba/simulador-paginacion/utils/web/server"
)

// AccessPageHandler ejecuta un acceso puntual de un proceso a una página.
// Body: {"pid": n, "page_num": n, "algorithm": "FIFO"|"LRU"}.
func AccessPageHandler(sim *Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AccessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Invalid request", "error", err)
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		sim.mu.Lock()
		hit, err := sim.manager.AccessPage(req.PID, req.Page, normalizeAlgorithm(req.Algorithm))
		sim.mu.Unlock()

		if err != nil {
			sendError(w, err)
			return
		}

		server.SendJsonResponse(w, models.AccessResponse{Success: true, Hit: hit})
	}
}

// SimulateAccessHandler ejecuta un acceso aleatorio sobre algún proceso existente.
// Body: {"algorithm": "FIFO"|"LRU"}.
func SimulateAccessHandler(sim *Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SimulateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Invalid request", "error", err)
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		sim.mu.Lock()
		sample, err := sim.manager.SimulateAccess(normalizeAlgorithm(req.Algorithm))
		sim.mu.Unlock()

		if err != nil {
			sendError(w, err)
			return
		}

		server.SendJsonResponse(w, models.SimulateResponse{
			Success: true,
			Hit:     sample.Hit,
			PID:     sample.PID,
			Page:    sample.Page,
		})
	}
}

// normalizeAlgorithm acepta el algoritmo en cualquier caso y toma FIFO por
// defecto cuando no viene, igual que la API original.
func normalizeAlgorithm(algorithm string) string {
	if algorithm == "" {
		return models.AlgorithmFIFO
	}
	return strings.ToUpper(algorithm)
}
