package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"net/http"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
	"github.com/sisoputnfrba/simulador-paginacion/utils/web/server"
)

// CreateProcessHandler da de alta un proceso nuevo. El body {"pages": n} es
// opcional: si no viene o viene en 0, la cantidad de páginas se sortea en el
// rango configurado (la política demo, el núcleo acepta cualquier cantidad positiva).
func CreateProcessHandler(sim *Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateProcessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			slog.Error("Invalid request", "error", err)
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		pages := req.Pages
		if pages <= 0 {
			pages = randomPageCount(sim.config)
		}

		sim.mu.Lock()
		process, err := sim.manager.CreateProcess(pages)
		sim.mu.Unlock()

		if err != nil {
			sendError(w, err)
			return
		}

		server.SendJsonResponse(w, models.CreateProcessResponse{Success: true, Process: process})
	}
}

// EndProcessHandler finaliza el proceso indicado y libera todos sus marcos.
func EndProcessHandler(sim *Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RemoveProcessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Invalid request", "error", err)
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		sim.mu.Lock()
		err := sim.manager.RemoveProcess(req.PID)
		sim.mu.Unlock()

		if err != nil {
			sendError(w, err)
			return
		}

		server.SendJsonResponse(w, models.BasicResponse{Success: true})
	}
}

// randomPageCount sortea la cantidad de páginas dentro del rango del config.
func randomPageCount(config *models.Config) int {
	min := config.ProcessMinPages
	max := config.ProcessMaxPages
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	return min + rand.Intn(max-min+1)
}
