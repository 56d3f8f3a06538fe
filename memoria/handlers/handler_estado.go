package handlers

import (
	"net/http"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
	"github.com/sisoputnfrba/simulador-paginacion/utils/web/server"
)

// StateHandler devuelve la foto completa del simulador: marcos, procesos,
// estadísticas, métricas y los últimos eventos registrados.
func StateHandler(sim *Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		sim.mu.Lock()
		state := sim.manager.Snapshot(sim.config.SnapshotLogEntries)
		sim.mu.Unlock()

		server.SendJsonResponse(w, state)
	}
}

// ResetHandler reinicia el simulador al estado vacío con la misma cantidad de marcos.
func ResetHandler(sim *Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		sim.mu.Lock()
		sim.manager.Reset()
		sim.mu.Unlock()

		server.SendJsonResponse(w, models.BasicResponse{Success: true})
	}
}
