package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
	"github.com/sisoputnfrba/simulador-paginacion/memoria/services"
	"github.com/sisoputnfrba/simulador-paginacion/utils/web/server"
)

// Simulator empaqueta el administrador de memoria con su lock de exclusión.
// El núcleo no es seguro para uso concurrente: el lock vive acá, en la capa de
// transporte, y serializa todas las operaciones que llegan por HTTP.
type Simulator struct {
	mu      sync.Mutex
	manager *services.MemoryManager
	config  *models.Config
}

func NewSimulator(manager *services.MemoryManager, config *models.Config) *Simulator {
	return &Simulator{
		manager: manager,
		config:  config,
	}
}

// sendError traduce un error del núcleo al contrato JSON de la API. Los errores
// de dominio (proceso inexistente, página inválida, etc.) responden 200 con
// success en false, igual que hacía la API original. ErrNoFramesAvailable
// indica un invariante roto y se responde como error interno.
func sendError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrNoFramesAvailable) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	server.SendJsonResponse(w, models.BasicResponse{Success: false, Error: err.Error()})
}
