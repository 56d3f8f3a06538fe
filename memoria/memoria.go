package main

import (
	"fmt"
	"log/slog"
	"net/http"

	memoryHandler "github.com/sisoputnfrba/simulador-paginacion/memoria/handlers"
	"github.com/sisoputnfrba/simulador-paginacion/memoria/models"
	"github.com/sisoputnfrba/simulador-paginacion/memoria/services"
	"github.com/sisoputnfrba/simulador-paginacion/utils/config"
	"github.com/sisoputnfrba/simulador-paginacion/utils/log"
	"github.com/sisoputnfrba/simulador-paginacion/utils/web/handlers"
	"github.com/sisoputnfrba/simulador-paginacion/utils/web/server"
)

const ConfigPath = "memoria/configs/memoria.json"

func main() {
	config.InitConfig(ConfigPath, &models.MemoryConfig)
	applyDefaults(models.MemoryConfig)
	log.InitLogger(models.MemoryConfig.LogPath, models.MemoryConfig.LogLevel)

	manager := services.NewMemoryManager(models.MemoryConfig.FrameCount, models.MemoryConfig.EventLogCapacity)
	sim := memoryHandler.NewSimulator(manager, models.MemoryConfig)

	http.HandleFunc("GET /", handlers.HandshakeHandler("Bienvenido al simulador de paginación"))
	http.HandleFunc("GET /memoria/estado", memoryHandler.StateHandler(sim))
	http.HandleFunc("POST /memoria/proceso", memoryHandler.CreateProcessHandler(sim))
	http.HandleFunc("POST /memoria/proceso/finalizar", memoryHandler.EndProcessHandler(sim))
	http.HandleFunc("POST /memoria/acceso", memoryHandler.AccessPageHandler(sim))
	http.HandleFunc("POST /memoria/simular", memoryHandler.SimulateAccessHandler(sim))
	http.HandleFunc("POST /memoria/reset", memoryHandler.ResetHandler(sim))

	slog.Info("Simulador de memoria listo", "marcos", models.MemoryConfig.FrameCount)

	err := server.InitServer(models.MemoryConfig.PortMemory)
	if err != nil {
		slog.Error(fmt.Sprintf("error initializing server: %v", err))
		panic(err)
	}
}

// applyDefaults completa los valores que el archivo de config no trae.
func applyDefaults(cfg *models.Config) {
	if cfg.FrameCount <= 0 {
		cfg.FrameCount = 16
	}
	if cfg.ProcessMinPages <= 0 {
		cfg.ProcessMinPages = 2
	}
	if cfg.ProcessMaxPages <= 0 {
		cfg.ProcessMaxPages = 4
	}
	if cfg.ProcessMaxPages < cfg.ProcessMinPages {
		cfg.ProcessMaxPages = cfg.ProcessMinPages
	}
	if cfg.EventLogCapacity <= 0 {
		cfg.EventLogCapacity = 50
	}
	if cfg.SnapshotLogEntries <= 0 {
		cfg.SnapshotLogEntries = 10
	}
}
