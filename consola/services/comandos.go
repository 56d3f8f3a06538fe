package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	consoleModels "github.com/sisoputnfrba/simulador-paginacion/consola/models"
	memoryModels "github.com/sisoputnfrba/simulador-paginacion/memoria/models"
	"github.com/sisoputnfrba/simulador-paginacion/utils/web/client"
)

// doMemoryRequest encapsula el request al módulo de memoria y decodifica la
// respuesta JSON en out. Devuelve error tanto por fallas de conexión como por
// respuestas con status distinto de OK.
func doMemoryRequest(method string, query string, body interface{}, out interface{}) error {
	cfg := consoleModels.ConsoleConfig

	var resp *http.Response
	var err error

	if body != nil {
		jsonBody, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			slog.Error("Error serializando JSON para Memoria", "error", marshalErr)
			return marshalErr
		}
		resp, err = client.DoRequest(cfg.PortMemory, cfg.IpMemory, method, query, jsonBody)
	} else {
		resp, err = client.DoRequest(cfg.PortMemory, cfg.IpMemory, method, query)
	}

	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CreateProcess da de alta un proceso. Con pages en 0 el tamaño lo sortea el servidor.
func CreateProcess(pages int) {
	var response memoryModels.CreateProcessResponse
	err := doMemoryRequest("POST", "memoria/proceso", memoryModels.CreateProcessRequest{Pages: pages}, &response)
	if err != nil {
		return
	}

	if !response.Success {
		fmt.Println("Error:", response.Error)
		return
	}
	fmt.Printf("Proceso P%d creado (%d páginas)\n", response.Process.PID, response.Process.Size)
}

// AccessPage ejecuta un acceso puntual con el algoritmo activo de la sesión.
func AccessPage(pid int, page int) {
	request := memoryModels.AccessRequest{PID: pid, Page: page, Algorithm: consoleModels.Algorithm}

	var response memoryModels.AccessResponse
	err := doMemoryRequest("POST", "memoria/acceso", request, &response)
	if err != nil {
		return
	}

	if !response.Success {
		fmt.Println("Error:", response.Error)
		return
	}
	if response.Hit {
		fmt.Printf("Page hit: P%d página %d\n", pid, page)
	} else {
		fmt.Printf("Page fault: P%d página %d\n", pid, page)
	}
}

// RemoveProcess finaliza el proceso indicado.
func RemoveProcess(pid int) {
	var response memoryModels.BasicResponse
	err := doMemoryRequest("POST", "memoria/proceso/finalizar", memoryModels.RemoveProcessRequest{PID: pid}, &response)
	if err != nil {
		return
	}

	if !response.Success {
		fmt.Println("Error:", response.Error)
		return
	}
	fmt.Printf("Proceso P%d finalizado\n", pid)
}

// SimulateAccess pide al servidor un acceso aleatorio con el algoritmo activo.
func SimulateAccess() {
	request := memoryModels.SimulateRequest{Algorithm: consoleModels.Algorithm}

	var response memoryModels.SimulateResponse
	err := doMemoryRequest("POST", "memoria/simular", request, &response)
	if err != nil {
		return
	}

	if !response.Success {
		fmt.Println("Error:", response.Error)
		return
	}
	if response.Hit {
		fmt.Printf("Page hit: P%d página %d\n", response.PID, response.Page)
	} else {
		fmt.Printf("Page fault: P%d página %d\n", response.PID, response.Page)
	}
}

// ShowState trae la foto del simulador y la imprime: mapa de marcos,
// procesos con la residencia de cada página, estadísticas y últimos eventos.
func ShowState() {
	var state memoryModels.State
	err := doMemoryRequest("GET", "memoria/estado", nil, &state)
	if err != nil {
		return
	}

	fmt.Println("--- Marcos ---")
	for i, frame := range state.Memory {
		if frame == nil {
			fmt.Printf("Marco %2d: libre\n", i)
		} else {
			fmt.Printf("Marco %2d: P%d página %d\n", i, frame.PID, frame.Page)
		}
	}

	fmt.Println("--- Procesos ---")
	for _, process := range state.Processes {
		fmt.Printf("P%d (%d páginas):", process.PID, process.Size)
		for _, page := range process.Pages {
			if page.FrameNum == nil {
				fmt.Printf(" [pág %d: -]", page.PageNum)
			} else {
				fmt.Printf(" [pág %d: marco %d]", page.PageNum, *page.FrameNum)
			}
		}
		if metrics, ok := state.Metrics[process.PID]; ok {
			fmt.Printf("  (accesos: %d, hits: %d, faults: %d, desalojos: %d)",
				metrics.Accesses, metrics.PageHits, metrics.PageFaults, metrics.Evictions)
		}
		fmt.Println()
	}

	fmt.Printf("Stats: %d hits / %d faults\n", state.Stats.PageHits, state.Stats.PageFaults)

	fmt.Println("--- Últimos eventos ---")
	for _, entry := range state.Logs {
		fmt.Printf("[%s] %s\n", entry.Timestamp.Format("15:04:05"), entry.Message)
	}
}

// Reset reinicia el simulador al estado vacío.
func Reset() {
	var response memoryModels.BasicResponse
	err := doMemoryRequest("POST", "memoria/reset", nil, &response)
	if err != nil {
		return
	}

	if response.Success {
		fmt.Println("Simulador reiniciado")
	}
}
