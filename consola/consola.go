package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/simulador-paginacion/consola/models"
	"github.com/sisoputnfrba/simulador-paginacion/consola/services"
	memoryModels "github.com/sisoputnfrba/simulador-paginacion/memoria/models"
	"github.com/sisoputnfrba/simulador-paginacion/utils/config"
	"github.com/sisoputnfrba/simulador-paginacion/utils/log"
)

const ConfigPath = "consola/configs/consola.json"

func main() {
	config.InitConfig(ConfigPath, &models.ConsoleConfig)
	log.InitLogger(models.ConsoleConfig.LogPath, models.ConsoleConfig.LogLevel)

	slog.Debug(fmt.Sprintf("Memoria en %s:%d", models.ConsoleConfig.IpMemory, models.ConsoleConfig.PortMemory))

	fmt.Println("Consola del simulador de paginación. Comandos: crear [n] | acceso <pid> <pagina> | finalizar <pid> | simular [n] | algoritmo <FIFO|LRU> | estado | reset | salir")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("(%s)> ", models.Algorithm)
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "crear":
			services.CreateProcess(intArg(fields, 1, 0))
		case "acceso":
			if len(fields) < 3 {
				fmt.Println("Uso: acceso <pid> <pagina>")
				continue
			}
			services.AccessPage(intArg(fields, 1, -1), intArg(fields, 2, -1))
		case "finalizar":
			if len(fields) < 2 {
				fmt.Println("Uso: finalizar <pid>")
				continue
			}
			services.RemoveProcess(intArg(fields, 1, -1))
		case "simular":
			for i := 0; i < intArg(fields, 1, 1); i++ {
				services.SimulateAccess()
			}
		case "algoritmo":
			if len(fields) < 2 {
				fmt.Println("Uso: algoritmo <FIFO|LRU>")
				continue
			}
			setAlgorithm(fields[1])
		case "estado":
			services.ShowState()
		case "reset":
			services.Reset()
		case "salir":
			return
		default:
			fmt.Println("Comando desconocido:", fields[0])
		}
	}
}

// intArg devuelve el argumento en la posición dada como entero, o el valor por
// defecto si no vino o no es numérico.
func intArg(fields []string, index int, fallback int) int {
	if index >= len(fields) {
		return fallback
	}
	value, err := strconv.Atoi(fields[index])
	if err != nil {
		return fallback
	}
	return value
}

func setAlgorithm(name string) {
	algorithm := strings.ToUpper(name)
	if algorithm != memoryModels.AlgorithmFIFO && algorithm != memoryModels.AlgorithmLRU {
		fmt.Println("Algoritmo desconocido:", name)
		return
	}
	models.Algorithm = algorithm
	fmt.Println("Algoritmo activo:", algorithm)
}
