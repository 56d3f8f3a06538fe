package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitConfig lee el archivo de configuración y retorna sus valores en la variable config. En caso de error finaliza con panic
//
// Parámetros:
//   - filePath: ubicacion donde se encuentra el archivo de configuracion
//   - config: acepta cualquier tipo de estructura
//
// Ejemplo:
//
//	type MemoriaConfig struct {
//		PortMemory int `json:"port_memory"`
//		FrameCount int `json:"frame_count"`
//	}
//	func main() {
//		var memoriaConfig MemoriaConfig
//		config.InitConfig("./configs/memoria.json", &memoriaConfig)
//	}
func InitConfig(filePath string, config interface{}) {
	err := setupConfig(filePath, &config)
	if err != nil {
		_ = fmt.Errorf("error al configurar el archivo %v", err)
		panic(err)
	}
}

func setupConfig(filePath string, config interface{}) error {
	configFile, err := os.Open(filePath)

	if err != nil {
		return err
	}

	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)

	if err := jsonParser.Decode(&config); err != nil {
		return err
	}

	return nil
}
