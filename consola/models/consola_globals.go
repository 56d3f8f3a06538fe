package models

type Config struct {
	IpMemory   string `json:"ip_memory"`
	PortMemory int    `json:"port_memory"`
	LogLevel   string `json:"log_level"`
	LogPath    string `json:"log_path"`
}

var ConsoleConfig *Config

// Algorithm es el algoritmo de reemplazo activo en la sesión de la consola.
// Se cambia con el comando "algoritmo" y acompaña a cada acceso.
var Algorithm = "FIFO"
