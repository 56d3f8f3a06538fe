package models

type Config struct {
	PortMemory         int    `json:"port_memory"`
	FrameCount         int    `json:"frame_count"`
	ProcessMinPages    int    `json:"process_min_pages"`
	ProcessMaxPages    int    `json:"process_max_pages"`
	EventLogCapacity   int    `json:"event_log_capacity"`
	SnapshotLogEntries int    `json:"snapshot_log_entries"`
	LogLevel           string `json:"log_level"`
	LogPath            string `json:"log_path"`
}

var MemoryConfig *Config

// Algoritmos de reemplazo soportados.
const (
	AlgorithmFIFO = "FIFO"
	AlgorithmLRU  = "LRU"
)

type CreateProcessRequest struct {
	Pages int `json:"pages"`
}

type CreateProcessResponse struct {
	Success bool     `json:"success"`
	Process *Process `json:"process,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type AccessRequest struct {
	PID       int    `json:"pid"`
	Page      int    `json:"page_num"`
	Algorithm string `json:"algorithm"`
}

type AccessResponse struct {
	Success bool   `json:"success"`
	Hit     bool   `json:"hit"`
	Error   string `json:"error,omitempty"`
}

type RemoveProcessRequest struct {
	PID int `json:"pid"`
}

type BasicResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SimulateRequest struct {
	Algorithm string `json:"algorithm"`
}

type SimulateResponse struct {
	Success bool   `json:"success"`
	Hit     bool   `json:"hit"`
	PID     int    `json:"pid"`
	Page    int    `json:"page_num"`
	Error   string `json:"error,omitempty"`
}
