package models

import "time"

// Frame representa el contenido de un marco físico ocupado.
// Un marco libre se modela como nil dentro del pool.
type Frame struct {
	PID   int    `json:"pid"`
	Page  int    `json:"page_num"`
	Color string `json:"color"`
}

// PageKey identifica una página puntual de un proceso dentro de la tabla de páginas.
// Reemplaza a la clave compuesta tipo string "P{pid}-{pagina}": no hay que parsear
// nada y no existen colisiones posibles entre claves.
type PageKey struct {
	PID  int
	Page int
}

// PageEntry guarda los metadatos de residencia de una página cargada en memoria.
// Existe solo mientras la página está residente. Los tiempos provienen del
// reloj lógico del administrador, nunca retroceden.
type PageEntry struct {
	Frame       int
	AllocatedAt int64
	LastUsed    int64
}

// Page describe una página de la imagen de un proceso. FrameNum es nil
// cuando la página no está residente.
type Page struct {
	PageNum  int  `json:"page_num"`
	FrameNum *int `json:"frame_num"`
}

type Process struct {
	PID   int    `json:"pid"`
	Size  int    `json:"size"`
	Pages []Page `json:"pages"`
	Color string `json:"color"`
}

type Stats struct {
	PageHits   int `json:"page_hits"`
	PageFaults int `json:"page_faults"`
}

// ProcessMetrics acumula contadores por proceso.
type ProcessMetrics struct {
	Accesses   int `json:"accesses"`
	PageHits   int `json:"page_hits"`
	PageFaults int `json:"page_faults"`
	Evictions  int `json:"evictions"`
}

type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// State es la proyección de solo lectura del estado completo del simulador.
type State struct {
	Memory    []*Frame               `json:"memory"`
	Processes []Process              `json:"processes"`
	Stats     Stats                  `json:"stats"`
	Metrics   map[int]ProcessMetrics `json:"metrics"`
	Logs      []LogEntry             `json:"logs"`
}

// AccessSample es el resultado de un acceso aleatorio generado por el simulador.
type AccessSample struct {
	PID  int  `json:"pid"`
	Page int  `json:"page_num"`
	Hit  bool `json:"hit"`
}
