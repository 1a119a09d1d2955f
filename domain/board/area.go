// Package board holds the entities of the project board: areas, sub-points
// and comments, together with the identifier codecs and the pure rules that
// govern dependencies and progress.
//
// Identifiers double as storage keys and are a public contract:
//
//	project-area:{areaId}
//	subpoint:{areaId}:{creationEpochMillis}
//	comment:{areaId}:{creationEpochMillis}
package board

// Area is a named partition of project work. Progress is derived from the
// area's sub-points and is only ever written by the progress recomputation;
// clients never set it directly.
type Area struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

const AreaKeyPrefix = "project-area:"

func AreaKey(areaID string) string {
	return AreaKeyPrefix + areaID
}

// DefaultAreas is the fixed catalog. Areas are created once by an idempotent
// upsert at startup and are never deleted; adding an area means extending
// this list, there is no dynamic registration path.
func DefaultAreas() []Area {
	return []Area{
		{ID: "ai", Name: "AI", Description: "Desarrollo e implementación de IA"},
		{ID: "hardware-code", Name: "Hardware & Code", Description: "Desarrollo de hardware y código"},
		{ID: "interfaz", Name: "Interfaz", Description: "Diseño y desarrollo de interfaz de usuario"},
		{ID: "base-datos", Name: "Base de Datos", Description: "Arquitectura y gestión de datos"},
		{ID: "impresion", Name: "Impresión (encapsulación)", Description: "Impresión 3D y encapsulación"},
	}
}

// Stats aggregates board-wide counters for the dashboard.
type Stats struct {
	TotalComments      int `json:"totalComments"`
	TotalSubPoints     int `json:"totalSubpoints"`
	CompletedSubPoints int `json:"completedTasks"`
}
