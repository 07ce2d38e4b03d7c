package entity

// Nombres de los estados que usa el flujo de revisión de expedientes.
// Los IDs se resuelven por nombre en cada transición; nunca se fijan en código.
const (
	EstadoRegistrando = "Registrando"
	EstadoEnRevision  = "EnRevision"
	EstadoAprobado    = "Aprobado"
	EstadoRechazado   = "Rechazado"
)

// Estado es una etapa del flujo de un expediente. El borrado es lógico (IsActive=false).
type Estado struct {
	ID          int
	StateName   string
	Description *string
	IsActive    bool
}

// EstadoChanges valores de sp_actualizar_estado_expediente; nil conserva el valor actual.
type EstadoChanges struct {
	ID          int
	StateName   *string
	Description *string
	IsActive    *bool
}
