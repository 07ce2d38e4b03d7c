package http_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Base de datos en memoria que imita los procedimientos almacenados
// ──────────────────────────────────────────────────────────────────────────────

type memDB struct {
	mu            sync.Mutex
	roles         map[int]*entity.Rol
	estados       map[int]*entity.Estado
	usuarios      map[int]*entity.Usuario
	expedientes   map[int]*entity.Expediente
	indicios      map[int]*entity.Indicio
	seq           int
	writes        int
	estadoLookups int
	fail          error // si no es nil, todas las operaciones fallan con este error
	clock         time.Time
}

func newMemDB() *memDB {
	db := &memDB{
		roles:       map[int]*entity.Rol{},
		estados:     map[int]*entity.Estado{},
		usuarios:    map[int]*entity.Usuario{},
		expedientes: map[int]*entity.Expediente{},
		indicios:    map[int]*entity.Indicio{},
		seq:         100,
		clock:       time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	db.roles[1] = &entity.Rol{ID: 1, RoleName: "Tecnico", IsActive: true}
	db.roles[2] = &entity.Rol{ID: 2, RoleName: "Coordinador", IsActive: true}
	for id, name := range map[int]string{
		1: entity.EstadoRegistrando,
		2: entity.EstadoEnRevision,
		3: entity.EstadoAprobado,
		4: entity.EstadoRechazado,
	} {
		db.estados[id] = &entity.Estado{ID: id, StateName: name, IsActive: true}
	}
	db.usuarios[1] = &entity.Usuario{ID: 1, Username: "jperez", Password: "Tecnico123!", FullName: "Juan Pérez", IDRol: 1, RoleName: "Tecnico", IsActive: true}
	db.usuarios[2] = &entity.Usuario{ID: 2, Username: "mlopez", Password: "Coord123!", FullName: "María López", IDRol: 2, RoleName: "Coordinador", IsActive: true}
	return db
}

func (db *memDB) nextID() int {
	db.seq++
	return db.seq
}

func (db *memDB) tick() time.Time {
	db.clock = db.clock.Add(time.Minute)
	return db.clock
}

func (db *memDB) fullName(id int) *string {
	if u, ok := db.usuarios[id]; ok {
		name := u.FullName
		return &name
	}
	return nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// ─── Roles ───────────────────────────────────────────────────────────────────

type memRoles struct{ db *memDB }

var _ repository.RolRepository = memRoles{}

func (r memRoles) List(context.Context) ([]*entity.Rol, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	out := []*entity.Rol{}
	for _, id := range sortedKeys(r.db.roles) {
		cp := *r.db.roles[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r memRoles) GetByID(_ context.Context, id int) (*entity.Rol, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	rol, ok := r.db.roles[id]
	if !ok {
		return nil, nil
	}
	cp := *rol
	return &cp, nil
}

func (r memRoles) Create(_ context.Context, rol *entity.Rol) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return 0, r.db.fail
	}
	r.db.writes++
	cp := *rol
	cp.ID = r.db.nextID()
	r.db.roles[cp.ID] = &cp
	return cp.ID, nil
}

func (r memRoles) Update(_ context.Context, c entity.RolChanges) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return r.db.fail
	}
	r.db.writes++
	if rol, ok := r.db.roles[c.ID]; ok {
		if c.RoleName != nil {
			rol.RoleName = *c.RoleName
		}
		if c.Description != nil {
			rol.Description = c.Description
		}
		if c.IsActive != nil {
			rol.IsActive = *c.IsActive
		}
	}
	return nil
}

func (r memRoles) Delete(_ context.Context, id int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return r.db.fail
	}
	r.db.writes++
	if rol, ok := r.db.roles[id]; ok {
		rol.IsActive = false
	}
	return nil
}

// ─── Estados ─────────────────────────────────────────────────────────────────

type memEstados struct{ db *memDB }

var _ repository.EstadoRepository = memEstados{}

func (r memEstados) List(context.Context) ([]*entity.Estado, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	out := []*entity.Estado{}
	for _, id := range sortedKeys(r.db.estados) {
		cp := *r.db.estados[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r memEstados) GetByID(_ context.Context, id int) (*entity.Estado, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	e, ok := r.db.estados[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r memEstados) FindActiveByName(_ context.Context, name string) (*entity.Estado, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.estadoLookups++
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	for _, e := range r.db.estados {
		if e.IsActive && e.StateName == name {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memEstados) Create(_ context.Context, e *entity.Estado) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return 0, r.db.fail
	}
	r.db.writes++
	cp := *e
	cp.ID = r.db.nextID()
	r.db.estados[cp.ID] = &cp
	return cp.ID, nil
}

func (r memEstados) Update(_ context.Context, c entity.EstadoChanges) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return r.db.fail
	}
	r.db.writes++
	if e, ok := r.db.estados[c.ID]; ok {
		if c.StateName != nil {
			e.StateName = *c.StateName
		}
		if c.IsActive != nil {
			e.IsActive = *c.IsActive
		}
	}
	return nil
}

func (r memEstados) Delete(_ context.Context, id int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return r.db.fail
	}
	r.db.writes++
	if e, ok := r.db.estados[id]; ok {
		e.IsActive = false
	}
	return nil
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

type memUsuarios struct{ db *memDB }

var _ repository.UsuarioRepository = memUsuarios{}

func (r memUsuarios) List(context.Context) ([]*entity.Usuario, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	out := []*entity.Usuario{}
	for _, id := range sortedKeys(r.db.usuarios) {
		cp := *r.db.usuarios[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r memUsuarios) GetByID(_ context.Context, id int) (*entity.Usuario, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	u, ok := r.db.usuarios[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r memUsuarios) Create(_ context.Context, u *entity.Usuario) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return 0, r.db.fail
	}
	r.db.writes++
	cp := *u
	cp.ID = r.db.nextID()
	if rol, ok := r.db.roles[cp.IDRol]; ok {
		cp.RoleName = rol.RoleName
	}
	r.db.usuarios[cp.ID] = &cp
	return cp.ID, nil
}

func (r memUsuarios) Update(_ context.Context, c entity.UsuarioChanges) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return r.db.fail
	}
	r.db.writes++
	if u, ok := r.db.usuarios[c.ID]; ok {
		if c.FullName != nil {
			u.FullName = *c.FullName
		}
		if c.IsActive != nil {
			u.IsActive = *c.IsActive
		}
	}
	return nil
}

func (r memUsuarios) Delete(_ context.Context, id int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return r.db.fail
	}
	r.db.writes++
	if u, ok := r.db.usuarios[id]; ok {
		u.IsActive = false
	}
	return nil
}

func (r memUsuarios) Authenticate(_ context.Context, username, password string) (*entity.Usuario, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	for _, u := range r.db.usuarios {
		if u.IsActive && u.Username == username && u.Password == password {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// ─── Expedientes ─────────────────────────────────────────────────────────────

type memExpedientes struct{ db *memDB }

var _ repository.ExpedienteRepository = memExpedientes{}

func (r memExpedientes) join(e *entity.Expediente) *entity.Expediente {
	cp := *e
	if s, ok := r.db.estados[cp.IDEstado]; ok {
		cp.StateName = s.StateName
	}
	cp.TecnicoRegistro = r.db.fullName(cp.IDTecnicoRegistro)
	if cp.IDCoordinadorRevision != nil {
		cp.CoordinadorRevision = r.db.fullName(*cp.IDCoordinadorRevision)
	}
	return &cp
}

func (r memExpedientes) List(context.Context) ([]*entity.Expediente, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	out := []*entity.Expediente{}
	for _, id := range sortedKeys(r.db.expedientes) {
		out = append(out, r.join(r.db.expedientes[id]))
	}
	return out, nil
}

func (r memExpedientes) GetByID(_ context.Context, id int) (*entity.Expediente, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	e, ok := r.db.expedientes[id]
	if !ok {
		return nil, nil
	}
	return r.join(e), nil
}

func (r memExpedientes) Create(_ context.Context, e *entity.Expediente) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return 0, r.db.fail
	}
	r.db.writes++
	cp := *e
	cp.ID = r.db.nextID()
	cp.CreatedAt = r.db.tick()
	cp.UpdatedAt = cp.CreatedAt
	r.db.expedientes[cp.ID] = &cp
	return cp.ID, nil
}

// Update replica sp_actualizar_expediente: COALESCE en columnas obligatorias, asignación directa en opcionales.
func (r memExpedientes) Update(_ context.Context, c entity.ExpedienteChanges) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return r.db.fail
	}
	r.db.writes++
	e, ok := r.db.expedientes[c.ID]
	if !ok {
		return nil
	}
	if c.FileNumber != nil {
		e.FileNumber = *c.FileNumber
	}
	if c.Description != nil {
		e.Description = *c.Description
	}
	if c.IDEstado != nil {
		e.IDEstado = *c.IDEstado
	}
	e.Observaciones = c.Observaciones
	e.IDCoordinadorRevision = c.IDCoordinadorRevision
	e.ReviewDate = c.ReviewDate
	e.UpdatedAt = r.db.tick()
	return nil
}

func (r memExpedientes) Delete(_ context.Context, id int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return r.db.fail
	}
	r.db.writes++
	delete(r.db.expedientes, id)
	for iid, i := range r.db.indicios {
		if i.IDExpediente == id {
			delete(r.db.indicios, iid)
		}
	}
	return nil
}

// ─── Indicios ────────────────────────────────────────────────────────────────

type memIndicios struct{ db *memDB }

var _ repository.IndicioRepository = memIndicios{}

func (r memIndicios) join(i *entity.Indicio) *entity.Indicio {
	cp := *i
	if e, ok := r.db.expedientes[cp.IDExpediente]; ok {
		cp.FileNumber = e.FileNumber
	}
	cp.TecnicoRegistro = r.db.fullName(cp.IDTecnicoRegistro)
	return &cp
}

func (r memIndicios) List(_ context.Context, idExpediente *int) ([]*entity.Indicio, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	out := []*entity.Indicio{}
	for _, id := range sortedKeys(r.db.indicios) {
		i := r.db.indicios[id]
		if idExpediente != nil && i.IDExpediente != *idExpediente {
			continue
		}
		out = append(out, r.join(i))
	}
	return out, nil
}

func (r memIndicios) GetByID(_ context.Context, id int) (*entity.Indicio, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	i, ok := r.db.indicios[id]
	if !ok {
		return nil, nil
	}
	return r.join(i), nil
}

func (r memIndicios) Create(_ context.Context, i *entity.Indicio) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return 0, r.db.fail
	}
	r.db.writes++
	cp := *i
	cp.ID = r.db.nextID()
	cp.CreatedAt = r.db.tick()
	cp.UpdatedAt = cp.CreatedAt
	r.db.indicios[cp.ID] = &cp
	return cp.ID, nil
}

func (r memIndicios) Update(_ context.Context, c entity.IndicioChanges) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return r.db.fail
	}
	r.db.writes++
	if i, ok := r.db.indicios[c.ID]; ok {
		if c.Description != nil {
			i.Description = *c.Description
		}
		if c.Location != nil {
			i.Location = *c.Location
		}
		i.Color, i.Size, i.Weight = c.Color, c.Size, c.Weight
	}
	return nil
}

func (r memIndicios) Delete(_ context.Context, id int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return r.db.fail
	}
	r.db.writes++
	delete(r.db.indicios, id)
	return nil
}

// ─── Reportes ────────────────────────────────────────────────────────────────

type memReportes struct{ db *memDB }

var _ repository.ReporteRepository = memReportes{}

func (r memReportes) enRango(e *entity.Expediente, f entity.ReporteFiltro) bool {
	if f.FechaInicio != nil && e.CreatedAt.Before(*f.FechaInicio) {
		return false
	}
	if f.FechaFin != nil && e.CreatedAt.After(*f.FechaFin) {
		return false
	}
	return true
}

func (r memReportes) totalIndicios(id int) int {
	n := 0
	for _, i := range r.db.indicios {
		if i.IDExpediente == id {
			n++
		}
	}
	return n
}

func (r memReportes) Expedientes(_ context.Context, f entity.ReporteFiltro) ([]entity.ReporteExpediente, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	out := []entity.ReporteExpediente{}
	for _, id := range sortedKeys(r.db.expedientes) {
		e := memExpedientes(r).join(r.db.expedientes[id])
		if !r.enRango(e, f) || (f.IDEstado != nil && e.IDEstado != *f.IDEstado) {
			continue
		}
		out = append(out, entity.ReporteExpediente{
			IDExpediente:        e.ID,
			FileNumber:          e.FileNumber,
			Description:         e.Description,
			StateName:           e.StateName,
			TecnicoRegistro:     *e.TecnicoRegistro,
			CoordinadorRevision: e.CoordinadorRevision,
			ReviewDate:          e.ReviewDate,
			TotalIndicios:       r.totalIndicios(e.ID),
			CreatedAt:           e.CreatedAt,
		})
	}
	return out, nil
}

func (r memReportes) Estadisticas(_ context.Context, f entity.ReporteFiltro) ([]entity.EstadisticaEstado, *entity.EstadisticaTotales, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, nil, r.db.fail
	}
	porEstado := []entity.EstadisticaEstado{}
	totales := &entity.EstadisticaTotales{}
	for _, sid := range sortedKeys(r.db.estados) {
		s := r.db.estados[sid]
		n := 0
		for _, e := range r.db.expedientes {
			if e.IDEstado == sid && r.enRango(e, f) {
				n++
			}
		}
		porEstado = append(porEstado, entity.EstadisticaEstado{IDEstado: sid, StateName: s.StateName, Cantidad: n})
		totales.TotalExpedientes += n
		switch s.StateName {
		case entity.EstadoAprobado:
			totales.TotalAprobados += n
		case entity.EstadoRechazado:
			totales.TotalRechazados += n
		default:
			totales.TotalPendientes += n
		}
	}
	totales.TotalIndicios = len(r.db.indicios)
	return porEstado, totales, nil
}

func (r memReportes) Tecnicos(context.Context) ([]entity.ReporteTecnico, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	out := []entity.ReporteTecnico{}
	for _, id := range sortedKeys(r.db.usuarios) {
		u := r.db.usuarios[id]
		if u.RoleName != "Tecnico" {
			continue
		}
		t := entity.ReporteTecnico{IDUsuario: u.ID, FullName: u.FullName, Username: u.Username}
		for _, e := range r.db.expedientes {
			if e.IDTecnicoRegistro == u.ID {
				t.TotalExpedientes++
			}
		}
		for _, i := range r.db.indicios {
			if i.IDTecnicoRegistro == u.ID {
				t.TotalIndicios++
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (r memReportes) Coordinadores(context.Context) ([]entity.ReporteCoordinador, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fail != nil {
		return nil, r.db.fail
	}
	out := []entity.ReporteCoordinador{}
	for _, id := range sortedKeys(r.db.usuarios) {
		u := r.db.usuarios[id]
		if u.RoleName != "Coordinador" {
			continue
		}
		c := entity.ReporteCoordinador{IDUsuario: u.ID, FullName: u.FullName, Username: u.Username}
		for _, e := range r.db.expedientes {
			if e.IDCoordinadorRevision == nil || *e.IDCoordinadorRevision != u.ID {
				continue
			}
			c.TotalRevisados++
			switch r.db.estados[e.IDEstado].StateName {
			case entity.EstadoAprobado:
				c.TotalAprobados++
			case entity.EstadoRechazado:
				c.TotalRechazados++
			}
		}
		out = append(out, c)
	}
	return out, nil
}
