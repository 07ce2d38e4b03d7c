package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Fakes de pgx ─────────────────────────────────────────────────────────────

type fakeRows struct {
	data   [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.data[r.pos-1], nil }

// Scan copia por tipo los valores de la fila actual; cubre los tipos que usan los repositorios.
func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinos para %d columnas", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = row[i].(int)
		case *string:
			*p = row[i].(string)
		case *bool:
			*p = row[i].(bool)
		case **string:
			if row[i] == nil {
				*p = nil
			} else {
				s := row[i].(string)
				*p = &s
			}
		case *time.Time:
			*p = row[i].(time.Time)
		default:
			return fmt.Errorf("scan: tipo no soportado %T", d)
		}
	}
	return nil
}

type fakeBatch struct {
	results []*fakeRows
	idx     int
	closed  bool
}

func (b *fakeBatch) Exec() (pgconn.CommandTag, error) { return pgconn.CommandTag{}, nil }
func (b *fakeBatch) QueryRow() pgx.Row                { return nil }
func (b *fakeBatch) Close() error                     { b.closed = true; return nil }

func (b *fakeBatch) Query() (pgx.Rows, error) {
	if b.idx >= len(b.results) {
		return nil, errors.New("batch agotado")
	}
	r := b.results[b.idx]
	b.idx++
	return r, nil
}

type call struct {
	sql  string
	args []any
}

type fakeQuerier struct {
	rows     *fakeRows
	queryErr error
	execErr  error
	batch    *fakeBatch
	queued   []string
	calls    []call
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.calls = append(q.calls, call{sql, args})
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	if q.rows == nil {
		return &fakeRows{}, nil
	}
	return q.rows, nil
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.calls = append(q.calls, call{sql, args})
	return pgconn.CommandTag{}, q.execErr
}

func (q *fakeQuerier) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	for _, qq := range b.QueuedQueries {
		q.queued = append(q.queued, qq.SQL)
	}
	return q.batch
}

type observed struct {
	proc string
	err  error
}

type fakeObserver struct{ got []observed }

func (o *fakeObserver) ObserveProcedure(proc string, _ time.Duration, err error) {
	o.got = append(o.got, observed{proc, err})
}

// ─── Call.SQL ────────────────────────────────────────────────────────────────

func TestCallSQL_NotacionNombrada(t *testing.T) {
	sql, args := Call{
		Proc:    "sp_consultar_indicios",
		Columns: []string{"id_indicio", "description"},
		Params:  []Param{Int("p_id_indicio", nil), Int("p_id_expediente", 7)},
	}.SQL()

	assert.Equal(t,
		"SELECT id_indicio, description FROM sp_consultar_indicios(p_id_indicio => $1::integer, p_id_expediente => $2::integer)",
		sql)
	assert.Equal(t, []any{nil, 7}, args)
}

func TestCallSQL_SinColumnasNiParametros(t *testing.T) {
	sql, args := Call{Proc: "sp_reporte_tecnicos"}.SQL()
	assert.Equal(t, "SELECT * FROM sp_reporte_tecnicos()", sql)
	assert.Empty(t, args)
}

func TestCallExecSQL(t *testing.T) {
	sql, _ := Call{Proc: "sp_eliminar_rol", Params: []Param{Int("p_id_rol", 3)}}.execSQL()
	assert.Equal(t, "SELECT sp_eliminar_rol(p_id_rol => $1::integer)", sql)
}

// ─── Gateway ─────────────────────────────────────────────────────────────────

func TestGateway_Call_LeeFilasYObserva(t *testing.T) {
	rows := &fakeRows{data: [][]any{{1, "Registrando", nil, true}, {2, "EnRevision", nil, true}}}
	q := &fakeQuerier{rows: rows}
	obs := &fakeObserver{}
	repo := NewEstadoRepository(NewGateway(q, obs))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "EnRevision", list[1].StateName)
	assert.True(t, rows.closed)
	require.Len(t, obs.got, 1)
	assert.Equal(t, "sp_consultar_estados_expediente", obs.got[0].proc)
	assert.NoError(t, obs.got[0].err)
}

func TestGateway_Call_EnvuelveError(t *testing.T) {
	q := &fakeQuerier{queryErr: errors.New("conexión rechazada")}
	obs := &fakeObserver{}
	repo := NewRolRepository(NewGateway(q, obs))

	_, err := repo.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sp_consultar_roles")
	assert.Contains(t, err.Error(), "conexión rechazada")
	require.Len(t, obs.got, 1)
	assert.Error(t, obs.got[0].err)
}

func TestGateway_GetByID_SinFilaDevuelveNil(t *testing.T) {
	repo := NewExpedienteRepository(NewGateway(&fakeQuerier{}, nil))

	exp, err := repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, exp)
}

func TestGateway_Exec_ParametrosNulos(t *testing.T) {
	q := &fakeQuerier{}
	repo := NewExpedienteRepository(NewGateway(q, nil))
	estado := 2

	require.NoError(t, repo.Update(context.Background(), entity.ExpedienteChanges{ID: 5, IDEstado: &estado}))
	require.Len(t, q.calls, 1)
	assert.Contains(t, q.calls[0].sql, "SELECT sp_actualizar_expediente(p_id_expediente => $1::integer")
	assert.Contains(t, q.calls[0].sql, "p_review_date => $7::timestamptz")
	assert.Equal(t, 5, q.calls[0].args[0])
	assert.Equal(t, &estado, q.calls[0].args[3])
}

func TestInsertReturningID_SinFila(t *testing.T) {
	repo := NewRolRepository(NewGateway(&fakeQuerier{}, nil))

	_, err := repo.Create(context.Background(), &entity.Rol{RoleName: "Auditor"})
	assert.ErrorIs(t, err, errNoID)
}

func TestFindActiveByName_IgnoraInactivos(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		{3, "Aprobado", nil, false},
		{7, "Aprobado", nil, true},
	}}}
	repo := NewEstadoRepository(NewGateway(q, nil))

	e, err := repo.FindActiveByName(context.Background(), "Aprobado")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, 7, e.ID)
}

func TestGateway_CallBatch_UnSoloViaje(t *testing.T) {
	porEstado := &fakeRows{data: [][]any{{1, "Registrando", 4}, {3, "Aprobado", 2}}}
	tecnicos := &fakeRows{data: [][]any{{10, "Ana", "ana", 3, 9}}}
	batch := &fakeBatch{results: []*fakeRows{porEstado, tecnicos}}
	q := &fakeQuerier{batch: batch}
	obs := &fakeObserver{}
	gw := NewGateway(q, obs)

	var estados, usuarios int
	err := gw.CallBatch(context.Background(),
		BatchStep{
			Call: Call{Proc: "sp_estadisticas_por_estado", Columns: []string{"id_estado", "state_name", "cantidad"}},
			Scan: func(row pgx.Rows) error {
				var id, n int
				var name string
				estados++
				return row.Scan(&id, &name, &n)
			},
		},
		BatchStep{
			Call: Call{Proc: "sp_reporte_tecnicos"},
			Scan: func(row pgx.Rows) error {
				var id, e, i int
				var name, user string
				usuarios++
				return row.Scan(&id, &name, &user, &e, &i)
			},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, estados)
	assert.Equal(t, 1, usuarios)
	assert.Len(t, q.queued, 2)
	assert.Empty(t, q.calls)
	assert.True(t, batch.closed)
	require.Len(t, obs.got, 1)
	assert.Equal(t, "sp_estadisticas_por_estado+sp_reporte_tecnicos", obs.got[0].proc)
}

func TestMigrationFiles_Ordenados(t *testing.T) {
	names, err := MigrationFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"migrations/001_schema.sql",
		"migrations/002_procedures.sql",
		"migrations/003_reportes.sql",
	}, names)
}
