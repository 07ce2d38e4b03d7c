package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es el subconjunto de *pgxpool.Pool que usa el gateway.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// ProcedureObserver recibe la duración y el resultado de cada llamada (métricas).
type ProcedureObserver interface {
	ObserveProcedure(proc string, d time.Duration, err error)
}

// Param parámetro con nombre y tipo SQL de un procedimiento almacenado.
// Value nil (o un puntero nil) se envía como NULL.
type Param struct {
	Name  string
	Type  string
	Value any
}

// Int, Text, Bool y Timestamp construyen parámetros tipados.
func Int(name string, v any) Param       { return Param{Name: name, Type: "integer", Value: v} }
func Text(name string, v any) Param      { return Param{Name: name, Type: "varchar", Value: v} }
func Bool(name string, v any) Param      { return Param{Name: name, Type: "boolean", Value: v} }
func Timestamp(name string, v any) Param { return Param{Name: name, Type: "timestamptz", Value: v} }

// Call describe la invocación de un procedimiento: nombre, columnas a leer y parámetros.
type Call struct {
	Proc    string
	Columns []string // vacío = "*"
	Params  []Param
}

// SQL arma la sentencia con notación nombrada: SELECT cols FROM proc(p_a => $1::integer, ...).
func (c Call) SQL() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(c.Columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(c.Columns, ", "))
	}
	b.WriteString(" FROM ")
	args := c.writeInvocation(&b)
	return b.String(), args
}

// execSQL arma la sentencia para procedimientos sin record set: SELECT proc(...).
func (c Call) execSQL() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	args := c.writeInvocation(&b)
	return b.String(), args
}

func (c Call) writeInvocation(b *strings.Builder) []any {
	args := make([]any, 0, len(c.Params))
	b.WriteString(c.Proc)
	b.WriteByte('(')
	for i, p := range c.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(" => $")
		b.WriteString(strconv.Itoa(i + 1))
		if p.Type != "" {
			b.WriteString("::")
			b.WriteString(p.Type)
		}
		args = append(args, p.Value)
	}
	b.WriteByte(')')
	return args
}

// RowScanner lee una fila del record set.
type RowScanner func(row pgx.Rows) error

// BatchStep una llamada dentro de CallBatch con su lector de filas.
type BatchStep struct {
	Call Call
	Scan RowScanner
}

// Gateway ejecuta procedimientos almacenados sobre el pool compartido.
// Es la única puerta de acceso a la base de datos para los repositorios.
type Gateway struct {
	db  Querier
	obs ProcedureObserver
}

// NewGateway construye el gateway. obs puede ser nil.
func NewGateway(db Querier, obs ProcedureObserver) *Gateway {
	return &Gateway{db: db, obs: obs}
}

// Call ejecuta el procedimiento y entrega cada fila del record set a scan.
func (g *Gateway) Call(ctx context.Context, call Call, scan RowScanner) error {
	start := time.Now()
	err := g.call(ctx, call, scan)
	g.observe(call.Proc, start, err)
	return err
}

func (g *Gateway) call(ctx context.Context, call Call, scan RowScanner) error {
	sql, args := call.SQL()
	rows, err := g.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", call.Proc, err)
	}
	return readRows(call.Proc, rows, scan)
}

// Exec ejecuta un procedimiento que no devuelve record set.
func (g *Gateway) Exec(ctx context.Context, call Call) error {
	start := time.Now()
	sql, args := call.execSQL()
	_, err := g.db.Exec(ctx, sql, args...)
	if err != nil {
		err = fmt.Errorf("%s: %w", call.Proc, err)
	}
	g.observe(call.Proc, start, err)
	return err
}

// CallBatch envía varias llamadas en un solo viaje de red y lee sus record sets en orden.
func (g *Gateway) CallBatch(ctx context.Context, steps ...BatchStep) error {
	start := time.Now()
	err := g.callBatch(ctx, steps)
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.Call.Proc)
	}
	g.observe(strings.Join(names, "+"), start, err)
	return err
}

func (g *Gateway) callBatch(ctx context.Context, steps []BatchStep) (err error) {
	batch := &pgx.Batch{}
	for _, s := range steps {
		sql, args := s.Call.SQL()
		batch.Queue(sql, args...)
	}
	br := g.db.SendBatch(ctx, batch)
	defer func() {
		if cerr := br.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cerrar batch: %w", cerr)
		}
	}()

	for _, s := range steps {
		rows, qerr := br.Query()
		if qerr != nil {
			return fmt.Errorf("%s: %w", s.Call.Proc, qerr)
		}
		if err := readRows(s.Call.Proc, rows, s.Scan); err != nil {
			return err
		}
	}
	return nil
}

func readRows(proc string, rows pgx.Rows, scan RowScanner) error {
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("%s scan: %w", proc, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", proc, err)
	}
	return nil
}

func (g *Gateway) observe(proc string, start time.Time, err error) {
	if g.obs != nil {
		g.obs.ObserveProcedure(proc, time.Since(start), err)
	}
}
