package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// errNoID el procedimiento de inserción no devolvió el ID generado.
var errNoID = errors.New("el procedimiento no devolvió el ID insertado")

// insertReturningID ejecuta un sp_insertar_* y lee el ID de la primera fila.
func insertReturningID(ctx context.Context, gw *Gateway, call Call) (int, error) {
	id, found := 0, false
	err := gw.Call(ctx, call, func(row pgx.Rows) error {
		found = true
		return row.Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errNoID
	}
	return id, nil
}
