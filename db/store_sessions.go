package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/prologistix/backend/db/tables"
)

// InsertSession stores the server side state of a freshly issued admin session
func (d *DataStore) InsertSession(
	ctx context.Context,
	token string,
	expiresAt time.Time,
) error {
	insert := sq.
		Insert("sessions").
		Columns("token", "expires_at", "created_at").
		Values(token, expiresAt.UTC(), time.Now().UTC())
	_, err := d.insertStatement(ctx, insert, nil)
	return err
}

// SessionByToken loads a session row by its opaque token, expiry is
// checked by the caller
func (d *DataStore) SessionByToken(
	ctx context.Context,
	token string,
) (*tables.SessionTable, error) {
	var entity tables.SessionTable
	q := sq.
		Select("id", "token", "expires_at", "created_at").
		From("sessions").
		Where(sq.Eq{"token": token})
	err := d.getStatement(ctx, &entity, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// DeleteSession removes a session row, used on logout
func (d *DataStore) DeleteSession(ctx context.Context, token string) error {
	del := sq.
		Delete("sessions").
		Where(sq.Eq{"token": token})
	_, err := d.deleteStatement(ctx, del, nil)
	return err
}

// DeleteExpiredSessions sweeps out rows whose expiry has passed, this is
// invoked opportunistically on login rather than from a background task
func (d *DataStore) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	del := sq.
		Delete("sessions").
		Where(sq.Lt{"expires_at": time.Now().UTC()})
	res, err := d.deleteStatement(ctx, del, nil)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
