package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/prologistix/backend/db/tables"
)

func (d *DataStore) whereFromAdapater(
	table string,
	query string,
) (func(sq.SelectBuilder) sq.SelectBuilder, error) {
	if query != "" {
		where, err := d.adapters[table].Where(query)
		if err != nil {
			return nil, err
		}
		w, a, err := where.ToSql()
		if err != nil {
			return nil, err
		}
		return func(sb sq.SelectBuilder) sq.SelectBuilder {
			return sb.Where(w, a...)
		}, nil
	}
	return func(sb sq.SelectBuilder) sq.SelectBuilder {
		return sb
	}, nil
}

func (d *DataStore) orderByFromAdapater(
	q sq.SelectBuilder,
	table string,
	defaultOrderby string,
	sort string,
) sq.SelectBuilder {
	if sort != "" {
		order, err := d.adapters[table].OrderBy(sort)
		if err != nil {
			q = q.OrderBy(defaultOrderby)
		} else {
			or, _, _ := order.ToSql()
			q = q.OrderBy(or)
		}
	} else {
		q = q.OrderBy(defaultOrderby)
	}
	return q
}

// InsertApplication stores a new driver application, the status always
// starts out as pending and created_at is assigned here
func (d *DataStore) InsertApplication(
	ctx context.Context,
	name string,
	steam string,
	reason string,
	status string,
) (int, error) {
	var id int
	insert := sq.
		Insert("applications").
		Columns("name", "steam", "reason", "status", "created_at").
		Values(name, steam, reason, status, time.Now().UTC()).
		Suffix("RETURNING id")
	err := d.returningInsertStatement(ctx, &id, insert, nil)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Applications returns all stored applications, newest first.
// query and sort are optional FIQL expressions, when empty the full
// unfiltered snapshot is returned.
func (d *DataStore) Applications(
	ctx context.Context,
	query string,
	sort string,
) ([]*tables.ApplicationTable, error) {
	applyWhere, err := d.whereFromAdapater("applications", query)
	if err != nil {
		return nil, err
	}
	var entities []*tables.ApplicationTable
	q := sq.
		Select("id", "name", "steam", "reason", "status", "created_at").
		From("applications")
	q = applyWhere(q)
	q = d.orderByFromAdapater(q, "applications", "created_at DESC, id DESC", sort)
	err = d.selectStatement(ctx, &entities, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*tables.ApplicationTable{}, nil
		}
		return nil, err
	}
	return entities, nil
}

func (d *DataStore) ApplicationByID(
	ctx context.Context,
	id int,
) (*tables.ApplicationTable, error) {
	var entity tables.ApplicationTable
	q := sq.
		Select("id", "name", "steam", "reason", "status", "created_at").
		From("applications").
		Where(sq.Eq{"id": id})
	err := d.getStatement(ctx, &entity, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// SetApplicationStatus overwrites the status of a single application,
// all other columns stay untouched. Updating a row that does not exist
// is reported as ErrNotFound rather than silently succeeding.
func (d *DataStore) SetApplicationStatus(
	ctx context.Context,
	id int,
	status string,
) error {
	update := sq.
		Update("applications").
		Set("status", status).
		Where(sq.Eq{"id": id})
	res, err := d.updateStatement(ctx, update, nil)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
