package dbutils

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Форматирование текстов ошибок.
func sqlErr(err error, query string, args ...any) error {
	return fmt.Errorf(`run query "%s" with args %+v: %w`, query, args, err)
}

// Заполнение запросов именованными параметрами.
func namedQuery(query string, arg any) (nq string, args []any, err error) {
	nq, args, err = sqlx.Named(query, arg)
	if err != nil {
		return "", nil, sqlErr(err, query, args...)
	}
	return nq, args, nil
}

// Exec Выполнение запросов с параметрами (неименованные, в виде $1...$n).
func Exec(ctx context.Context, db sqlx.ExecerContext, query string, args ...any) (sql.Result, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return res, sqlErr(err, query, args...)
	}
	return res, nil
}

// NamedExec Выполнение запросов с именованными параметрами.
func NamedExec(ctx context.Context, db sqlx.ExtContext, query string, arg any) (sql.Result, error) {
	nq, args, err := namedQuery(query, arg)
	if err != nil {
		return nil, err
	}
	return Exec(ctx, db, db.Rebind(nq), args...)
}

// Select Выборка по запросу с параметрами (неименованные, в виде $1...$n).
func Select(ctx context.Context, db sqlx.QueryerContext, dest any, query string, args ...any) error {
	if err := sqlx.SelectContext(ctx, db, dest, query, args...); err != nil {
		return sqlErr(err, query, args...)
	}
	return nil
}

// Get Выборка одной строки (скалярный результат) по запросу с параметрами.
func Get(ctx context.Context, db sqlx.QueryerContext, dest any, query string, args ...any) error {
	if err := sqlx.GetContext(ctx, db, dest, query, args...); err != nil {
		return sqlErr(err, query, args...)
	}
	return nil
}
