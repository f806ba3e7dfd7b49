package session_pg_repo

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

const (
	sessionsTable  = "sessions"
	colID          = "id"
	colCredits     = "credits"
	colCreatedAt   = "created_at"
	colLastUpdated = "last_updated"
	colIsActive    = "is_active"

	rollsTable       = "session_rolls"
	colSessionID     = "session_id"
	colPosition      = "position"
	colSymbols       = "symbols"
	colRolledAt      = "rolled_at"
	colWasSuppressed = "was_suppressed"

	uniqueViolation = "23505"
)

type repo struct {
	dbc       *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
}

func NewSessionRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.SessionRepository {
	return &repo{
		dbc:       dbc,
		txManager: txManager,
		getter:    trmpgx.DefaultCtxGetter,
	}
}

// Migrate - применяет схему sessions/session_rolls, повторный вызов безопасен
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = dbc.Exec(ctx, string(sqlBytes))
	return err
}

// Create - вставляет сессию и ее историю одной транзакцией
func (r *repo) Create(ctx context.Context, session *model.GameSession) error {
	rec := session.Record()

	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		// Формируем запрос
		query := sq.Insert(sessionsTable).
			Columns(colID, colCredits, colCreatedAt, colLastUpdated, colIsActive).
			Values(rec.ID, rec.Credits, rec.CreatedAt, rec.LastUpdated, rec.IsActive).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}

		_, err = r.conn(txCtx).Exec(txCtx, sqlStr, args...)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return repository.ErrAlreadyExists
			}
			return fmt.Errorf("insert session: %w", err)
		}

		return r.insertRolls(txCtx, rec)
	})
}

// FindByID - снимок сессии вместе с историей спинов
func (r *repo) FindByID(ctx context.Context, id string) (*model.GameSession, error) {
	// Формируем запрос
	query := sq.Select(colID, colCredits, colCreatedAt, colLastUpdated, colIsActive).
		From(sessionsTable).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rec model.SessionRecord
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&rec.ID, &rec.Credits, &rec.CreatedAt, &rec.LastUpdated, &rec.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select session: %w", err)
	}

	rec.GameHistory, err = r.selectRolls(ctx, id)
	if err != nil {
		return nil, err
	}

	return model.RestoreSession(rec)
}

// Update - обновляет снимок и дописывает новые спины.
// Спины неизменяемы, поэтому уже сохраненные пропускаются
func (r *repo) Update(ctx context.Context, session *model.GameSession) error {
	rec := session.Record()

	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		// Формируем запрос
		query := sq.Update(sessionsTable).
			Set(colCredits, rec.Credits).
			Set(colLastUpdated, rec.LastUpdated).
			Set(colIsActive, rec.IsActive).
			Where(sq.Eq{colID: rec.ID}).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}

		tag, err := r.conn(txCtx).Exec(txCtx, sqlStr, args...)
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}

		return r.insertRolls(txCtx, rec)
	})
}

// Delete - удаляет сессию, спины уходят каскадом
func (r *repo) Delete(ctx context.Context, id string) error {
	// Формируем запрос
	query := sq.Delete(sessionsTable).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// conn - текущая транзакция из контекста или пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

func (r *repo) insertRolls(ctx context.Context, rec model.SessionRecord) error {
	if len(rec.GameHistory) == 0 {
		return nil
	}

	query := sq.Insert(rollsTable).
		Columns(colID, colSessionID, colPosition, colSymbols, colCredits, colRolledAt, colWasSuppressed).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	for i, roll := range rec.GameHistory {
		query = query.Values(roll.ID, rec.ID, i, roll.Symbols[:], roll.Credits, roll.Timestamp, roll.WasSuppressed)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn(ctx).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("insert rolls: %w", err)
	}
	return nil
}

func (r *repo) selectRolls(ctx context.Context, sessionID string) ([]model.RollRecord, error) {
	query := sq.Select(colID, colSymbols, colCredits, colRolledAt, colWasSuppressed).
		From(rollsTable).
		Where(sq.Eq{colSessionID: sessionID}).
		OrderBy(colPosition).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("select rolls: %w", err)
	}
	defer rows.Close()

	var out []model.RollRecord
	for rows.Next() {
		var (
			rr      model.RollRecord
			symbols []string
		)
		if err := rows.Scan(&rr.ID, &symbols, &rr.Credits, &rr.Timestamp, &rr.WasSuppressed); err != nil {
			return nil, fmt.Errorf("scan roll: %w", err)
		}
		if len(symbols) != len(rr.Symbols) {
			return nil, fmt.Errorf("roll %s has %d symbols: %w", rr.ID, len(symbols), model.ErrInvalidData)
		}
		copy(rr.Symbols[:], symbols)
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rolls: %w", err)
	}

	return out, nil
}
