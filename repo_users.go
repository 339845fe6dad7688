package accounts

import (
	"context"
	"database/sql"
	"errors"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Users is the bun-backed user repository. It satisfies UserStore, which is
// all the lifecycle manager and token service need; the Tx variants exist for
// callers composing multi-step transactions.
type Users interface {
	UserStore

	GetByIDTx(ctx context.Context, tx bun.IDB, id uuid.UUID) (*User, error)
	GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error)
	GetByEmailAnyTx(ctx context.Context, tx bun.IDB, email string) (*User, error)
	GetByUsernameTx(ctx context.Context, tx bun.IDB, username string) (*User, error)
	RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)
	SaveTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var _ Users = (*users)(nil)

// NewUsersRepository builds the user repository over a bun handle.
func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (r *users) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.GetByIDTx(ctx, r.db, id)
}

func (r *users) GetByIDTx(ctx context.Context, tx bun.IDB, id uuid.UUID) (*User, error) {
	return selectUser(ctx, tx, map[string]any{"id": id.String()}, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.id = ?", id)
	})
}

// GetByEmail resolves an email to a live record; soft-deleted rows are
// invisible here.
func (r *users) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.GetByEmailTx(ctx, r.db, email)
}

func (r *users) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error) {
	return selectUser(ctx, tx, map[string]any{"email": email}, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("?TableAlias.email = ?", email).
			Where("?TableAlias.is_deleted = ?", false)
	})
}

// GetByEmailAny resolves an email including soft-deleted rows. The login gate
// and the reactivation flow need to see those to report or undo the pending
// deletion.
func (r *users) GetByEmailAny(ctx context.Context, email string) (*User, error) {
	return r.GetByEmailAnyTx(ctx, r.db, email)
}

func (r *users) GetByEmailAnyTx(ctx context.Context, tx bun.IDB, email string) (*User, error) {
	return selectUser(ctx, tx, map[string]any{"email": email}, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.email = ?", email)
	})
}

// GetByUsername resolves the login handle without filtering soft-deleted
// rows. Token refresh goes through here, and a deleted account keeps
// refreshing an already-issued session until it expires on its own.
func (r *users) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.GetByUsernameTx(ctx, r.db, username)
}

func (r *users) GetByUsernameTx(ctx context.Context, tx bun.IDB, username string) (*User, error) {
	return selectUser(ctx, tx, map[string]any{"username": username}, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.username = ?", username)
	})
}

func (r *users) Register(ctx context.Context, user *User) (*User, error) {
	return r.RegisterTx(ctx, r.db, user)
}

func (r *users) RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	prepareUserDefaults(user)
	return r.Repository.CreateTx(ctx, tx, user)
}

// Save writes the full record back by primary key. The update is done with a
// raw model update rather than a column list so cleared fields (emptied
// refresh tokens, zeroed counters, nil lockouts) persist too.
func (r *users) Save(ctx context.Context, user *User) (*User, error) {
	return r.SaveTx(ctx, r.db, user)
}

func (r *users) SaveTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	res, err := tx.NewUpdate().
		Model(user).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, repository.NewRecordNotFound().
			WithMetadata(map[string]any{
				"id": user.ID.String(),
			})
	}

	return user, nil
}

func selectUser(ctx context.Context, tx bun.IDB, meta map[string]any, apply func(*bun.SelectQuery) *bun.SelectQuery) (*User, error) {
	record := &User{}

	q := apply(tx.NewSelect().Model(record))

	if err := q.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) || repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().WithMetadata(meta)
		}
		return nil, err
	}

	return record, nil
}

func prepareUserDefaults(record *User) {
	if record == nil {
		return
	}

	record.EnsureRoles()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}
