package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the preferences table.
const Schema = `
CREATE TABLE IF NOT EXISTS public.user_preferences
(
    username             VARCHAR PRIMARY KEY,
    week_starting_monday BOOLEAN     NOT NULL DEFAULT TRUE,
    imperial_units       BOOLEAN     NOT NULL DEFAULT FALSE,
    timezone             VARCHAR     NOT NULL DEFAULT 'UTC',
    date_format          VARCHAR     NOT NULL DEFAULT 'dd/MM/yyyy',
    language             VARCHAR     NOT NULL DEFAULT 'en',
    display_ascent       BOOLEAN     NOT NULL DEFAULT TRUE,
    updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create preferences schema: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, user string) (_ *Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.preferences.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	p := &Preferences{User: user}
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				week_starting_monday, imperial_units, timezone,
				date_format, language, display_ascent
			FROM user_preferences
			WHERE username = $1;`,
		user,
	).Scan(
		&p.WeekStartingMonday, &p.ImperialUnits, &p.Timezone,
		&p.DateFormat, &p.Language, &p.DisplayAscent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return p, nil
}

// GetOrDefault returns the saved preferences, or the defaults when the user
// has none.
func (r *Repo) GetOrDefault(ctx context.Context, user string) (*Preferences, error) {
	p, err := r.Get(ctx, user)
	if errors.Is(err, ErrNotFound) {
		defaults := Default(user)
		return &defaults, nil
	}
	return p, err
}

func (r *Repo) Upsert(ctx context.Context, p *Preferences) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.preferences.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := p.Validate(); err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO user_preferences (
				username, week_starting_monday, imperial_units, timezone,
				date_format, language, display_ascent, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, now())
			ON CONFLICT (username) DO UPDATE SET
				week_starting_monday = EXCLUDED.week_starting_monday,
				imperial_units = EXCLUDED.imperial_units,
				timezone = EXCLUDED.timezone,
				date_format = EXCLUDED.date_format,
				language = EXCLUDED.language,
				display_ascent = EXCLUDED.display_ascent,
				updated_at = now();`,
		p.User, p.WeekStartingMonday, p.ImperialUnits, p.Timezone,
		p.DateFormat, p.Language, p.DisplayAscent,
	)
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}
