// This file implements the identity store: user lookup and the
// lookup-or-create-or-update path used on every login.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// GetUser returns the user with the given identity URL, or (nil, nil) when
// no such user exists. A miss is not an error.
func (s *Store) GetUser(openidURL string) (*types.User, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT id, openid_url, name, email, time_create FROM user WHERE openid_url = ?",
		openidURL,
	)
	user, err := hydrateUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("getting user %s: %w", openidURL, err)
	}
	return user, nil
}

// GetOrUpdateUser resolves the user for an identity assertion. A missing
// user is created with TimeCreate set to the current UTC time; when the
// stored (name, email) differ from the supplied values they are overwritten
// and persisted immediately. Persisted state is the single source of truth:
// every login performs a read and an optional write, with no in-memory cache.
func (s *Store) GetOrUpdateUser(openidURL, name, email string) (*types.User, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	user, err := s.GetUser(openidURL)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// RFC3339 storage keeps second precision; truncate so the returned
		// user matches what a later read hydrates.
		now := time.Now().UTC().Truncate(time.Second)
		res, err := db.Exec(
			"INSERT INTO user (openid_url, name, email, time_create) VALUES (?, ?, ?, ?)",
			openidURL, name, email, now.Format(time.RFC3339),
		)
		if err != nil {
			s.metrics.RecordError("get_or_update_user", "insert")
			return nil, fmt.Errorf("creating user %s: %w", openidURL, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("resolving new user id: %w", err)
		}

		s.log.Info().Str("openid_url", openidURL).Msg("new user")
		s.metrics.RecordOperation("get_or_update_user", "created")

		return &types.User{
			ID:         id,
			OpenIDURL:  openidURL,
			Name:       name,
			Email:      email,
			TimeCreate: now,
		}, nil
	}

	if user.Name != name || user.Email != email {
		_, err := db.Exec(
			"UPDATE user SET name = ?, email = ? WHERE id = ?",
			name, email, user.ID,
		)
		if err != nil {
			s.metrics.RecordError("get_or_update_user", "update")
			return nil, fmt.Errorf("updating user %s: %w", openidURL, err)
		}
		user.Name = name
		user.Email = email

		s.log.Info().
			Str("openid_url", openidURL).
			Str("name", name).
			Str("email", email).
			Msg("user data modified")
		s.metrics.RecordOperation("get_or_update_user", "updated")
	} else {
		s.metrics.RecordOperation("get_or_update_user", "unchanged")
	}

	return user, nil
}

// hydrateUser converts a single SQLite row into a *types.User.
func hydrateUser(row *sql.Row) (*types.User, error) {
	var u types.User
	var name, email, timeCreate sql.NullString
	if err := row.Scan(&u.ID, &u.OpenIDURL, &name, &email, &timeCreate); err != nil {
		return nil, err
	}
	u.Name = name.String
	u.Email = email.String
	if timeCreate.Valid && timeCreate.String != "" {
		t, err := time.Parse(time.RFC3339, timeCreate.String)
		if err != nil {
			return nil, fmt.Errorf("parsing time_create: %w", err)
		}
		u.TimeCreate = t
	}
	return &u, nil
}
