// Package store persists the user's session state: the pantry ingredient
// list, the favorite recipe set, and preferences (cuisine, working language).
//
// The store replaces the scattered synchronous local-storage access of a
// browser client with a single SQLite database and a defined load/save
// boundary: every mutation is one statement, reads return fresh state.
// Favorited recipes are persisted as full objects, so AI-generated recipes
// survive a reload instead of dangling as unresolvable ids.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/sahas-01/ChefGPT/internal/recipe"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// Preference keys.
const (
	PrefCuisine  = "preferredCuisine"
	PrefLanguage = "userLanguage"
)

const schema = `
CREATE TABLE IF NOT EXISTS ingredients (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	expiring INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS favorites (
	recipe_id TEXT PRIMARY KEY,
	data      TEXT NOT NULL,
	position  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store is a SQLite-backed session store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the store at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddIngredients appends ingredients with the given names, assigning each an
// opaque unique id and expiring=false. Insertion order is preserved.
func (s *Store) AddIngredients(ctx context.Context, names []string) ([]recipe.Ingredient, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var pos int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) FROM ingredients`).Scan(&pos); err != nil {
		return nil, fmt.Errorf("reading ingredient positions: %w", err)
	}

	added := make([]recipe.Ingredient, 0, len(names))
	for _, name := range names {
		pos++
		ing := recipe.Ingredient{ID: uuid.NewString(), Name: name}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ingredients (id, name, expiring, position) VALUES (?, ?, 0, ?)`,
			ing.ID, ing.Name, pos,
		); err != nil {
			return nil, fmt.Errorf("inserting ingredient: %w", err)
		}
		added = append(added, ing)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing ingredients: %w", err)
	}
	return added, nil
}

// Ingredients returns the pantry in insertion order.
func (s *Store) Ingredients(ctx context.Context) ([]recipe.Ingredient, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, expiring FROM ingredients ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}
	defer rows.Close()

	var out []recipe.Ingredient
	for rows.Next() {
		var ing recipe.Ingredient
		var expiring int
		if err := rows.Scan(&ing.ID, &ing.Name, &expiring); err != nil {
			return nil, fmt.Errorf("scanning ingredient: %w", err)
		}
		ing.Expiring = expiring != 0
		out = append(out, ing)
	}
	return out, rows.Err()
}

// RemoveIngredient deletes one ingredient by id.
func (s *Store) RemoveIngredient(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("removing ingredient: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearIngredients empties the pantry.
func (s *Store) ClearIngredients(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM ingredients`); err != nil {
		return fmt.Errorf("clearing ingredients: %w", err)
	}
	return nil
}

// ToggleExpiring flips the expiring flag and returns the updated ingredient.
func (s *Store) ToggleExpiring(ctx context.Context, id string) (*recipe.Ingredient, error) {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE ingredients SET expiring = 1 - expiring WHERE id = ?`, id,
	); err != nil {
		return nil, fmt.Errorf("toggling expiring: %w", err)
	}

	var ing recipe.Ingredient
	var expiring int
	err := s.db.QueryRowContext(ctx, `SELECT id, name, expiring FROM ingredients WHERE id = ?`, id).
		Scan(&ing.ID, &ing.Name, &expiring)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading ingredient: %w", err)
	}
	ing.Expiring = expiring != 0
	return &ing, nil
}

// AddFavorite stores a full recipe in the favorite set. Saving the same id
// again overwrites the stored copy.
func (s *Store) AddFavorite(ctx context.Context, r recipe.Recipe) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshalling favorite: %w", err)
	}

	var pos int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM favorites`).Scan(&pos); err != nil {
		return fmt.Errorf("reading favorite positions: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO favorites (recipe_id, data, position) VALUES (?, ?, ?)
		 ON CONFLICT(recipe_id) DO UPDATE SET data = excluded.data`,
		r.ID, string(data), pos,
	); err != nil {
		return fmt.Errorf("saving favorite: %w", err)
	}
	return nil
}

// Favorites returns the favorited recipes in the order they were added.
func (s *Store) Favorites(ctx context.Context) ([]recipe.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM favorites ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var out []recipe.Recipe
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		var r recipe.Recipe
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, fmt.Errorf("unmarshalling favorite: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RemoveFavorite deletes one favorite by recipe id.
func (s *Store) RemoveFavorite(ctx context.Context, recipeID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE recipe_id = ?`, recipeID)
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPreference writes one preference key. Last write wins.
func (s *Store) SetPreference(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	); err != nil {
		return fmt.Errorf("saving preference %s: %w", key, err)
	}
	return nil
}

// Preference reads one preference key, returning "" when unset.
func (s *Store) Preference(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, nil
}
