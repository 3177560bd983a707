package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE categories (
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL UNIQUE,
	icon     TEXT NOT NULL,
	position INTEGER NOT NULL
);
CREATE TABLE commands (
	id          INTEGER PRIMARY KEY,
	category_id INTEGER NOT NULL REFERENCES categories(id),
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	position    INTEGER NOT NULL,
	dangerous   INTEGER NOT NULL DEFAULT 0,
	production  INTEGER NOT NULL DEFAULT 0,
	UNIQUE (category_id, name)
);
CREATE TABLE examples (
	command_id INTEGER NOT NULL REFERENCES commands(id),
	position   INTEGER NOT NULL,
	text       TEXT NOT NULL,
	PRIMARY KEY (command_id, position)
);
CREATE TABLE options (
	command_id  INTEGER NOT NULL REFERENCES commands(id),
	position    INTEGER NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	PRIMARY KEY (command_id, position)
);
CREATE TABLE tags (
	command_id INTEGER NOT NULL REFERENCES commands(id),
	position   INTEGER NOT NULL,
	tag        TEXT NOT NULL,
	PRIMARY KEY (command_id, position)
);
CREATE INDEX idx_tags_tag ON tags(tag);
CREATE TABLE meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLite writes c to a new SQLite database at path, replacing any existing
// file. All rows are inserted in one transaction. The meta table identifies
// the export with a random export_id.
func SQLite(ctx context.Context, c *catalog.Catalog, path string, opts Options) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("sqlite export: db path cannot be empty")
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("sqlite export: remove existing db: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("sqlite export: open db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite export: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("sqlite export: create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite export: begin transaction: %w", err)
	}
	if err := insertCatalog(ctx, tx, c); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := insertMeta(ctx, tx, c, opts); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("sqlite export: commit transaction: %w", err)
	}
	return nil
}

func insertCatalog(ctx context.Context, tx *sql.Tx, c *catalog.Catalog) error {
	for catPos, cat := range c.All() {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO categories (name, icon, position) VALUES (?, ?, ?)`,
			cat.Name, cat.DisplayIcon(), catPos)
		if err != nil {
			return fmt.Errorf("sqlite export: insert category %q: %w", cat.Name, err)
		}
		categoryID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("sqlite export: category id %q: %w", cat.Name, err)
		}
		for cmdPos, cmd := range cat.Commands {
			if err := insertCommand(ctx, tx, categoryID, cmdPos, cmd); err != nil {
				return fmt.Errorf("sqlite export: category %q: %w", cat.Name, err)
			}
		}
	}
	return nil
}

func insertCommand(ctx context.Context, tx *sql.Tx, categoryID int64, pos int, cmd catalog.Command) error {
	class := catalog.ClassifyTags(cmd)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO commands (category_id, name, description, position, dangerous, production) VALUES (?, ?, ?, ?, ?, ?)`,
		categoryID, cmd.Name, cmd.Description, pos, class.IsDangerous, class.IsProductionRelated)
	if err != nil {
		return fmt.Errorf("insert command %q: %w", cmd.Name, err)
	}
	commandID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("command id %q: %w", cmd.Name, err)
	}
	for i, ex := range cmd.Examples {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO examples (command_id, position, text) VALUES (?, ?, ?)`,
			commandID, i, ex); err != nil {
			return fmt.Errorf("insert example %d of %q: %w", i+1, cmd.Name, err)
		}
	}
	for i, opt := range cmd.Options {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO options (command_id, position, name, description) VALUES (?, ?, ?, ?)`,
			commandID, i, opt.Name, opt.Desc); err != nil {
			return fmt.Errorf("insert option %q of %q: %w", opt.Name, cmd.Name, err)
		}
	}
	for i, tag := range cmd.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tags (command_id, position, tag) VALUES (?, ?, ?)`,
			commandID, i, tag); err != nil {
			return fmt.Errorf("insert tag %q of %q: %w", tag, cmd.Name, err)
		}
	}
	return nil
}

func insertMeta(ctx context.Context, tx *sql.Tx, c *catalog.Catalog, opts Options) error {
	meta := [][2]string{
		{"export_id", uuid.NewString()},
		{"title", opts.title()},
		{"version", opts.Version},
		{"generated_at", time.Now().UTC().Format(time.RFC3339)},
		{"command_count", strconv.Itoa(c.CountAll())},
	}
	for _, kv := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, kv[0], kv[1]); err != nil {
			return fmt.Errorf("sqlite export: insert meta %q: %w", kv[0], err)
		}
	}
	return nil
}
