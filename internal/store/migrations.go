package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	title            TEXT NOT NULL,
	category         TEXT NOT NULL DEFAULT '',
	category_color   INTEGER NOT NULL DEFAULT 0,
	background_color INTEGER,
	image_uri        TEXT NOT NULL DEFAULT '',
	image_fill_card  INTEGER NOT NULL DEFAULT 0,
	reminder         TEXT NOT NULL DEFAULT '',
	created_at       INTEGER NOT NULL,
	modified_at      INTEGER NOT NULL,
	content          TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS tasks (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	title            TEXT NOT NULL,
	category         TEXT NOT NULL DEFAULT '',
	category_color   INTEGER NOT NULL DEFAULT 0,
	background_color INTEGER,
	image_uri        TEXT NOT NULL DEFAULT '',
	image_fill_card  INTEGER NOT NULL DEFAULT 0,
	reminder         TEXT NOT NULL DEFAULT '',
	created_at       INTEGER NOT NULL,
	modified_at      INTEGER NOT NULL,
	checklist        TEXT NOT NULL DEFAULT '',
	completed        INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1))
);

CREATE TABLE IF NOT EXISTS verses (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	title            TEXT NOT NULL,
	category         TEXT NOT NULL DEFAULT '',
	category_color   INTEGER NOT NULL DEFAULT 0,
	background_color INTEGER,
	image_uri        TEXT NOT NULL DEFAULT '',
	image_fill_card  INTEGER NOT NULL DEFAULT 0,
	reminder         TEXT NOT NULL DEFAULT '',
	created_at       INTEGER NOT NULL,
	modified_at      INTEGER NOT NULL,
	verse            TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS prayers (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	title            TEXT NOT NULL,
	category         TEXT NOT NULL DEFAULT '',
	category_color   INTEGER NOT NULL DEFAULT 0,
	background_color INTEGER,
	image_uri        TEXT NOT NULL DEFAULT '',
	image_fill_card  INTEGER NOT NULL DEFAULT 0,
	reminder         TEXT NOT NULL DEFAULT '',
	created_at       INTEGER NOT NULL,
	modified_at      INTEGER NOT NULL,
	prayer           TEXT NOT NULL DEFAULT '',
	priority         INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS settings (
	id              INTEGER PRIMARY KEY,
	theme_name      TEXT NOT NULL DEFAULT 'Onyx',
	is_grid_view    INTEGER NOT NULL DEFAULT 1 CHECK(is_grid_view IN (0, 1)),
	show_category   INTEGER NOT NULL DEFAULT 1 CHECK(show_category IN (0, 1)),
	show_date_time  INTEGER NOT NULL DEFAULT 1 CHECK(show_date_time IN (0, 1))
);

CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at);
CREATE INDEX IF NOT EXISTS idx_tasks_modified_at ON tasks(modified_at);
CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);
CREATE INDEX IF NOT EXISTS idx_verses_title ON verses(title);
CREATE INDEX IF NOT EXISTS idx_prayers_priority ON prayers(priority, modified_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
