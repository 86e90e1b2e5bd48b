package db

type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "create users table",
		sql: `
			CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT UNIQUE NOT NULL COLLATE NOCASE,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		name: "create game records table",
		sql: `
			CREATE TABLE IF NOT EXISTS game_records (
				id TEXT PRIMARY KEY,
				user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
				number INTEGER NOT NULL,
				difficulty_option INTEGER NOT NULL,
				difficulty_name TEXT NOT NULL,
				secret_length INTEGER NOT NULL,
				attempts INTEGER NOT NULL,
				finished_at DATETIME NOT NULL,
				UNIQUE (user_id, number)
			);
			CREATE INDEX IF NOT EXISTS idx_game_records_ranking
				ON game_records(difficulty_option, attempts, finished_at);
		`,
	},
}
