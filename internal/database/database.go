package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		password_hash TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS subjects (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		color TEXT NOT NULL DEFAULT 'bg-blue-500',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS questions (
		id TEXT NOT NULL PRIMARY KEY,
		subject_id TEXT NOT NULL REFERENCES subjects(id),
		question_text TEXT NOT NULL,
		option_a TEXT NOT NULL,
		option_b TEXT NOT NULL,
		option_c TEXT NOT NULL,
		option_d TEXT NOT NULL,
		correct_answer TEXT NOT NULL, -- A, B, C or D
		explanation TEXT,
		difficulty TEXT NOT NULL DEFAULT 'Medium',
		topic TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS quizzes (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		subject_id TEXT NOT NULL REFERENCES subjects(id),
		duration_minutes INTEGER NOT NULL DEFAULT 30,
		total_questions INTEGER NOT NULL DEFAULT 20,
		difficulty TEXT NOT NULL DEFAULT 'Medium',
		is_active INTEGER NOT NULL DEFAULT 1,
		created_by TEXT REFERENCES users(id),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS quiz_attempts (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		quiz_id TEXT NOT NULL REFERENCES quizzes(id),
		score REAL NOT NULL DEFAULT 0,
		total_questions INTEGER NOT NULL,
		correct_answers INTEGER NOT NULL DEFAULT 0,
		time_taken_minutes INTEGER,
		completed_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS user_progress (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		subject_id TEXT NOT NULL REFERENCES subjects(id),
		questions_completed INTEGER NOT NULL DEFAULT 0,
		total_questions INTEGER NOT NULL DEFAULT 0,
		score REAL NOT NULL DEFAULT 0,
		last_updated DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(user_id, subject_id)
	);

	CREATE TABLE IF NOT EXISTS question_papers (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		year TEXT NOT NULL,
		subject TEXT NOT NULL,
		exam_date DATETIME,
		duration_hours REAL NOT NULL DEFAULT 2.0,
		total_questions INTEGER,
		exam_type TEXT, -- Preliminary, Main, etc.
		difficulty TEXT NOT NULL DEFAULT 'Medium',
		has_answer_key INTEGER NOT NULL DEFAULT 1,
		file_path TEXT,
		answer_key_path TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS chat_history (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		message TEXT NOT NULL,
		response TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
