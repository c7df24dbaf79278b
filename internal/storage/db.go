package storage

import (
	"database/sql"
	"time"

	"travel-planner/internal/models"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection.
type DB struct {
	conn *sql.DB
}

// NewDB opens a database connection and runs migrations.
func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT,
			destination TEXT,
			mode TEXT,
			cost INTEGER,
			date TEXT,
			category TEXT
		)`,
		// The password and security_answer columns keep their historical
		// names but hold bcrypt hashes, never plain text.
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password TEXT,
			security_answer TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			expires_at DATETIME NOT NULL,
			last_activity DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// RegisterUser inserts a new user row. If the username is already taken the
// insert is silently ignored and the existing row is left untouched.
func (db *DB) RegisterUser(username, passwordHash, answerHash string) error {
	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO users (username, password, security_answer) VALUES (?, ?, ?)",
		username, passwordHash, answerHash,
	)
	return err
}

// GetUserByUsername retrieves a user by username.
// Returns sql.ErrNoRows when no such user exists.
func (db *DB) GetUserByUsername(username string) (*models.User, error) {
	row := db.conn.QueryRow(
		"SELECT username, password, security_answer FROM users WHERE username = ?",
		username,
	)

	var u models.User
	if err := row.Scan(&u.Username, &u.PasswordHash, &u.SecurityAnswerHash); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword replaces the stored password hash for a user.
func (db *DB) UpdatePassword(username, passwordHash string) error {
	_, err := db.conn.Exec(
		"UPDATE users SET password = ? WHERE username = ?",
		passwordHash, username,
	)
	return err
}

// UserCount returns the number of users in the database.
func (db *DB) UserCount() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// AddTrip appends one trip row and returns its generated id.
func (db *DB) AddTrip(t models.Trip) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO trips (username, destination, mode, cost, date, category) VALUES (?, ?, ?, ?, ?, ?)",
		t.Username, t.Destination, t.Mode, t.Cost, t.Date, t.Category,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetTrips retrieves all trips for a user in insertion order.
func (db *DB) GetTrips(username string) ([]models.Trip, error) {
	return db.queryTrips(
		"SELECT id, username, destination, mode, cost, date, category FROM trips WHERE username = ? ORDER BY id",
		username,
	)
}

// GetTripsByDate retrieves all trips for a user ordered by date ascending.
// Dates are TEXT, so the order is lexicographic; ISO dates sort correctly.
func (db *DB) GetTripsByDate(username string) ([]models.Trip, error) {
	return db.queryTrips(
		"SELECT id, username, destination, mode, cost, date, category FROM trips WHERE username = ? ORDER BY date, id",
		username,
	)
}

func (db *DB) queryTrips(query string, args ...any) ([]models.Trip, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.Username, &t.Destination, &t.Mode, &t.Cost, &t.Date, &t.Category); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}

// DestinationCount holds per-destination visit statistics.
type DestinationCount struct {
	Destination string
	Count       int
}

// DestinationCounts returns visit counts per destination, most visited
// first. Ties go to the destination that was booked earliest.
func (db *DB) DestinationCounts(username string) ([]DestinationCount, error) {
	rows, err := db.conn.Query(`
		SELECT destination, COUNT(*) AS visits
		FROM trips
		WHERE username = ?
		GROUP BY destination
		ORDER BY visits DESC, MIN(id)
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []DestinationCount
	for rows.Next() {
		var dc DestinationCount
		if err := rows.Scan(&dc.Destination, &dc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}

	return counts, rows.Err()
}

// CreateSession creates a new session for a user.
func (db *DB) CreateSession(token, username string, expiresAt time.Time) error {
	now := time.Now()
	_, err := db.conn.Exec(
		"INSERT INTO sessions (token, username, expires_at, last_activity) VALUES (?, ?, ?, ?)",
		token, username, expiresAt, now,
	)
	return err
}

// SessionInfo holds session validation data.
type SessionInfo struct {
	User         *models.User
	LastActivity time.Time
	ExpiresAt    time.Time
}

// ValidateSession checks if a session token is valid and returns the associated user.
func (db *DB) ValidateSession(token string) (*models.User, error) {
	info, err := db.ValidateSessionWithInfo(token)
	if err != nil {
		return nil, err
	}
	return info.User, nil
}

// ValidateSessionWithInfo checks if a session token is valid and returns session details.
func (db *DB) ValidateSessionWithInfo(token string) (*SessionInfo, error) {
	row := db.conn.QueryRow(`
		SELECT u.username, u.password, u.security_answer, s.last_activity, s.expires_at
		FROM sessions s
		JOIN users u ON s.username = u.username
		WHERE s.token = ? AND s.expires_at > CURRENT_TIMESTAMP
	`, token)

	var u models.User
	var lastActivity, expiresAt time.Time
	if err := row.Scan(&u.Username, &u.PasswordHash, &u.SecurityAnswerHash, &lastActivity, &expiresAt); err != nil {
		return nil, err
	}
	return &SessionInfo{
		User:         &u,
		LastActivity: lastActivity,
		ExpiresAt:    expiresAt,
	}, nil
}

// RenewSession updates the last_activity and expires_at for a session.
func (db *DB) RenewSession(token string, newExpiresAt time.Time) error {
	now := time.Now()
	_, err := db.conn.Exec(
		"UPDATE sessions SET last_activity = ?, expires_at = ? WHERE token = ?",
		now, newExpiresAt, token,
	)
	return err
}

// DeleteSession removes a session by token.
func (db *DB) DeleteSession(token string) error {
	_, err := db.conn.Exec("DELETE FROM sessions WHERE token = ?", token)
	return err
}

// CleanExpiredSessions removes all expired sessions.
func (db *DB) CleanExpiredSessions() error {
	_, err := db.conn.Exec("DELETE FROM sessions WHERE expires_at <= CURRENT_TIMESTAMP")
	return err
}
