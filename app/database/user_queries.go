package database

import (
	"database/sql"

	"uvtab-emis/app/models"
)

// GetUserByEmail fetches a staff account by email, including inactive
// accounts so the login check can distinguish them.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	err := db.QueryRow(`SELECT id, email, password, first_name, last_name, role, is_active, created_at, updated_at
		FROM users WHERE email = $1 AND deleted_at IS NULL`, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID fetches a staff account.
func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	user := &models.User{}
	err := db.QueryRow(`SELECT id, email, password, first_name, last_name, role, is_active, created_at, updated_at
		FROM users WHERE id = $1 AND deleted_at IS NULL`, id).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a staff account. Password must already be hashed.
func CreateUser(db *sql.DB, user *models.User) error {
	return db.QueryRow(`INSERT INTO users (email, password, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id, is_active, created_at, updated_at`,
		user.Email, user.Password, user.FirstName, user.LastName, string(user.Role)).Scan(
		&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
}

// UpdateUserPassword stores a new hashed password.
func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	result, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL`, hashedPassword, userID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}
