package store

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`
)
