package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const userColumns = `user_id, email, password_hash, full_name, is_google_user, otp, otp_expires, download_count, is_premium, created_at`

const (
	createUser = `INSERT INTO users (email, password_hash, full_name, is_google_user)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	// The entitlement check and the counter increment are a single
	// conditional UPDATE so that two concurrent download requests cannot
	// both pass the free-tier cap.
	incrementDownloadCount = `UPDATE users
    SET download_count = download_count + 1
    WHERE user_id = $1 AND (is_premium OR download_count < 1)
    RETURNING download_count, is_premium;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildSetResetCode(userID int64, code string, expires time.Time) (string, []any, error) {
	return psql.Update("users").
		Set("otp", code).
		Set("otp_expires", expires).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildClearResetCode(userID int64) (string, []any, error) {
	return psql.Update("users").
		Set("otp", nil).
		Set("otp_expires", nil).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildResetPassword matches the (email, code, unexpired) tuple in the WHERE
// clause so the password swap and the code check are one atomic statement.
func buildResetPassword(email, code, newHash string, now time.Time) (string, []any, error) {
	return psql.Update("users").
		Set("password_hash", newHash).
		Set("otp", nil).
		Set("otp_expires", nil).
		Where(sq.Eq{"email": email, "otp": code}).
		Where(sq.Gt{"otp_expires": now}).
		ToSql()
}

func buildListUsers() (string, []any, error) {
	return psql.Select(userColumns).
		From("users").
		OrderBy("created_at DESC").
		ToSql()
}

func buildStats() (string, []any, error) {
	return psql.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE is_premium)",
		"COALESCE(SUM(download_count), 0)",
	).From("users").ToSql()
}
