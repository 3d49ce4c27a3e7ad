package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, reset-code bookkeeping, and the
// download counter against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// scanner abstracts *sql.Row and *sql.Rows for the shared user scan helper.
type scanner interface {
	Scan(dest ...any) error
}

// scanUser reads one users row into a models.User, mapping the nullable
// columns (password_hash, otp, otp_expires) to their Go zero values.
func scanUser(row scanner) (models.User, error) {
	var (
		u          models.User
		hash       sql.NullString
		otp        sql.NullString
		otpExpires sql.NullTime
	)

	err := row.Scan(&u.UserID, &u.Email, &hash, &u.FullName, &u.IsGoogleUser,
		&otp, &otpExpires, &u.DownloadCount, &u.IsPremium, &u.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	u.PasswordHash = hash.String
	u.OTP = otp.String
	if otpExpires.Valid {
		t := otpExpires.Time
		u.OTPExpires = &t
	}

	return u, nil
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, nullableString(user.PasswordHash), user.FullName, user.IsGoogleUser)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByEmail retrieves the account whose email matches the given value.
// Emails are stored lowercase, so the caller normalises before lookup.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// FindUserByID retrieves the account with the given identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// SetResetCode stores a pending one-time code and its expiry on the account,
// replacing any previously pending code.
func (r *userRepository) SetResetCode(ctx context.Context, userID int64, code string, expires time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetResetCode(userID, code, expires)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetResetCode").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetResetCode").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ClearResetCode removes the pending one-time code from the account, if any.
// Clearing an account without a pending code is a no-op, not an error.
func (r *userRepository) ClearResetCode(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearResetCode(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearResetCode").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.ClearResetCode").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ResetPassword sets a new password hash and clears the pending code in one
// statement, guarded by the email + code + unexpired tuple in the WHERE
// clause. Zero affected rows means the tuple did not match: wrong email,
// wrong code, or expired code. The caller receives the same
// [ErrResetCodeMismatch] for all three.
func (r *userRepository) ResetPassword(ctx context.Context, email, code, newHash string, now time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildResetPassword(email, code, newHash, now)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ResetPassword").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ResetPassword").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrResetCodeMismatch
	}

	return nil
}

// IncrementDownloadCount grants a download by incrementing the counter,
// but only while the account is entitled: premium, or still under the
// free-tier lifetime cap. The check and the increment are one conditional
// UPDATE, so concurrent requests cannot both slip past the cap.
//
// Error handling:
//   - No row updated → [ErrDownloadLimitReached] (the caller has already
//     established that the account exists).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) IncrementDownloadCount(ctx context.Context, userID int64) (models.DownloadStatus, error) {
	log := logger.FromContext(ctx)

	var status models.DownloadStatus
	row := r.db.QueryRowContext(ctx, incrementDownloadCount, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.IncrementDownloadCount").Msg("error: row is nil")
		return models.DownloadStatus{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&status.DownloadCount, &status.IsPremium); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DownloadStatus{}, ErrDownloadLimitReached
		}
		log.Err(err).Str("func", "*userRepository.IncrementDownloadCount").Msg("error: scanning error")
		return models.DownloadStatus{}, err
	}

	return status, nil
}

// ListUsers returns every account, newest first. Password hashes travel in
// the model but are excluded from JSON serialisation at the model level.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsers()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// Stats returns the admin dashboard aggregates in a single query.
func (r *userRepository) Stats(ctx context.Context) (models.AdminStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStats()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Stats").Msg("error building query")
		return models.AdminStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stats models.AdminStats
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&stats.TotalUsers, &stats.PremiumUsers, &stats.TotalDownloads); err != nil {
		log.Err(err).Str("func", "*userRepository.Stats").Msg("error: scanning error")
		return models.AdminStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}

// nullableString maps the empty string to SQL NULL, so Google-only accounts
// carry NULL password hashes rather than empty strings.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
