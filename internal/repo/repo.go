package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID           int        `json:"id"`
	Login        string     `json:"login"`
	Email        string     `json:"email"`
	Description  string     `json:"description"`
	AvatarURL    string     `json:"avatar_url"`
	IsPremium    bool       `json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
}

type PremiumTicket struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	PaymentID string    `json:"payment_id"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Selection struct {
	ID        int             `json:"id"`
	Params    json.RawMessage `json:"params"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (int64, error)
	UpdateAvatar(ctx context.Context, id int, avatarURL string) error
	SetPremiumUntil(ctx context.Context, userID int, until time.Time) error
	ClearPremium(ctx context.Context, userID int) error
	CreatePremiumTicket(ctx context.Context, userID int, paymentID string, amount int64) (int, error)
	GetPremiumTicket(ctx context.Context, id int) (PremiumTicket, error)
	GetPremiumTicketByPaymentID(ctx context.Context, paymentID string) (PremiumTicket, error)
	ListPremiumTicketsByStatus(ctx context.Context, status string) ([]PremiumTicket, error)
	UpdatePremiumTicketStatus(ctx context.Context, id int, status string) error
	SaveSelection(ctx context.Context, userID int, params, result json.RawMessage) (int, error)
	ListSelections(ctx context.Context, userID int) ([]Selection, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	var description, avatar sql.NullString
	var premiumUntil sql.NullTime

	query := "SELECT id, login, email, description, avatar_url, premium_until FROM users WHERE id=$1"

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Login, &p.Email, &description, &avatar, &premiumUntil)
	if err != nil {
		return Profile{}, err
	}
	p.Description = description.String
	p.AvatarURL = avatar.String
	if premiumUntil.Valid {
		t := premiumUntil.Time
		p.PremiumUntil = &t
		p.IsPremium = time.Now().Before(t)
	}
	return p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) (int64, error) {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	res, err := r.db.ExecContext(ctx, query, id, login, description)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresUserRepository) UpdateAvatar(ctx context.Context, id int, avatarURL string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET avatar_url=$2 WHERE id=$1", id, avatarURL)
	return err
}

func (r *PostgresUserRepository) SetPremiumUntil(ctx context.Context, userID int, until time.Time) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET premium_until=$2 WHERE id=$1", userID, until)
	return err
}

func (r *PostgresUserRepository) ClearPremium(ctx context.Context, userID int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET premium_until=NULL WHERE id=$1", userID)
	return err
}

func (r *PostgresUserRepository) CreatePremiumTicket(ctx context.Context, userID int, paymentID string, amount int64) (int, error) {
	var id int
	query := "INSERT INTO premium_tickets (user_id, payment_id, amount, status) VALUES ($1, $2, $3, 'pending') RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, paymentID, amount).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetPremiumTicket(ctx context.Context, id int) (PremiumTicket, error) {
	var t PremiumTicket
	query := "SELECT id, user_id, payment_id, amount, status, created_at FROM premium_tickets WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.UserID, &t.PaymentID, &t.Amount, &t.Status, &t.CreatedAt)
	return t, err
}

func (r *PostgresUserRepository) GetPremiumTicketByPaymentID(ctx context.Context, paymentID string) (PremiumTicket, error) {
	var t PremiumTicket
	query := "SELECT id, user_id, payment_id, amount, status, created_at FROM premium_tickets WHERE payment_id=$1"
	err := r.db.QueryRowContext(ctx, query, paymentID).
		Scan(&t.ID, &t.UserID, &t.PaymentID, &t.Amount, &t.Status, &t.CreatedAt)
	return t, err
}

func (r *PostgresUserRepository) ListPremiumTicketsByStatus(ctx context.Context, status string) ([]PremiumTicket, error) {
	query := "SELECT id, user_id, payment_id, amount, status, created_at FROM premium_tickets WHERE status=$1 ORDER BY created_at"
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PremiumTicket
	for rows.Next() {
		var t PremiumTicket
		if err := rows.Scan(&t.ID, &t.UserID, &t.PaymentID, &t.Amount, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresUserRepository) UpdatePremiumTicketStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE premium_tickets SET status=$2 WHERE id=$1", id, status)
	return err
}

func (r *PostgresUserRepository) SaveSelection(ctx context.Context, userID int, params, result json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO selections (user_id, params, result) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, []byte(params), []byte(result)).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListSelections(ctx context.Context, userID int) ([]Selection, error) {
	query := "SELECT id, params, result, created_at FROM selections WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Selection
	for rows.Next() {
		var s Selection
		if err := rows.Scan(&s.ID, &s.Params, &s.Result, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
