package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests swap it
// for a mock.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type offerRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type reviewRepository struct {
	storage *Storage
}

type statsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Offers() repository.OfferRepository {
	return &offerRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Reviews() repository.ReviewRepository {
	return &reviewRepository{storage: s}
}

func (s *Storage) Stats() repository.StatsRepository {
	return &statsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            staff BOOLEAN NOT NULL DEFAULT FALSE,
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            tel TEXT NOT NULL DEFAULT '',
            location TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            working_hours TEXT NOT NULL DEFAULT '',
            file TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS offers (
            id BIGSERIAL PRIMARY KEY,
            business_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            title TEXT NOT NULL,
            image TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS offer_details (
            id BIGSERIAL PRIMARY KEY,
            offer_id BIGINT NOT NULL REFERENCES offers(id) ON DELETE CASCADE,
            title TEXT NOT NULL,
            revisions INT NOT NULL DEFAULT 0,
            delivery_time_in_days INT NOT NULL DEFAULT 1,
            price DOUBLE PRECISION NOT NULL,
            features JSONB NOT NULL DEFAULT '[]',
            offer_type TEXT NOT NULL,
            UNIQUE (offer_id, offer_type)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            customer_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            business_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            title TEXT NOT NULL,
            revisions INT NOT NULL DEFAULT 0,
            delivery_time_in_days INT NOT NULL DEFAULT 1,
            price DOUBLE PRECISION NOT NULL,
            features JSONB NOT NULL DEFAULT '[]',
            offer_type TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'in_progress',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS reviews (
            id BIGSERIAL PRIMARY KEY,
            business_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            reviewer_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            rating SMALLINT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (business_user_id, reviewer_id)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_offers_business ON offers(business_user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_offer_details_offer ON offer_details(offer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_user_id, updated_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_business ON orders(business_user_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_business ON reviews(business_user_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (username, email, password_hash, role, staff)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *user
	err := r.storage.pool.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.Role, user.Staff).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

const userColumns = `id, username, email, password_hash, role, staff, first_name, last_name,
                     tel, location, description, working_hours, file, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Staff,
		&u.FirstName, &u.LastName, &u.Tel, &u.Location, &u.Description, &u.WorkingHours,
		&u.File, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Staff,
			&u.FirstName, &u.LastName, &u.Tel, &u.Location, &u.Description, &u.WorkingHours,
			&u.File, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, patch model.ProfilePatch) (*model.User, error) {
	query := `UPDATE users SET
                  first_name = COALESCE($2, first_name),
                  last_name = COALESCE($3, last_name),
                  email = COALESCE($4, email),
                  tel = COALESCE($5, tel),
                  location = COALESCE($6, location),
                  description = COALESCE($7, description),
                  working_hours = COALESCE($8, working_hours),
                  file = COALESCE($9, file)
              WHERE id=$1
              RETURNING ` + userColumns
	row := r.storage.pool.QueryRow(ctx, query, id,
		patch.FirstName, patch.LastName, patch.Email, patch.Tel,
		patch.Location, patch.Description, patch.WorkingHours, patch.File)
	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

// --- OfferRepository implementation ---

func (r *offerRepository) Create(ctx context.Context, offer *model.Offer) (*model.Offer, error) {
	created := *offer
	created.Details = append([]model.OfferDetail(nil), offer.Details...)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOffer = `INSERT INTO offers (business_user_id, title, image, description)
                             VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOffer, offer.BusinessUserID, offer.Title, offer.Image, offer.Description).
			Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
			return err
		}

		const insertDetail = `INSERT INTO offer_details (offer_id, title, revisions, delivery_time_in_days, price, features, offer_type)
                              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
		for i := range created.Details {
			d := &created.Details[i]
			d.OfferID = created.ID
			if err := tx.QueryRow(ctx, insertDetail, created.ID, d.Title, d.Revisions,
				d.DeliveryTimeInDays, d.Price, d.Features, d.Tier).Scan(&d.ID); err != nil {
				if isUniqueViolation(err) {
					return domainErrors.ErrTierSetInvalid
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const detailColumns = `id, offer_id, title, revisions, delivery_time_in_days, price, features, offer_type`

func (r *offerRepository) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	const query = `SELECT id, business_user_id, title, image, description, created_at, updated_at
                   FROM offers WHERE id=$1`
	var o model.Offer
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.BusinessUserID, &o.Title, &o.Image, &o.Description, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	details, err := r.detailsForOffers(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Details = details[o.ID]
	return &o, nil
}

func (r *offerRepository) GetDetailByID(ctx context.Context, id int64) (*model.OfferDetail, error) {
	query := `SELECT ` + detailColumns + ` FROM offer_details WHERE id=$1`
	var d model.OfferDetail
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&d.ID, &d.OfferID, &d.Title, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, &d.Features, &d.Tier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *offerRepository) Update(ctx context.Context, offerID int64, patch model.OfferPatch) (*model.Offer, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateOffer = `UPDATE offers SET
                                 title = COALESCE($2, title),
                                 image = COALESCE($3, image),
                                 description = COALESCE($4, description),
                                 updated_at = NOW()
                             WHERE id=$1`
		tag, err := tx.Exec(ctx, updateOffer, offerID, patch.Title, patch.Image, patch.Description)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		for _, dp := range patch.Details {
			if err := updateDetail(ctx, tx, offerID, dp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, offerID)
}

func updateDetail(ctx context.Context, tx pgx.Tx, offerID int64, dp model.OfferDetailPatch) error {
	set := `title = COALESCE($3, title),
            revisions = COALESCE($4, revisions),
            delivery_time_in_days = COALESCE($5, delivery_time_in_days),
            price = COALESCE($6, price),
            features = COALESCE($7, features)`

	var features any
	if dp.Features != nil {
		features = dp.Features
	}

	var (
		tag pgconn.CommandTag
		err error
	)
	if dp.ID != nil {
		query := `UPDATE offer_details SET ` + set + ` WHERE offer_id=$1 AND id=$2`
		tag, err = tx.Exec(ctx, query, offerID, *dp.ID, dp.Title, dp.Revisions, dp.DeliveryTimeInDays, dp.Price, features)
	} else {
		query := `UPDATE offer_details SET ` + set + ` WHERE offer_id=$1 AND offer_type=$2`
		tag, err = tx.Exec(ctx, query, offerID, *dp.Tier, dp.Title, dp.Revisions, dp.DeliveryTimeInDays, dp.Price, features)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *offerRepository) List(ctx context.Context, filter model.OfferFilter) ([]model.Offer, error) {
	query := `SELECT o.id, o.business_user_id, o.title, o.image, o.description, o.created_at, o.updated_at
              FROM offers o JOIN offer_details d ON d.offer_id = o.id`

	var (
		where  []string
		having []string
		args   []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CreatorID != nil {
		where = append(where, "o.business_user_id = "+arg(*filter.CreatorID))
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		where = append(where, "(o.title ILIKE "+p+" OR o.description ILIKE "+p+")")
	}
	if filter.MinPrice != nil {
		having = append(having, "MIN(d.price) >= "+arg(*filter.MinPrice))
	}
	if filter.MaxDeliveryTime != nil {
		having = append(having, "MIN(d.delivery_time_in_days) <= "+arg(*filter.MaxDeliveryTime))
	}

	if len(where) > 0 {
		query += " WHERE " + joinAnd(where)
	}
	query += ` GROUP BY o.id, o.business_user_id, o.title, o.image, o.description, o.created_at, o.updated_at`
	if len(having) > 0 {
		query += " HAVING " + joinAnd(having)
	}
	query += " ORDER BY " + offerOrderClause(filter.Ordering)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		offers []model.Offer
		ids    []int64
	)
	for rows.Next() {
		var o model.Offer
		if err := rows.Scan(&o.ID, &o.BusinessUserID, &o.Title, &o.Image, &o.Description, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		offers = append(offers, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, nil
	}

	details, err := r.detailsForOffers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		offers[i].Details = details[offers[i].ID]
	}
	return offers, nil
}

func (r *offerRepository) detailsForOffers(ctx context.Context, offerIDs []int64) (map[int64][]model.OfferDetail, error) {
	query := `SELECT ` + detailColumns + ` FROM offer_details WHERE offer_id = ANY($1) ORDER BY offer_id, id`
	rows, err := r.storage.pool.Query(ctx, query, offerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]model.OfferDetail, len(offerIDs))
	for rows.Next() {
		var d model.OfferDetail
		if err := rows.Scan(&d.ID, &d.OfferID, &d.Title, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, &d.Features, &d.Tier); err != nil {
			return nil, err
		}
		result[d.OfferID] = append(result[d.OfferID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *offerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM offers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func offerOrderClause(ordering model.OfferOrdering) string {
	switch ordering {
	case model.OfferOrderUpdatedAtAsc:
		return "o.updated_at ASC"
	case model.OfferOrderMinPriceAsc:
		return "MIN(d.price) ASC"
	case model.OfferOrderMinPriceDesc:
		return "MIN(d.price) DESC"
	default:
		return "o.updated_at DESC"
	}
}

func joinAnd(conds []string) string {
	out := conds[0]
	for _, c := range conds[1:] {
		out += " AND " + c
	}
	return out
}

// --- OrderRepository implementation ---

const orderColumns = `id, customer_user_id, business_user_id, title, revisions, delivery_time_in_days,
                      price, features, offer_type, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.CustomerUserID, &o.BusinessUserID, &o.Title, &o.Revisions,
		&o.DeliveryTimeInDays, &o.Price, &o.Features, &o.Tier, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) CreateFromDetail(ctx context.Context, customerUserID, offerDetailID int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectDetail = `SELECT d.title, d.revisions, d.delivery_time_in_days, d.price, d.features, d.offer_type,
                                     o.business_user_id
                              FROM offer_details d JOIN offers o ON o.id = d.offer_id
                              WHERE d.id=$1`
		snapshot := model.Order{CustomerUserID: customerUserID, Status: model.OrderStatusInProgress}
		err := tx.QueryRow(ctx, selectDetail, offerDetailID).Scan(&snapshot.Title, &snapshot.Revisions,
			&snapshot.DeliveryTimeInDays, &snapshot.Price, &snapshot.Features, &snapshot.Tier,
			&snapshot.BusinessUserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const insertOrder = `INSERT INTO orders (customer_user_id, business_user_id, title, revisions,
                                 delivery_time_in_days, price, features, offer_type, status)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                             RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, snapshot.CustomerUserID, snapshot.BusinessUserID,
			snapshot.Title, snapshot.Revisions, snapshot.DeliveryTimeInDays, snapshot.Price,
			snapshot.Features, snapshot.Tier, snapshot.Status).
			Scan(&snapshot.ID, &snapshot.CreatedAt, &snapshot.UpdatedAt); err != nil {
			return err
		}
		order = &snapshot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
              WHERE customer_user_id=$1 OR business_user_id=$1
              ORDER BY updated_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerUserID, &o.BusinessUserID, &o.Title, &o.Revisions,
			&o.DeliveryTimeInDays, &o.Price, &o.Features, &o.Tier, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, actorID int64, status model.OrderStatus) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockOrder = `SELECT business_user_id, status FROM orders WHERE id=$1 FOR UPDATE`
		var (
			businessUserID int64
			current        model.OrderStatus
		)
		if err := tx.QueryRow(ctx, lockOrder, orderID).Scan(&businessUserID, &current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if businessUserID != actorID {
			return domainErrors.ErrNotOwner
		}
		if !model.CanTransition(current, status) {
			return domainErrors.ErrInvalidTransition
		}

		updateQuery := `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1 RETURNING ` + orderColumns
		updated, err := scanOrder(tx.QueryRow(ctx, updateQuery, orderID, status))
		if err != nil {
			return err
		}
		order = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) CountByBusinessAndStatus(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE business_user_id=$1 AND status=$2`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query, businessUserID, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ReviewRepository implementation ---

const reviewColumns = `id, business_user_id, reviewer_id, rating, description, created_at, updated_at`

func scanReview(row pgx.Row) (*model.Review, error) {
	var rv model.Review
	err := row.Scan(&rv.ID, &rv.BusinessUserID, &rv.ReviewerID, &rv.Rating, &rv.Description, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	const query = `INSERT INTO reviews (business_user_id, reviewer_id, rating, description)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	created := *review
	err := r.storage.pool.QueryRow(ctx, query, review.BusinessUserID, review.ReviewerID, review.Rating, review.Description).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrDuplicateReview
		}
		return nil, err
	}
	return &created, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id=$1`
	return scanReview(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *reviewRepository) Update(ctx context.Context, id int64, patch model.ReviewPatch) (*model.Review, error) {
	query := `UPDATE reviews SET
                  rating = COALESCE($2, rating),
                  description = COALESCE($3, description),
                  updated_at = NOW()
              WHERE id=$1 RETURNING ` + reviewColumns
	return scanReview(r.storage.pool.QueryRow(ctx, query, id, patch.Rating, patch.Description))
}

func (r *reviewRepository) List(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews`

	var (
		where []string
		args  []any
	)
	if filter.BusinessUserID != nil {
		args = append(args, *filter.BusinessUserID)
		where = append(where, fmt.Sprintf("business_user_id = $%d", len(args)))
	}
	if filter.ReviewerID != nil {
		args = append(args, *filter.ReviewerID)
		where = append(where, fmt.Sprintf("reviewer_id = $%d", len(args)))
	}
	if len(where) > 0 {
		query += " WHERE " + joinAnd(where)
	}
	query += " ORDER BY " + reviewOrderClause(filter.Ordering)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.BusinessUserID, &rv.ReviewerID, &rv.Rating, &rv.Description, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func reviewOrderClause(ordering model.ReviewOrdering) string {
	switch ordering {
	case model.ReviewOrderUpdatedAtAsc:
		return "updated_at ASC"
	case model.ReviewOrderRatingAsc:
		return "rating ASC"
	case model.ReviewOrderRatingDesc:
		return "rating DESC"
	default:
		return "updated_at DESC"
	}
}

// --- StatsRepository implementation ---

func (r *statsRepository) BaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	const query = `SELECT
                       (SELECT COUNT(*) FROM reviews),
                       (SELECT COALESCE(AVG(rating), 0) FROM reviews),
                       (SELECT COUNT(*) FROM users WHERE role='business'),
                       (SELECT COUNT(*) FROM offers)`
	var info model.BaseInfo
	err := r.storage.pool.QueryRow(ctx, query).
		Scan(&info.ReviewCount, &info.AverageRating, &info.BusinessProfileCount, &info.OfferCount)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// WithinTransaction executes function inside transaction boundary. Failures to
// begin or commit surface as ErrTransactionFailed; domain errors returned by
// fn pass through untouched.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrTransactionFailed, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("%w: %v", domainErrors.ErrTransactionFailed, commitErr)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
