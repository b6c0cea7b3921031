package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brasketbro/lovenest/internal/models"
)

// PgStorage is the Postgres-backed Storage, selected when DATABASE_URL is
// set. The HTTP surface is identical to the in-memory store.
type PgStorage struct {
	pool *pgxpool.Pool
}

const pgSchema = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS photos (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	image_url TEXT NOT NULL,
	date TEXT NOT NULL,
	category TEXT NOT NULL,
	caption TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS messages (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	sender TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS milestones (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	date TEXT NOT NULL,
	description TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS bucket_items (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	target_date TEXT,
	notes TEXT,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	completed_date TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS relationship (
	id SERIAL PRIMARY KEY,
	start_date TEXT NOT NULL,
	partner1 TEXT NOT NULL,
	partner2 TEXT NOT NULL
);
`

// NewPgStorage connects, bootstraps the schema and seeds the initial records
// when the relationship table is empty.
func NewPgStorage(connString string) (*PgStorage, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	s := &PgStorage{pool: pool}
	if err := s.init(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PgStorage) init(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, pgSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM relationship`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := s.CreateRelationship(ctx, models.InsertRelationship{
		StartDate: "2024-03-10",
		Partner1:  "Mehak",
		Partner2:  "Swapnil",
	})
	if err != nil {
		return err
	}
	seedMilestones := []models.InsertMilestone{
		{Title: "Started Talking", Date: "2024-03-10", Description: strptr("We met on a dating app and started talking.")},
		{Title: "Instagram Connection", Date: "2024-03-13", Description: strptr("We moved our conversation to Instagram.")},
		{Title: "Official Relationship", Date: "2024-03-15", Description: strptr("Swapnil proposed and asked Mehak to be his girlfriend. She said yes!")},
	}
	for _, m := range seedMilestones {
		if _, err := s.CreateMilestone(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// Users

func (s *PgStorage) GetUser(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PgStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PgStorage) CreateUser(ctx context.Context, insert models.InsertUser) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, username, password`,
		insert.Username, insert.Password).
		Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Photos

const photoColumns = `id, title, image_url, date, category, caption, created_at`

func scanPhoto(row pgx.Row) (*models.Photo, error) {
	var p models.Photo
	err := row.Scan(&p.ID, &p.Title, &p.ImageURL, &p.Date, &p.Category, &p.Caption, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PgStorage) queryPhotos(ctx context.Context, query string, args ...any) ([]models.Photo, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]models.Photo, 0)
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.ImageURL, &p.Date, &p.Category, &p.Caption, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (s *PgStorage) GetPhotos(ctx context.Context) ([]models.Photo, error) {
	return s.queryPhotos(ctx,
		`SELECT `+photoColumns+` FROM photos ORDER BY created_at DESC, id DESC`)
}

func (s *PgStorage) GetPhotoByID(ctx context.Context, id int) (*models.Photo, error) {
	return scanPhoto(s.pool.QueryRow(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE id = $1`, id))
}

func (s *PgStorage) GetPhotosByCategory(ctx context.Context, category string) ([]models.Photo, error) {
	return s.queryPhotos(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE category = $1 ORDER BY created_at DESC, id DESC`, category)
}

func (s *PgStorage) CreatePhoto(ctx context.Context, insert models.InsertPhoto) (*models.Photo, error) {
	return scanPhoto(s.pool.QueryRow(ctx,
		`INSERT INTO photos (title, image_url, date, category, caption)
		 VALUES ($1, $2, $3, $4, $5) RETURNING `+photoColumns,
		insert.Title, insert.ImageURL, insert.Date, insert.Category, insert.Caption))
}

func (s *PgStorage) UpdatePhoto(ctx context.Context, id int, update models.PhotoUpdate) (*models.Photo, error) {
	return scanPhoto(s.pool.QueryRow(ctx,
		`UPDATE photos SET
			title = COALESCE($2, title),
			image_url = COALESCE($3, image_url),
			date = COALESCE($4, date),
			category = COALESCE($5, category),
			caption = COALESCE($6, caption)
		 WHERE id = $1 RETURNING `+photoColumns,
		id, update.Title, update.ImageURL, update.Date, update.Category, update.Caption))
}

func (s *PgStorage) DeletePhoto(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Messages

func (s *PgStorage) GetMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, content, sender, created_at FROM messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Title, &m.Content, &m.Sender, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *PgStorage) GetMessageByID(ctx context.Context, id int) (*models.Message, error) {
	var m models.Message
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, content, sender, created_at FROM messages WHERE id = $1`, id).
		Scan(&m.ID, &m.Title, &m.Content, &m.Sender, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *PgStorage) CreateMessage(ctx context.Context, insert models.InsertMessage) (*models.Message, error) {
	var m models.Message
	err := s.pool.QueryRow(ctx,
		`INSERT INTO messages (title, content, sender)
		 VALUES ($1, $2, $3) RETURNING id, title, content, sender, created_at`,
		insert.Title, insert.Content, insert.Sender).
		Scan(&m.ID, &m.Title, &m.Content, &m.Sender, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *PgStorage) DeleteMessage(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Milestones

func (s *PgStorage) GetMilestones(ctx context.Context) ([]models.Milestone, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, date, description, created_at FROM milestones ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	milestones := make([]models.Milestone, 0)
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.ID, &m.Title, &m.Date, &m.Description, &m.CreatedAt); err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func (s *PgStorage) GetMilestoneByID(ctx context.Context, id int) (*models.Milestone, error) {
	var m models.Milestone
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, date, description, created_at FROM milestones WHERE id = $1`, id).
		Scan(&m.ID, &m.Title, &m.Date, &m.Description, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *PgStorage) CreateMilestone(ctx context.Context, insert models.InsertMilestone) (*models.Milestone, error) {
	var m models.Milestone
	err := s.pool.QueryRow(ctx,
		`INSERT INTO milestones (title, date, description)
		 VALUES ($1, $2, $3) RETURNING id, title, date, description, created_at`,
		insert.Title, insert.Date, insert.Description).
		Scan(&m.ID, &m.Title, &m.Date, &m.Description, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *PgStorage) DeleteMilestone(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM milestones WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Bucket list

const bucketColumns = `id, title, target_date, notes, completed, completed_date, created_at`

func scanBucketItem(row pgx.Row) (*models.BucketItem, error) {
	var b models.BucketItem
	err := row.Scan(&b.ID, &b.Title, &b.TargetDate, &b.Notes, &b.Completed, &b.CompletedDate, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *PgStorage) GetBucketItems(ctx context.Context) ([]models.BucketItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+bucketColumns+` FROM bucket_items ORDER BY completed DESC, created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.BucketItem, 0)
	for rows.Next() {
		var b models.BucketItem
		if err := rows.Scan(&b.ID, &b.Title, &b.TargetDate, &b.Notes, &b.Completed, &b.CompletedDate, &b.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (s *PgStorage) GetBucketItemByID(ctx context.Context, id int) (*models.BucketItem, error) {
	return scanBucketItem(s.pool.QueryRow(ctx,
		`SELECT `+bucketColumns+` FROM bucket_items WHERE id = $1`, id))
}

func (s *PgStorage) CreateBucketItem(ctx context.Context, insert models.InsertBucketItem) (*models.BucketItem, error) {
	return scanBucketItem(s.pool.QueryRow(ctx,
		`INSERT INTO bucket_items (title, target_date, notes, completed, completed_date)
		 VALUES ($1, $2, $3, $4, $5) RETURNING `+bucketColumns,
		insert.Title, insert.TargetDate, insert.Notes, insert.Completed, insert.CompletedDate))
}

func (s *PgStorage) UpdateBucketItem(ctx context.Context, id int, update models.BucketItemUpdate) (*models.BucketItem, error) {
	return scanBucketItem(s.pool.QueryRow(ctx,
		`UPDATE bucket_items SET
			title = COALESCE($2, title),
			target_date = COALESCE($3, target_date),
			notes = COALESCE($4, notes),
			completed = COALESCE($5, completed),
			completed_date = COALESCE($6, completed_date)
		 WHERE id = $1 RETURNING `+bucketColumns,
		id, update.Title, update.TargetDate, update.Notes, update.Completed, update.CompletedDate))
}

func (s *PgStorage) ToggleBucketItemCompletion(ctx context.Context, id int, completed bool, completedDate *string) (*models.BucketItem, error) {
	return scanBucketItem(s.pool.QueryRow(ctx,
		`UPDATE bucket_items SET
			completed = $2,
			completed_date = CASE WHEN $2 THEN COALESCE($3, to_char(now(), 'YYYY-MM-DD')) ELSE NULL END
		 WHERE id = $1 RETURNING `+bucketColumns,
		id, completed, completedDate))
}

func (s *PgStorage) DeleteBucketItem(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM bucket_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Relationship

func (s *PgStorage) GetRelationship(ctx context.Context) (*models.Relationship, error) {
	var r models.Relationship
	err := s.pool.QueryRow(ctx,
		`SELECT id, start_date, partner1, partner2 FROM relationship ORDER BY id ASC LIMIT 1`).
		Scan(&r.ID, &r.StartDate, &r.Partner1, &r.Partner2)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *PgStorage) CreateRelationship(ctx context.Context, insert models.InsertRelationship) (*models.Relationship, error) {
	var r models.Relationship
	err := s.pool.QueryRow(ctx,
		`INSERT INTO relationship (start_date, partner1, partner2)
		 VALUES ($1, $2, $3) RETURNING id, start_date, partner1, partner2`,
		insert.StartDate, insert.Partner1, insert.Partner2).
		Scan(&r.ID, &r.StartDate, &r.Partner1, &r.Partner2)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *PgStorage) UpdateRelationship(ctx context.Context, id int, update models.RelationshipUpdate) (*models.Relationship, error) {
	var r models.Relationship
	err := s.pool.QueryRow(ctx,
		`UPDATE relationship SET
			start_date = COALESCE($2, start_date),
			partner1 = COALESCE($3, partner1),
			partner2 = COALESCE($4, partner2)
		 WHERE id = $1 RETURNING id, start_date, partner1, partner2`,
		id, update.StartDate, update.Partner1, update.Partner2).
		Scan(&r.ID, &r.StartDate, &r.Partner1, &r.Partner2)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *PgStorage) Close() {
	s.pool.Close()
}
