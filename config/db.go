package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var sqlDB *sql.DB

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens the plain database/sql handle and runs the schema migration.
func BootDB() (*sql.DB, error) {
	url := GetDatabaseURL()
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if sqlDB == nil {
		sqlDB = db
	}

	if err := autoMigrate(sqlDB); err != nil {
		return sqlDB, err
	}

	return sqlDB, nil
}

// BootGorm opens the ORM handle used by the upsert-style repositories.
func BootGorm() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(GetDatabaseURL()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}
	return db, nil
}

// BootPgxPool opens the pool used by the transactional member repository.
func BootPgxPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

func autoMigrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS members (
		id SERIAL PRIMARY KEY,
		member_no VARCHAR(30) NOT NULL,
		name VARCHAR(150) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		telephone VARCHAR(30) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		about TEXT NOT NULL DEFAULT '',
		marital_status VARCHAR(30) NOT NULL DEFAULT '',
		profile_image TEXT NOT NULL DEFAULT '',
		status VARCHAR(15) NOT NULL DEFAULT 'pending',
		access_level VARCHAR(15) NOT NULL DEFAULT 'basic',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT members_member_no_key UNIQUE (member_no),
		CONSTRAINT members_email_key UNIQUE (email)
	);

	CREATE TABLE IF NOT EXISTS referrals (
		id SERIAL PRIMARY KEY,
		member_id INTEGER NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		referral_code VARCHAR(30) NOT NULL,
		referral_name VARCHAR(150) NOT NULL DEFAULT '',
		referred_by INTEGER NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS business_profiles (
		id SERIAL PRIMARY KEY,
		member_id INTEGER NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		company_name VARCHAR(255) NOT NULL,
		company_email VARCHAR(255) NOT NULL DEFAULT '',
		company_phone VARCHAR(30) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		website VARCHAR(255) NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		profile_image TEXT NOT NULL DEFAULT '',
		media_gallery TEXT,
		media_type VARCHAR(10),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS family_records (
		id SERIAL PRIMARY KEY,
		member_id INTEGER NOT NULL UNIQUE REFERENCES members(id) ON DELETE CASCADE,
		father_name VARCHAR(150) NOT NULL DEFAULT '',
		father_contact VARCHAR(30) NOT NULL DEFAULT '',
		mother_name VARCHAR(150) NOT NULL DEFAULT '',
		mother_contact VARCHAR(30) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		spouse_name VARCHAR(150) NOT NULL DEFAULT '',
		spouse_contact VARCHAR(30) NOT NULL DEFAULT '',
		number_of_children INTEGER NOT NULL DEFAULT 0,
		children_names TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ratings (
		id SERIAL PRIMARY KEY,
		business_profile_id INTEGER NOT NULL REFERENCES business_profiles(id) ON DELETE CASCADE,
		member_id INTEGER NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		score INTEGER NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT idx_rating_business_member UNIQUE (business_profile_id, member_id)
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id SERIAL PRIMARY KEY,
		member_id INTEGER NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		kind VARCHAR(30) NOT NULL,
		body TEXT NOT NULL DEFAULT '',
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	);
	`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
