package database

import (
	"context"
	"database/sql"
	"log"
)

// schema lists the idempotent DDL for the catalog tables. Movies store
// genres/cast/director as denormalized free text; the lookup tables
// (actors, directors, genres, catalog) are kept for curation tooling and
// are not joined against movies.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL UNIQUE,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		phone VARCHAR(30) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	// `cast` is a reserved word in MySQL and must stay quoted.
	"CREATE TABLE IF NOT EXISTS movies (\n" +
		"	movie_id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,\n" +
		"	user_id VARCHAR(64) NOT NULL,\n" +
		"	catalog_id VARCHAR(64) NOT NULL DEFAULT '',\n" +
		"	title VARCHAR(255) NOT NULL,\n" +
		"	description TEXT,\n" +
		"	runtime VARCHAR(255) NOT NULL DEFAULT '',\n" +
		"	release_date VARCHAR(50) NOT NULL DEFAULT '',\n" +
		"	genres VARCHAR(255) NOT NULL DEFAULT '',\n" +
		"	`cast` VARCHAR(255) NOT NULL DEFAULT '',\n" +
		"	director VARCHAR(255) NOT NULL DEFAULT '',\n" +
		"	producer VARCHAR(255) NOT NULL DEFAULT '',\n" +
		"	keywords VARCHAR(255) NOT NULL DEFAULT '',\n" +
		"	images VARCHAR(255) NOT NULL DEFAULT '',\n" +
		"	video_link TEXT,\n" +
		"	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,\n" +
		"	KEY idx_movies_user (user_id),\n" +
		"	CONSTRAINT fk_movies_user FOREIGN KEY (user_id) REFERENCES users (user_id)\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	`CREATE TABLE IF NOT EXISTS actors (
		actor_id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		birthdate DATE NULL,
		gender VARCHAR(10) NOT NULL DEFAULT '',
		nationality VARCHAR(255) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS directors (
		director_id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		birthdate DATE NULL,
		nationality VARCHAR(255) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS genres (
		genre_id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS catalog (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		catalog_id VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Init creates the catalog tables when they do not exist yet.
func Init(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}

// Seed inserts sample users and movies when the users table is empty.
// The sample passwords are already bcrypt hashes of "hello".
func Seed(ctx context.Context, db *sql.DB, sampleHash string) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	log.Println("seeding sample catalog data")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	users := [][]string{
		{"1", "Unyime Ephraim Udoh", "udohunyime0@gmail.com", "09025928492"},
		{"873070981322904351892697539791", "Ambrose Ali", "ambrose@gmail.com", "08136146684"},
	}
	for _, u := range users {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO users (user_id, full_name, email, password_hash, phone) VALUES (?,?,?,?,?)`,
			u[0], u[1], u[2], sampleHash, u[3]); err != nil {
			return err
		}
	}

	movies := [][]string{
		{"1", "1", "The Dark Knight", "A battle between Batman and Joker", "152", "2008-07-18",
			"Action, Crime", "Heath Ledger, Christian Bale, Morgan Freeman", "Christopher Nolan",
			"Warner Bros.", "Batman, Joker, Gotham", "cover4.jpg", "https://www.youtube.com/watch?v=EXeTwQWrcwY"},
		{"1", "2", "Inception", "A thief enters dreams to steal secrets", "148", "2010-07-16",
			"Sci-Fi, Thriller", "Leonardo DiCaprio, Joseph Gordon-Levitt, Tom Hardy", "Christopher Nolan",
			"Legendary Pictures", "Dreams, Heist, Mind", "cover8.jpg", "https://www.youtube.com/watch?v=YoHD9XEInc0"},
		{"1", "3", "The Matrix", "A hacker discovers reality is a simulation.", "136", "1999-03-31",
			"Sci-Fi, Action", "Keanu Reeves, Laurence Fishburne", "Lana Wachowski, Lilly Wachowski",
			"Joel Silver", "matrix, simulation, action", "matrix.jpg", "https://www.youtube.com/watch?v=vKQi3bBA1y8"},
	}
	for _, m := range movies {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO movies (user_id, catalog_id, title, description, runtime, release_date,"+
				" genres, `cast`, director, producer, keywords, images, video_link)"+
				" VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)",
			m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8], m[9], m[10], m[11], m[12]); err != nil {
			return err
		}
	}
	return nil
}
