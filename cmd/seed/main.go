// Seed bulk-loads a movie catalog export into postgres. Movies and their
// genre links go in through COPY; genres are upserted row by row so reruns
// are safe.
//
// Usage: seed [catalog.json]
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

type catalogFile struct {
	Genres []string       `json:"genres"`
	Movies []catalogMovie `json:"movies"`
}

type catalogMovie struct {
	Title          string   `json:"title"`
	Overview       *string  `json:"overview"`
	Tagline        *string  `json:"tagline"`
	ReleaseDate    *string  `json:"release_date"` // YYYY-MM-DD
	RuntimeMinutes *int     `json:"runtime_minutes"`
	Budget         *int64   `json:"budget"`
	Revenue        *int64   `json:"revenue"`
	PosterURL      *string  `json:"poster_url"`
	TMDBID         *string  `json:"tmdb_id"`
	Genres         []string `json:"genres"`
}

func main() {
	log.Println("Starting catalog import...")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	jsonFile := "catalog.json"
	if len(os.Args) > 1 {
		jsonFile = os.Args[1]
	}

	data, err := readCatalog(jsonFile)
	if err != nil {
		log.Fatalf("Failed to read catalog file: %v", err)
	}
	log.Printf("Loaded %d movies and %d genres from %s", len(data.Movies), len(data.Genres), jsonFile)

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	tx, err := conn.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	genreIDs, err := importGenres(ctx, tx, data.Genres)
	if err != nil {
		log.Fatalf("Failed to import genres: %v", err)
	}
	log.Printf("Imported %d genres", len(genreIDs))

	movieCount, linkCount, err := importMovies(ctx, tx, data.Movies, genreIDs)
	if err != nil {
		log.Fatalf("Failed to import movies: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit transaction: %v", err)
	}

	log.Printf("Imported %d movies with %d genre links", movieCount, linkCount)
}

func readCatalog(path string) (*catalogFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data catalogFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func importGenres(ctx context.Context, tx pgx.Tx, names []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(names))
	for _, name := range names {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO genres (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`, name).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids[name] = id
	}
	return ids, nil
}

func importMovies(ctx context.Context, tx pgx.Tx, movies []catalogMovie, genreIDs map[string]int64) (int64, int64, error) {
	now := time.Now()
	rows := make([][]any, 0, len(movies))
	for _, m := range movies {
		var release *time.Time
		if m.ReleaseDate != nil {
			if t, err := time.Parse("2006-01-02", *m.ReleaseDate); err == nil {
				release = &t
			}
		}
		rows = append(rows, []any{
			m.Title, m.Overview, m.Tagline, release, m.RuntimeMinutes,
			m.Budget, m.Revenue, m.PosterURL, m.TMDBID, now, now,
		})
	}

	movieCount, err := tx.CopyFrom(ctx,
		pgx.Identifier{"movies"},
		[]string{"title", "overview", "tagline", "release_date", "runtime_minutes",
			"budget", "revenue", "poster_url", "tmdb_id", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, 0, err
	}

	// COPY does not return ids, so link genres by looking the movies back up
	// by title. Good enough for a seed tool working on a fresh database.
	linkRows := make([][]any, 0, len(movies))
	for _, m := range movies {
		if len(m.Genres) == 0 {
			continue
		}
		var movieID int64
		if err := tx.QueryRow(ctx,
			`SELECT id FROM movies WHERE title = $1 ORDER BY id DESC LIMIT 1`,
			m.Title).Scan(&movieID); err != nil {
			return 0, 0, err
		}
		for _, g := range m.Genres {
			genreID, ok := genreIDs[g]
			if !ok {
				continue
			}
			linkRows = append(linkRows, []any{movieID, genreID})
		}
	}

	linkCount, err := tx.CopyFrom(ctx,
		pgx.Identifier{"movie_genres"},
		[]string{"movie_id", "genre_id"},
		pgx.CopyFromRows(linkRows),
	)
	if err != nil {
		return 0, 0, err
	}

	return movieCount, linkCount, nil
}
