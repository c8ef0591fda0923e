package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("All tables dropped successfully")

	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("All tables created successfully")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("Data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`DROP TABLE IF EXISTS blogs CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
		fmt.Printf("  Dropped: %s\n", query)
	}

	return nil
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS blogs (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			status VARCHAR(20) NOT NULL DEFAULT 'savedraft',
			author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_blogs_author_id ON blogs(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_blogs_created_at ON blogs(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_blogs_status ON blogs(status)`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w\nQuery: %s", err, query)
		}
	}

	return nil
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	// Demo account, password "demo1234" hashed with bcrypt cost 10
	query := `
		INSERT INTO users (id, email, password_hash) VALUES
		('00000000-0000-0000-0000-000000000001', 'demo@example.com',
		 '$2a$10$N9qo8uLOickgx2ZMRZoMye1J1xWvZz8Cq1e8mFyWJGKxoO9bqxGfe')
		ON CONFLICT (email) DO NOTHING
	`

	if _, err := conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	blogQuery := `
		INSERT INTO blogs (title, content, tags, status, author_id) VALUES
		('Hello world', 'First post from the demo account.', '{welcome}', 'published',
		 '00000000-0000-0000-0000-000000000001'),
		('Unfinished thoughts', '', '{notes}', 'savedraft',
		 '00000000-0000-0000-0000-000000000001')
	`

	if _, err := conn.Exec(ctx, blogQuery); err != nil {
		return fmt.Errorf("failed to seed blogs: %w", err)
	}

	return nil
}
