// cmd/teamctl/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/collabnest/teamspace/internal/auth"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	createUserCmd.Flags().StringVar(&userEmail, "email", "", "Email address")
	createUserCmd.Flags().StringVar(&userFirstName, "first-name", "", "First name")
	createUserCmd.Flags().StringVar(&userLastName, "last-name", "", "Last name")
	createUserCmd.Flags().StringVar(&userPassword, "password", "", "Password")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createUserCmd)
}

var rootCmd = &cobra.Command{
	Use:   "teamctl",
	Short: "teamctl administers the team space service",
	Long:  `teamctl creates the database schema and bootstraps accounts for the team space service.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustConnect()
		defer db.Close()

		if _, err := db.Exec(schema); err != nil {
			log.Fatalf("Failed to apply schema: %v", err)
		}

		fmt.Println("Schema applied successfully")
	},
}

var (
	userEmail     string
	userFirstName string
	userLastName  string
	userPassword  string
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a user account",
	Run: func(cmd *cobra.Command, args []string) {
		if userEmail == "" || userFirstName == "" || userPassword == "" {
			log.Fatal("--email, --first-name and --password are required")
		}

		db := mustConnect()
		defer db.Close()

		hash, err := auth.NewPasswordHasher().Hash(userPassword)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		var id string
		err = db.QueryRow(`
			INSERT INTO users (email, first_name, last_name, password_hash, status)
			VALUES ($1, $2, $3, $4, 'active')
			RETURNING id
		`, userEmail, userFirstName, userLastName, hash).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}

		fmt.Printf("Created user %s (%s)\n", userEmail, id)
	},
}

func mustConnect() *sql.DB {
	conn := dbConnString
	if conn == "" {
		conn = os.Getenv("DATABASE_URL")
	}
	if conn == "" {
		log.Fatal("No database connection string provided (use --db or DATABASE_URL)")
	}

	db, err := sql.Open("postgres", conn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if verbose {
		fmt.Println("Connected to database")
	}
	return db
}

const schema = `
CREATE EXTENSION IF NOT EXISTS citext;
CREATE EXTENSION IF NOT EXISTS pgcrypto;

DO $$ BEGIN
	CREATE TYPE user_status AS ENUM ('pending', 'active', 'suspended');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;

DO $$ BEGIN
	CREATE TYPE team_space_status AS ENUM ('active', 'archived', 'deleted');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;

DO $$ BEGIN
	CREATE TYPE team_space_role AS ENUM ('owner', 'admin', 'member');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;

DO $$ BEGIN
	CREATE TYPE document_status AS ENUM ('active', 'shared');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;

CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email CITEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL,
	last_name TEXT,
	password_hash TEXT NOT NULL,
	status user_status NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS team_spaces (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	description TEXT,
	status team_space_status NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Name uniqueness applies to active spaces only; archived and deleted
-- spaces release their name.
CREATE UNIQUE INDEX IF NOT EXISTS idx_team_spaces_active_name
	ON team_spaces (name) WHERE status = 'active';

CREATE TABLE IF NOT EXISTS team_space_members (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	team_space_id UUID NOT NULL REFERENCES team_spaces(id) ON DELETE CASCADE,
	user_id UUID NOT NULL REFERENCES users(id),
	role team_space_role NOT NULL,
	joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_team_space_user
	ON team_space_members (team_space_id, user_id);

CREATE TABLE IF NOT EXISTS folders (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	description TEXT,
	team_space_id UUID REFERENCES team_spaces(id),
	parent_id UUID REFERENCES folders(id),
	collaborative BOOLEAN NOT NULL DEFAULT FALSE,
	created_by_id UUID NOT NULL REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_folders_team_space ON folders (team_space_id);

CREATE TABLE IF NOT EXISTS documents (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	description TEXT,
	version TEXT NOT NULL DEFAULT '1.0',
	file_type TEXT,
	file_size BIGINT,
	file_path TEXT,
	status document_status NOT NULL DEFAULT 'active',
	folder_id UUID REFERENCES folders(id),
	origin_document_id UUID REFERENCES documents(id),
	owner_id UUID NOT NULL REFERENCES users(id),
	tags TEXT[] NOT NULL DEFAULT '{}',
	metadata JSONB NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_documents_folder ON documents (folder_id);
`

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
