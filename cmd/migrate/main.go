package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/seu-usuario/estoque-api/pkg/config"
)

const defaultDir = "migrations"

// Aplica as migrações do schema via goose sobre o driver pgx (database/sql).
// Uso: go run ./cmd/migrate -cmd up
func main() {
	cmd := flag.String("cmd", "up", "comando goose: up|down|status")
	dir := flag.String("dir", defaultDir, "diretório das migrações")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "abrir conexão: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		fmt.Fprintf(os.Stderr, "dialeto goose: %v\n", err)
		os.Exit(1)
	}

	switch *cmd {
	case "up", "down", "status":
		if err := goose.RunContext(context.Background(), *cmd, db, *dir); err != nil {
			fmt.Fprintf(os.Stderr, "goose %s: %v\n", *cmd, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "comando desconhecido:", *cmd)
		os.Exit(1)
	}
}
