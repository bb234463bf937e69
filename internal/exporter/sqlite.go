package exporter

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"megasuper/pkg/contracts/domain"
)

// Store persists cleaned sales and mined rules to a SQLite database file.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the database at path and ensures the schema
// exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sales_clean (
			id_da_compra TEXT NOT NULL,
			data TEXT,
			hora TEXT,
			cliente TEXT,
			produto TEXT NOT NULL,
			valor REAL,
			quantidade INTEGER,
			total REAL,
			frete REAL,
			vendedor TEXT,
			marca TEXT,
			cidade TEXT,
			estado TEXT,
			cep TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_clean_compra ON sales_clean(id_da_compra)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_clean_produto ON sales_clean(produto)`,
		`CREATE TABLE IF NOT EXISTS association_rules (
			antecedentes TEXT NOT NULL,
			consequentes TEXT NOT NULL,
			suporte REAL NOT NULL,
			confianca REAL NOT NULL,
			lift REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_association_rules_lift ON association_rules(lift)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// SaveCleanedBatch replaces the sales_clean table contents with the given
// batch inside a single transaction.
func (s *Store) SaveCleanedBatch(records []domain.SaleRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sales_clean`); err != nil {
		return fmt.Errorf("failed to clear sales_clean: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sales_clean (
		id_da_compra, data, hora, cliente, produto, valor, quantidade,
		total, frete, vendedor, marca, cidade, estado, cep
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		_, err := stmt.Exec(
			r.PurchaseID, r.Date, r.Time, r.Customer, r.Product,
			nullableFloat(r.Value), r.Quantity, nullableFloat(r.Total),
			nullableFloat(r.ShippingFee), r.Seller, r.Brand,
			r.City, r.State, r.PostalCode,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record %s: %w", r.PurchaseID, err)
		}
	}
	return tx.Commit()
}

// SaveRules replaces the association_rules table contents with the given
// rule set.
func (s *Store) SaveRules(rules []domain.AssociationRule) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM association_rules`); err != nil {
		return fmt.Errorf("failed to clear association_rules: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO association_rules (
		antecedentes, consequentes, suporte, confianca, lift
	) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rule := range rules {
		_, err := stmt.Exec(
			strings.Join(rule.Antecedents, ", "),
			strings.Join(rule.Consequents, ", "),
			rule.Support, rule.Confidence, rule.Lift,
		)
		if err != nil {
			return fmt.Errorf("failed to insert rule: %w", err)
		}
	}
	return tx.Commit()
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
