package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Extractions table - archives produced feature vectors
		`CREATE TABLE IF NOT EXISTS extractions (
			id TEXT PRIMARY KEY,
			handedness TEXT NOT NULL DEFAULT '',
			features TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Index for listing recent extractions
		`CREATE INDEX IF NOT EXISTS idx_extractions_created_at ON extractions(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
