package store

import (
	"context"
	"fmt"

	"practice-ledger/core/database"
	"practice-ledger/core/player"

	"gorm.io/gorm"
)

// PlayerRow represents the 'players' table.
type PlayerRow struct {
	Name          string `gorm:"column:name;primaryKey;size:191"`
	Ranking       int    `gorm:"column:ranking;not null;default:0"`
	NumberOfGames int    `gorm:"column:number_of_games;not null;default:0"`
}

// TableName overrides the table name.
func (PlayerRow) TableName() string {
	return "players"
}

// DBStore mirrors the player store into a database table.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a store backed by the players table.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Name returns the backend name.
func (s *DBStore) Name() string {
	return BackendDB
}

// Migrate creates or updates the players table.
func (s *DBStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&PlayerRow{})
}

// Verify checks that the players table has every required column.
func (s *DBStore) Verify() error {
	missing, err := database.MissingColumns(s.db, PlayerRow{}.TableName(), "name", "ranking", "number_of_games")
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("players table is missing columns %v", missing)
	}
	return nil
}

// Load returns one encoded record per row. A missing table is an empty store.
func (s *DBStore) Load(ctx context.Context) ([]string, error) {
	db := s.db.WithContext(ctx)
	if !db.Migrator().HasTable(&PlayerRow{}) {
		return nil, nil
	}

	var rows []PlayerRow
	if err := db.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = player.Player{
			Name:          row.Name,
			Ranking:       row.Ranking,
			NumberOfGames: row.NumberOfGames,
		}.Encode()
	}
	return lines, nil
}

// Save replaces the table content with the given records in one transaction.
func (s *DBStore) Save(ctx context.Context, lines []string) error {
	rows := make([]PlayerRow, 0, len(lines))
	for _, line := range lines {
		p, err := player.Decode(line)
		if err != nil {
			return err
		}
		rows = append(rows, PlayerRow{
			Name:          p.Name,
			Ranking:       p.Ranking,
			NumberOfGames: p.NumberOfGames,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&PlayerRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear players: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("failed to insert players: %w", err)
		}
		return nil
	})
}
