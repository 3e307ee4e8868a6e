package services

import (
	"context"

	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// DatabaseService handles whole-schema maintenance operations
type DatabaseService struct {
	databaseRepo *repositories.DatabaseRepository
	userRepo     *repositories.UserRepository
}

// NewDatabaseService creates a new database service instance
func NewDatabaseService(databaseRepo *repositories.DatabaseRepository, userRepo *repositories.UserRepository) *DatabaseService {
	return &DatabaseService{
		databaseRepo: databaseRepo,
		userRepo:     userRepo,
	}
}

// CleanDatabase purges every academic table in one transaction and returns
// per-table deleted-row counts. Login accounts survive; running the purge
// against an already-empty schema succeeds with zero counts.
func (s *DatabaseService) CleanDatabase(ctx context.Context) (map[string]int64, error) {
	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := s.databaseRepo.Purge(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, count := range deleted {
		total += count
	}
	logger.Warn().Int64("rowsDeleted", total).Int64("usersPreserved", userCount).Msg("Academic data purged")

	return deleted, nil
}

// GetTableCounts reports the row count of every academic table
func (s *DatabaseService) GetTableCounts(ctx context.Context) (map[string]int64, error) {
	return s.databaseRepo.TableCounts(ctx)
}
