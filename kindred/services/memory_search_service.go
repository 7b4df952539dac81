package services

import (
	"context"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/database/repositories"
	"github.com/sahilm/fuzzy"
)

const searchScanLimit = 500

// MemorySearchService provides fuzzy title search over a relation's
// memories for the UI layer.
type MemorySearchService struct {
	memories repositories.MemoryRepository
}

func NewMemorySearchService(memories repositories.MemoryRepository) *MemorySearchService {
	return &MemorySearchService{memories: memories}
}

func (s *MemorySearchService) Search(ctx context.Context, relationID int64, query string) ([]*models.Memory, error) {
	all, err := s.memories.List(ctx, relationID, repositories.MemoryFilter{Limit: searchScanLimit})
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all, nil
	}

	titles := make([]string, len(all))
	for i, m := range all {
		titles[i] = m.Title + " " + m.Description
	}

	matches := fuzzy.Find(query, titles)
	results := make([]*models.Memory, 0, len(matches))
	for _, match := range matches {
		results = append(results, all[match.Index])
	}
	return results, nil
}
