package services

import (
	"context"
	"testing"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/database/repositories/mock"
	"go.uber.org/mock/gomock"
)

func Test_memorySearchService_Search(t *testing.T) {
	repo := mock.NewMockMemoryRepository(gomock.NewController(t))
	memories := []*models.Memory{
		{ID: 1, Title: "The day we met", Description: "The very first conversation."},
		{ID: 2, Title: "A thoughtful gift", Description: "A jewelry, given just because."},
		{ID: 3, Title: "A date to remember", Description: "A dinner date."},
	}
	repo.EXPECT().
		List(gomock.Any(), int64(1), gomock.Any()).
		Return(memories, nil).
		AnyTimes()

	s := NewMemorySearchService(repo)

	got, err := s.Search(context.Background(), 1, "jewelry")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Search(jewelry) = %v, want memory 2", got)
	}

	// Fuzzy: partial and out-of-order characters still match.
	got, err = s.Search(context.Background(), 1, "dte")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) == 0 {
		t.Error("Search(dte) matched nothing, want fuzzy hit")
	}

	// Empty query returns everything.
	got, err = s.Search(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Search(\"\") returned %d memories, want 3", len(got))
	}
}
