package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/restaurant-platform/menu-service/internal/models"
	"github.com/restaurant-platform/menu-service/internal/repository"
)

func validInput() models.MenuItemInput {
	return models.MenuItemInput{
		Name:        "Caprese Salad",
		Description: "Fresh mozzarella, tomatoes and basil with balsamic glaze",
		Price:       9.49,
		Category:    models.CategoryAppetizer,
		Ingredients: []string{"mozzarella", "tomatoes", "basil"},
	}
}

func newTestService() *MenuService {
	return NewMenuService(repository.NewInMemoryMenuRepository())
}

func TestCreateItem_Valid(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, validInput())
	if err != nil {
		t.Fatalf("CreateItem returned error: %v", err)
	}

	if created.ID != 7 {
		t.Errorf("expected ID 7 after 6 seeded items, got %d", created.ID)
	}

	// Absent available defaults to true
	if !created.Available {
		t.Error("expected available to default to true")
	}

	found, err := svc.GetItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetItem after CreateItem returned error: %v", err)
	}
	if found.Name != "Caprese Salad" {
		t.Errorf("expected name 'Caprese Salad', got %s", found.Name)
	}
}

func TestCreateItem_ExplicitAvailableFalse(t *testing.T) {
	svc := newTestService()

	input := validInput()
	available := false
	input.Available = &available

	created, err := svc.CreateItem(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateItem returned error: %v", err)
	}

	if created.Available {
		t.Error("expected explicit available=false to be stored")
	}
}

func TestCreateItem_FieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.MenuItemInput)
		wantMsg string
	}{
		{
			name:    "name too short",
			mutate:  func(in *models.MenuItemInput) { in.Name = "ab" },
			wantMsg: "Name",
		},
		{
			name:    "name empty",
			mutate:  func(in *models.MenuItemInput) { in.Name = "" },
			wantMsg: "Name",
		},
		{
			name:    "description too short",
			mutate:  func(in *models.MenuItemInput) { in.Description = "too short" },
			wantMsg: "Description",
		},
		{
			name:    "price zero",
			mutate:  func(in *models.MenuItemInput) { in.Price = 0 },
			wantMsg: "Price",
		},
		{
			name:    "price negative",
			mutate:  func(in *models.MenuItemInput) { in.Price = -2.50 },
			wantMsg: "Price",
		},
		{
			name:    "unknown category",
			mutate:  func(in *models.MenuItemInput) { in.Category = "snack" },
			wantMsg: "Category",
		},
		{
			name:    "empty ingredients",
			mutate:  func(in *models.MenuItemInput) { in.Ingredients = []string{} },
			wantMsg: "Ingredients",
		},
		{
			name:    "nil ingredients",
			mutate:  func(in *models.MenuItemInput) { in.Ingredients = nil },
			wantMsg: "Ingredients",
		},
		{
			name:    "empty ingredient element",
			mutate:  func(in *models.MenuItemInput) { in.Ingredients = []string{"", "tomatoes"} },
			wantMsg: "Ingredients",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()

			input := validInput()
			tt.mutate(&input)

			_, err := svc.CreateItem(context.Background(), input)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}

			if !containsMessage(verr.Messages, tt.wantMsg) {
				t.Errorf("expected a message referencing %q, got %v", tt.wantMsg, verr.Messages)
			}
		})
	}
}

func TestCreateItem_CollectsAllViolations(t *testing.T) {
	svc := newTestService()

	input := models.MenuItemInput{
		Name:        "ab",
		Description: "short",
		Price:       -1,
		Category:    "snack",
		Ingredients: nil,
	}

	_, err := svc.CreateItem(context.Background(), input)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Every violated rule is reported, not just the first
	if len(verr.Messages) != 5 {
		t.Errorf("expected 5 messages, got %d: %v", len(verr.Messages), verr.Messages)
	}
	for _, field := range []string{"Name", "Description", "Price", "Category", "Ingredients"} {
		if !containsMessage(verr.Messages, field) {
			t.Errorf("expected a message referencing %q, got %v", field, verr.Messages)
		}
	}
}

func TestCreateItem_NoMutationOnFailure(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	input := validInput()
	input.Price = 0

	if _, err := svc.CreateItem(ctx, input); err == nil {
		t.Fatal("expected validation error")
	}

	items, err := svc.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 6 {
		t.Errorf("expected collection unchanged at 6 items, got %d", len(items))
	}
}

func TestUpdateItem_RoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	input := validInput()
	input.Name = "Seared Tuna"
	input.Description = "Sesame-crusted tuna steak with wasabi aioli"
	input.Category = models.CategoryEntree

	updated, err := svc.UpdateItem(ctx, 4, input)
	if err != nil {
		t.Fatalf("UpdateItem returned error: %v", err)
	}
	if updated.ID != 4 {
		t.Errorf("expected ID 4 to be preserved, got %d", updated.ID)
	}

	// Full overwrite semantics: every field matches the payload except id
	found, err := svc.GetItem(ctx, 4)
	if err != nil {
		t.Fatalf("GetItem after UpdateItem returned error: %v", err)
	}
	if found.Name != input.Name {
		t.Errorf("expected name %q, got %q", input.Name, found.Name)
	}
	if found.Description != input.Description {
		t.Errorf("expected description %q, got %q", input.Description, found.Description)
	}
	if found.Category != input.Category {
		t.Errorf("expected category %q, got %q", input.Category, found.Category)
	}
	if !found.Available {
		t.Error("expected absent available to default to true on update")
	}
}

func TestUpdateItem_NotFoundBeforeValidation(t *testing.T) {
	svc := newTestService()

	// The payload is invalid, but an unknown id must report not found
	input := models.MenuItemInput{Name: "x"}

	_, err := svc.UpdateItem(context.Background(), 999, input)
	if !errors.Is(err, repository.ErrMenuItemNotFound) {
		t.Errorf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	deleted, err := svc.DeleteItem(ctx, 3)
	if err != nil {
		t.Fatalf("DeleteItem returned error: %v", err)
	}
	if deleted.ID != 3 {
		t.Errorf("expected deleted item ID 3, got %d", deleted.ID)
	}

	if _, err := svc.GetItem(ctx, 3); !errors.Is(err, repository.ErrMenuItemNotFound) {
		t.Errorf("expected ErrMenuItemNotFound after delete, got %v", err)
	}
}

func containsMessage(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
