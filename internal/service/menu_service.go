package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/restaurant-platform/menu-service/internal/models"
	"github.com/restaurant-platform/menu-service/internal/repository"
)

// ValidationError carries every field rule violated by a create or update
// payload. Violations are collected in one pass, not short-circuited.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// MenuService handles business logic for menu items
type MenuService struct {
	repo     repository.MenuRepository
	validate *validator.Validate
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListItems returns all menu items in insertion order
func (s *MenuService) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.GetAll(ctx)
}

// GetItem returns a menu item by ID
func (s *MenuService) GetItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateItem validates the candidate fields and inserts a new menu item.
// An absent available field defaults to true.
func (s *MenuService) CreateItem(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, itemFromInput(input))
}

// UpdateItem replaces every field of an existing menu item except its id.
// Existence is checked before validation so an unknown id reports not
// found even when the payload is invalid. An absent available field
// defaults to true, same as on create.
func (s *MenuService) UpdateItem(ctx context.Context, id int64, input models.MenuItemInput) (*models.MenuItem, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	return s.repo.Replace(ctx, id, itemFromInput(input))
}

// DeleteItem removes a menu item and returns it
func (s *MenuService) DeleteItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.repo.Remove(ctx, id)
}

// validateInput checks the candidate fields against the menu item rules
// and aggregates all violations into a single ValidationError.
func (s *MenuService) validateInput(input models.MenuItemInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate menu item: %w", err)
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return &ValidationError{Messages: messages}
}

// fieldMessage translates a single field violation into the human-readable
// message exposed by the API.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch {
	case field == "Name":
		return "Name is required and must be at least 3 characters long"
	case field == "Description":
		return "Description is required and must be at least 10 characters long"
	case field == "Price":
		return "Price is required and must be a positive number"
	case field == "Category":
		return "Category must be one of: appetizer, entree, dessert, beverage"
	case strings.HasPrefix(field, "Ingredients"):
		// Covers both the slice itself and dived elements ("Ingredients[2]")
		return "Ingredients must be a non-empty array of strings"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// itemFromInput builds a MenuItem from validated candidate fields,
// defaulting available to true when the field was absent.
func itemFromInput(input models.MenuItemInput) models.MenuItem {
	available := true
	if input.Available != nil {
		available = *input.Available
	}

	return models.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Ingredients: input.Ingredients,
		Available:   available,
	}
}
