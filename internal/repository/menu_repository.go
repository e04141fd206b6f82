package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/restaurant-platform/menu-service/internal/models"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// MenuRepository defines the interface for menu item data access
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
	Replace(ctx context.Context, id int64, item models.MenuItem) (*models.MenuItem, error)
	Remove(ctx context.Context, id int64) (*models.MenuItem, error)
}

// InMemoryMenuRepository implements MenuRepository with in-memory storage.
// Items are kept in insertion order. Ids come from a monotonically
// increasing counter and are never reused after a delete, so they may
// become non-contiguous.
type InMemoryMenuRepository struct {
	mu     sync.RWMutex
	items  []models.MenuItem
	nextID int64
}

// NewInMemoryMenuRepository creates a new in-memory menu repository with seed data
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	items := []models.MenuItem{
		{ID: 1, Name: "Bruschetta", Description: "Grilled bread topped with fresh tomatoes, basil and garlic", Price: 8.99, Category: models.CategoryAppetizer, Ingredients: []string{"baguette", "tomatoes", "basil", "garlic", "olive oil"}, Available: true},
		{ID: 2, Name: "Mozzarella Sticks", Description: "Golden fried mozzarella served with marinara sauce", Price: 7.49, Category: models.CategoryAppetizer, Ingredients: []string{"mozzarella", "breadcrumbs", "marinara sauce"}, Available: true},
		{ID: 3, Name: "Margherita Pizza", Description: "Wood-fired pizza with tomato, fresh mozzarella and basil", Price: 14.99, Category: models.CategoryEntree, Ingredients: []string{"pizza dough", "tomato sauce", "mozzarella", "basil"}, Available: true},
		{ID: 4, Name: "Grilled Salmon", Description: "Atlantic salmon fillet with lemon butter and seasonal vegetables", Price: 19.99, Category: models.CategoryEntree, Ingredients: []string{"salmon", "lemon", "butter", "vegetables"}, Available: true},
		{ID: 5, Name: "Tiramisu", Description: "Classic Italian dessert with espresso-soaked ladyfingers", Price: 6.99, Category: models.CategoryDessert, Ingredients: []string{"ladyfingers", "espresso", "mascarpone", "cocoa"}, Available: true},
		{ID: 6, Name: "Fresh Lemonade", Description: "House-made lemonade with a hint of mint, served over ice", Price: 3.99, Category: models.CategoryBeverage, Ingredients: []string{"lemons", "sugar", "mint", "water"}, Available: true},
	}

	return &InMemoryMenuRepository{
		items:  items,
		nextID: int64(len(items)) + 1,
	}
}

// cloneItem returns a copy of the item whose ingredients slice does not
// share backing storage with the original, so snapshots handed to callers
// and items handed to the store stay isolated from each other.
func cloneItem(item models.MenuItem) models.MenuItem {
	item.Ingredients = append([]string(nil), item.Ingredients...)
	return item
}

// GetAll returns all menu items in insertion order
func (r *InMemoryMenuRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MenuItem, len(r.items))
	for i, item := range r.items {
		items[i] = cloneItem(item)
	}
	return items, nil
}

// GetByID returns a menu item by its ID
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			found := cloneItem(item)
			return &found, nil
		}
	}
	return nil, ErrMenuItemNotFound
}

// Insert assigns the next id to the item and appends it to the collection
func (r *InMemoryMenuRepository) Insert(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, cloneItem(item))

	created := cloneItem(item)
	return &created, nil
}

// Replace overwrites every field of the item with the given id except the
// id itself. The item keeps its position in the collection.
func (r *InMemoryMenuRepository) Replace(ctx context.Context, id int64, item models.MenuItem) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			item.ID = id
			r.items[i] = cloneItem(item)

			updated := cloneItem(item)
			return &updated, nil
		}
	}
	return nil, ErrMenuItemNotFound
}

// Remove deletes the item with the given id and returns it
func (r *InMemoryMenuRepository) Remove(ctx context.Context, id int64) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			removed := r.items[i]
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &removed, nil
		}
	}
	return nil, ErrMenuItemNotFound
}
