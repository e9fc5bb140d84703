package service

import (
	"math"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
)

// CartService is the Cart Engine: at most one line per item, total recomputed on
// every read. All methods are safe for concurrent use.
type CartService interface {
	AddItem(item models.CatalogItem)
	ChangeQuantity(itemID int64, delta int)
	RemoveItem(itemID int64)
	Clear()
	Settle(accept func(lines []models.CartLine) error) ([]models.CartLine, error)
	Total() models.Money
	Lines() []models.CartLine
	Len() int
	IsEmpty() bool
	Quantity(itemID int64) int
}

type cartService struct {
	mu    sync.Mutex
	lines []models.CartLine
}

func NewCartService() CartService {
	return &cartService{}
}

func (s *cartService) indexOf(itemID int64) int {
	return slices.IndexFunc(s.lines, func(l models.CartLine) bool { return l.ItemID == itemID })
}

// AddItem copies name and price out of item, so later catalog changes do not
// reach lines already in the cart.
func (s *cartService) AddItem(item models.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(item.ID); i >= 0 {
		s.lines[i].Quantity++
		return
	}

	s.lines = append(s.lines, models.CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  1,
	})
}

func (s *cartService) ChangeQuantity(itemID int64, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(itemID)
	if i < 0 {
		return
	}

	quantity := s.lines[i].Quantity
	if delta > 0 && quantity > math.MaxInt-delta {
		quantity = math.MaxInt
	} else {
		quantity += delta
	}

	if quantity <= 0 {
		s.lines = slices.Delete(s.lines, i, i+1)
		return
	}

	s.lines[i].Quantity = quantity
}

func (s *cartService) RemoveItem(itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(itemID); i >= 0 {
		s.lines = slices.Delete(s.lines, i, i+1)
	}
}

func (s *cartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

// Settle hands a snapshot of the lines to accept and empties the cart only when
// accept returns nil, all under one lock. The cart is left untouched on error.
func (s *cartService) Settle(accept func(lines []models.CartLine) error) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := slices.Clone(s.lines)

	if err := accept(lines); err != nil {
		return nil, err
	}

	s.lines = nil

	return lines, nil
}

func (s *cartService) Total() models.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	return calculateTotal(s.lines)
}

func (s *cartService) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.lines)
}

func (s *cartService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}

func (s *cartService) IsEmpty() bool {
	return s.Len() == 0
}

func (s *cartService) Quantity(itemID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(itemID); i >= 0 {
		return s.lines[i].Quantity
	}

	return 0
}

func calculateTotal(lines []models.CartLine) models.Money {
	var total models.Money

	for _, l := range lines {
		total += l.Subtotal()
	}

	return total
}
