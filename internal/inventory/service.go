package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/logger"
	"github.com/ghostcity-rp/companion/internal/metrics"
	"github.com/ghostcity-rp/companion/internal/repository"
)

// UnknownItemName labels slots whose loot id no longer resolves against
// the catalog. They stay visible but cannot be sold.
const UnknownItemName = "Неизвестный предмет"

// SlotView is one occupied inventory slot joined with the loot catalog.
type SlotView struct {
	Slot     int    `json:"slot"`
	LootID   int    `json:"loot_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Price    int    `json:"price"`
	Quality  int    `json:"quality"`
	FromCase bool   `json:"from_case"`
	CanSell  bool   `json:"can_sell"`
}

// SellResult reports a completed resale.
type SellResult struct {
	Slot   int         `json:"slot"`
	Item   domain.Item `json:"item"`
	Amount int         `json:"amount"`
}

// Service defines the inventory interface.
type Service interface {
	List(ctx context.Context, userID int) ([]SlotView, error)
	// Sell resells the item in the given slot at the configured return
	// rate, credits the money balance and clears the slot. The player
	// must be offline.
	Sell(ctx context.Context, userID, slot int) (*SellResult, error)
}

type service struct {
	repo   repository.Inventories
	rate   float64
	legacy bool
	now    func() time.Time
}

// NewService creates a new inventory service. rate is the resale return
// rate (fraction of catalog price); legacy selects the 3-field slot
// encoding, which also marks every item sellable since the from_case
// flag is not stored.
func NewService(repo repository.Inventories, rate float64, legacy bool) Service {
	return &service{
		repo:   repo,
		rate:   rate,
		legacy: legacy,
		now:    time.Now,
	}
}

func (s *service) List(ctx context.Context, userID int) ([]SlotView, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id required", domain.ErrInvalidArgument)
	}

	if _, err := s.repo.GetPlayer(ctx, userID); err != nil {
		return nil, err
	}

	inv, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	if inv == nil {
		// Inventories are created lazily on the first reward.
		return []SlotView{}, nil
	}

	views := make([]SlotView, 0, domain.InventorySize)
	cache := make(map[int]*domain.Item)
	for i, raw := range inv.Slots {
		rec, ok := domain.DecodeSlot(raw)
		if !ok {
			continue
		}

		view := SlotView{
			Slot:     i + 1,
			LootID:   rec.LootID,
			Quality:  rec.Quality,
			FromCase: rec.FromCase,
		}
		if item, err := s.resolveItem(ctx, cache, rec.LootID); err == nil {
			view.Name = item.Name
			view.Type = item.Type
			view.Price = item.Price
			view.CanSell = s.sellable(rec)
		} else if errors.Is(err, domain.ErrItemNotFound) {
			view.Name = UnknownItemName
		} else {
			return nil, err
		}
		views = append(views, view)
	}

	log.Debug("Listed inventory", "user_id", userID, "items", len(views))
	return views, nil
}

func (s *service) Sell(ctx context.Context, userID, slot int) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Sell item called", "user_id", userID, "slot", slot)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id required", domain.ErrInvalidArgument)
	}
	if slot < 1 || slot > domain.InventorySize {
		return nil, fmt.Errorf("%w: slot must be 1..%d", domain.ErrInvalidArgument, domain.InventorySize)
	}

	player, err := s.repo.GetPlayer(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Selling while in-game would race the game server's own writes to
	// the same slot columns.
	if player.IsOnline(s.now()) {
		return nil, fmt.Errorf("%w: log out before selling", domain.ErrPlayerOnline)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	inv, found, err := tx.GetInventoryForUpdate(ctx, userID)
	if err != nil {
		log.Error("Failed to get inventory", "error", err)
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, slot)
	}

	rec, ok := domain.DecodeSlot(inv.Slots[slot-1])
	if !ok {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, slot)
	}
	if !s.sellable(rec) {
		return nil, fmt.Errorf("%w: only case rewards can be sold", domain.ErrNotSellable)
	}

	item, err := s.resolveItem(ctx, map[int]*domain.Item{}, rec.LootID)
	if err != nil {
		return nil, err
	}

	amount := int(float64(item.Price) * s.rate)

	if err := tx.ClearSlot(ctx, userID, slot, domain.EmptySlotValue(s.legacy)); err != nil {
		log.Error("Failed to clear slot", "error", err)
		return nil, fmt.Errorf("failed to clear slot: %w", err)
	}
	if err := tx.Credit(ctx, userID, domain.PayMoney, amount); err != nil {
		log.Error("Failed to credit proceeds", "error", err)
		return nil, fmt.Errorf("failed to credit proceeds: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.RecordItemSold()
	log.Info("Item sold", "user_id", userID, "slot", slot, "item", item.Name, "amount", amount)

	return &SellResult{Slot: slot, Item: *item, Amount: amount}, nil
}

// sellable applies the resale policy: only case rewards may be resold.
// The legacy 3-field encoding has no from_case flag, so under it every
// occupied slot counts as sellable.
func (s *service) sellable(rec domain.InventorySlot) bool {
	return rec.FromCase || s.legacy
}

// resolveItem memoizes catalog lookups across one listing. Fallback
// reward ids resolve against the static starter list.
func (s *service) resolveItem(ctx context.Context, cache map[int]*domain.Item, id int) (*domain.Item, error) {
	if item, ok := cache[id]; ok {
		if item == nil {
			return nil, domain.ErrItemNotFound
		}
		return item, nil
	}

	if id > domain.FallbackIDBase {
		for _, f := range domain.FallbackItems() {
			if f.ID == id {
				item := f
				cache[id] = &item
				return &item, nil
			}
		}
	}

	item, err := s.repo.GetLootByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			cache[id] = nil
		}
		return nil, err
	}
	cache[id] = item
	return item, nil
}
