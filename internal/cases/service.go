package cases

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/logger"
	"github.com/ghostcity-rp/companion/internal/metrics"
	"github.com/ghostcity-rp/companion/internal/repository"
	"github.com/ghostcity-rp/companion/internal/utils"
)

// OpenResult is the outcome of one case open. On ErrInventoryFull the
// result still carries the won item so the client can show what was lost.
type OpenResult struct {
	WonItem        domain.Item   `json:"won_item"`
	AnimationItems []domain.Item `json:"animation_items"`
	InventorySlot  int           `json:"inventory_slot"`
}

// CaseView is one entry of the public case listing: the case metadata
// plus a sample of its eligible items.
type CaseView struct {
	domain.CaseConfig
	Items []domain.Item `json:"items"`
}

// Service defines the case engine interface.
type Service interface {
	// Open runs one complete case-open transaction. When the inventory
	// is full it returns a partial result together with
	// domain.ErrInventoryFull; the debit is rolled back.
	Open(ctx context.Context, caseID, userID int, paymentMethod string) (*OpenResult, error)
	List(ctx context.Context) ([]CaseView, error)
}

type service struct {
	repo       repository.Engine
	caseStore  repository.Cases
	catalogCap int
	legacy     bool
	rnd        func() float64
}

// NewService creates a new case engine service. catalogCap bounds how many
// catalog rows feed the eligible set; legacy selects the 3-field slot
// encoding.
func NewService(repo repository.Engine, caseStore repository.Cases, catalogCap int, legacy bool) Service {
	return &service{
		repo:       repo,
		caseStore:  caseStore,
		catalogCap: catalogCap,
		legacy:     legacy,
		rnd:        utils.RandomFloat,
	}
}

func (s *service) Open(ctx context.Context, caseID, userID int, paymentMethod string) (*OpenResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Open case called", LogFieldCaseID, caseID, LogFieldUserID, userID, LogFieldMethod, paymentMethod)

	if caseID <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: case_id and user_id required", domain.ErrInvalidArgument)
	}
	method, ok := domain.ParsePaymentMethod(paymentMethod)
	if !ok {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidArgument, paymentMethod)
	}

	caseCfg, err := s.caseStore.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	price := caseCfg.Price(method)
	if balanceFor(balance, method) < price {
		metrics.RecordCaseOpenFailure("insufficient_funds")
		return nil, fmt.Errorf("%w: need %d %s", domain.ErrInsufficientFunds, price, method)
	}

	eligible, err := s.eligibleItems(ctx, caseCfg.Eligibility)
	if err != nil {
		return nil, err
	}

	sampler := newWeightedSampler(eligible)
	won := sampler.Pick(s.rnd())

	animation := make([]domain.Item, AnimationLength)
	for i := range animation {
		animation[i] = sampler.Pick(s.rnd())
	}
	// The displayed spin must land on the real reward.
	animation[WinningIndex] = won

	slot, err := s.commitReward(ctx, userID, method, price, won)
	if err != nil {
		if errors.Is(err, domain.ErrInventoryFull) {
			metrics.RecordCaseOpenFailure("inventory_full")
			// The debit was rolled back; report the lost item anyway.
			return &OpenResult{WonItem: won, AnimationItems: animation}, err
		}
		return nil, err
	}

	metrics.RecordCaseOpened(caseID, string(method))
	log.Info("Case opened", LogFieldCaseID, caseID, LogFieldUserID, userID, LogFieldItem, won.Name, LogFieldSlot, slot)

	return &OpenResult{
		WonItem:        won,
		AnimationItems: animation,
		InventorySlot:  slot,
	}, nil
}

// commitReward debits the price and writes the reward slot in a single
// transaction so the player is never charged for an undeliverable item.
func (s *service) commitReward(ctx context.Context, userID int, method domain.PaymentMethod, price int, won domain.Item) (int, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.TryDebit(ctx, userID, method, price); err != nil {
		return 0, err
	}

	inv, found, err := tx.GetInventoryForUpdate(ctx, userID)
	if err != nil {
		log.Error("Failed to get inventory", "error", err)
		return 0, fmt.Errorf("failed to get inventory: %w", err)
	}

	slot := 1
	if !found {
		if err := tx.CreateInventory(ctx, userID); err != nil {
			log.Error("Failed to create inventory", "error", err)
			return 0, fmt.Errorf("failed to create inventory: %w", err)
		}
	} else {
		slot = inv.FirstFreeSlot()
		if slot == 0 {
			return 0, domain.ErrInventoryFull
		}
	}

	record := domain.InventorySlot{LootID: won.ID, Quality: won.Quality, FromCase: true}
	if err := tx.WriteSlot(ctx, userID, slot, record.Encode(s.legacy)); err != nil {
		log.Error("Failed to write slot", "error", err)
		return 0, fmt.Errorf("failed to write slot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return slot, nil
}

// eligibleItems applies the case policy over the capped catalog, falling
// back to the starter list so a case never presents zero items.
func (s *service) eligibleItems(ctx context.Context, policy domain.Eligibility) ([]domain.Item, error) {
	loots, err := s.repo.ListLoots(ctx, s.catalogCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list loots: %w", err)
	}

	var eligible []domain.Item
	for _, item := range loots {
		if policy.Matches(item) {
			eligible = append(eligible, item)
		}
	}
	if len(eligible) == 0 {
		eligible = domain.FallbackItems()
	}
	return eligible, nil
}

func (s *service) List(ctx context.Context) ([]CaseView, error) {
	log := logger.FromContext(ctx)

	configs, err := s.caseStore.ListCases(ctx)
	if err != nil {
		return nil, err
	}

	loots, err := s.repo.ListLoots(ctx, s.catalogCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list loots: %w", err)
	}

	views := make([]CaseView, 0, len(configs))
	for _, cfg := range configs {
		var sample []domain.Item
		for _, item := range loots {
			if cfg.Eligibility.Matches(item) {
				sample = append(sample, item)
				if len(sample) == SampleItemsPerCase {
					break
				}
			}
		}
		if len(sample) < MinSampleItems {
			sample = domain.FallbackItems()
		}
		views = append(views, CaseView{CaseConfig: cfg, Items: sample})
	}

	log.Debug("Listed cases", "count", len(views))
	return views, nil
}

func balanceFor(b *domain.PlayerBalance, method domain.PaymentMethod) int {
	if method == domain.PayMoney {
		return b.Money
	}
	return b.Donate
}
