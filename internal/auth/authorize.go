package auth

import (
	"context"
	"fmt"

	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/repository"
)

// Authorize resolves the acting player and enforces the admin policy.
// Every admin-only operation goes through this single gate.
func Authorize(ctx context.Context, players repository.Players, userID int) (*domain.Player, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id required", domain.ErrInvalidArgument)
	}
	player, err := players.GetPlayer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !player.CanAdminister() {
		return nil, fmt.Errorf("%w: admin level %d required", domain.ErrPermissionDenied, domain.AdminLevelRequired)
	}
	return player, nil
}
