package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// InventorySize is the fixed slot count of a player inventory
// (users_inventory columns u_i_slot_1 .. u_i_slot_50).
const InventorySize = 50

// InventorySlot is one decoded slot record. The storage encoding is a
// comma-joined string "loot_id,quality,reserved,from_case"; the legacy
// 3-field variant omits the from_case flag.
type InventorySlot struct {
	LootID   int  `json:"loot_id"`
	Quality  int  `json:"quality"`
	Reserved int  `json:"-"`
	FromCase bool `json:"from_case"`
}

// Inventory is the ordered list of raw slot values for one player.
// Index 0 corresponds to slot 1.
type Inventory struct {
	OwnerID int
	Slots   [InventorySize]string
}

// Encode renders the slot in the canonical 4-field form, or the legacy
// 3-field form when legacy is true.
func (s InventorySlot) Encode(legacy bool) string {
	if legacy {
		return fmt.Sprintf("%d,%d,%d", s.LootID, s.Quality, s.Reserved)
	}
	flag := 0
	if s.FromCase {
		flag = 1
	}
	return fmt.Sprintf("%d,%d,%d,%d", s.LootID, s.Quality, s.Reserved, flag)
}

// EmptySlotValue is the sentinel written when clearing a slot.
func EmptySlotValue(legacy bool) string {
	if legacy {
		return "0,0,0"
	}
	return "0,0,0,0"
}

// IsEmptySlotValue reports whether a raw slot value denotes an empty slot.
// The game database contains several historical sentinels.
func IsEmptySlotValue(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "", "0", "None", "null", "0,0,0", "0,0,0,0":
		return true
	}
	return false
}

// DecodeSlot parses a raw slot value. ok is false for any empty sentinel
// or malformed value. A missing fourth field decodes as FromCase=false.
func DecodeSlot(raw string) (InventorySlot, bool) {
	if IsEmptySlotValue(raw) {
		return InventorySlot{}, false
	}
	parts := strings.Split(raw, ",")
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || id == 0 {
		return InventorySlot{}, false
	}
	slot := InventorySlot{LootID: id}
	if len(parts) > 1 {
		slot.Quality, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	if len(parts) > 2 {
		slot.Reserved, _ = strconv.Atoi(strings.TrimSpace(parts[2]))
	}
	if len(parts) > 3 {
		slot.FromCase = strings.TrimSpace(parts[3]) == "1"
	}
	return slot, true
}

// FirstFreeSlot scans slots 1..50 in order and returns the first empty
// one, or 0 when the inventory is full.
func (inv *Inventory) FirstFreeSlot() int {
	for i, raw := range inv.Slots {
		if IsEmptySlotValue(raw) {
			return i + 1
		}
	}
	return 0
}
