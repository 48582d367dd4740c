// services/stats.go - Effective stat totals from base stats and inventory
package services

import (
	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// TotalStats returns, for each attribute, base value plus the sum of
// inventory bonuses targeting that attribute. Pure function of the profile
// and its loaded inventory.
func TotalStats(p *models.UserProfile) map[models.StatType]int {
	totals := make(map[models.StatType]int, len(models.AllStats))
	for _, stat := range models.AllStats {
		totals[stat] = p.BaseStat(stat)
	}
	for _, item := range p.Inventory {
		if item.StatType != nil && item.StatType.IsValid() {
			totals[*item.StatType] += item.StatIncrease
		}
	}
	return totals
}

// EquippedItems filters the inventory down to equipped entries. Items bought
// before the equip concept existed default to unequipped.
func EquippedItems(p *models.UserProfile) []models.InventoryItem {
	equipped := make([]models.InventoryItem, 0)
	for _, item := range p.Inventory {
		if item.Equipped {
			equipped = append(equipped, item)
		}
	}
	return equipped
}
