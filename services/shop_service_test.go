package services

import (
	"errors"
	"testing"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

func seedShopItem(t *testing.T, svc *Service, item models.ShopItem) *models.ShopItem {
	t.Helper()
	if err := svc.db.Create(&item).Error; err != nil {
		t.Fatalf("seed shop item: %v", err)
	}
	return &item
}

func setCoins(t *testing.T, svc *Service, userID uint, coins int) {
	t.Helper()
	if err := svc.db.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("coins", coins).Error; err != nil {
		t.Fatalf("set coins: %v", err)
	}
}

func TestPurchaseItem(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	setCoins(t, svc, profile.UserID, 200)

	stat := models.StatStrength
	item := seedShopItem(t, svc, models.ShopItem{
		Name:         "Strength Potion",
		Price:        150,
		Rarity:       models.RarityRare,
		ItemType:     "CONSUMABLE",
		StatType:     &stat,
		StatIncrease: 5,
	})

	result, err := svc.PurchaseItem(profile.UserID, item.ID)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if !result.Ok {
		t.Fatalf("purchase declined: %s", result.Reason)
	}
	if result.NewBalance != 50 {
		t.Errorf("balance = %d, want 50", result.NewBalance)
	}
	if result.Item == nil || result.Item.Name != "Strength Potion" {
		t.Fatalf("item snapshot missing: %+v", result.Item)
	}
	if result.Item.Equipped {
		t.Error("new purchase must start unequipped")
	}

	reloaded := reloadProfile(t, svc, profile.UserID)
	if reloaded.Coins != 50 {
		t.Errorf("stored coins = %d, want 50", reloaded.Coins)
	}
	if len(reloaded.Inventory) != 1 {
		t.Fatalf("inventory size = %d, want 1", len(reloaded.Inventory))
	}
}

func TestPurchaseItemInsufficientCoins(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	setCoins(t, svc, profile.UserID, 100)

	item := seedShopItem(t, svc, models.ShopItem{Name: "Epic Sword", Price: 150, Rarity: models.RarityEpic})

	result, err := svc.PurchaseItem(profile.UserID, item.ID)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if result.Ok {
		t.Fatal("purchase should have been declined")
	}
	if result.Reason != ReasonInsufficientCoins {
		t.Errorf("reason = %q, want %q", result.Reason, ReasonInsufficientCoins)
	}
	if result.NewBalance != 100 {
		t.Errorf("balance = %d, want untouched 100", result.NewBalance)
	}

	reloaded := reloadProfile(t, svc, profile.UserID)
	if reloaded.Coins != 100 {
		t.Errorf("stored coins = %d, want 100", reloaded.Coins)
	}
	if len(reloaded.Inventory) != 0 {
		t.Errorf("inventory size = %d, want empty after decline", len(reloaded.Inventory))
	}
}

func TestPurchaseItemExactBalance(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	setCoins(t, svc, profile.UserID, 150)

	item := seedShopItem(t, svc, models.ShopItem{Name: "Rune", Price: 150})

	result, err := svc.PurchaseItem(profile.UserID, item.ID)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if !result.Ok || result.NewBalance != 0 {
		t.Errorf("exact-balance purchase = (ok %v, balance %d), want (true, 0)", result.Ok, result.NewBalance)
	}
}

func TestPurchaseItemNotFound(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")

	if _, err := svc.PurchaseItem(profile.UserID, 9999); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestInventorySnapshotSurvivesCatalogEdit(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	setCoins(t, svc, profile.UserID, 500)

	stat := models.StatAgility
	item := seedShopItem(t, svc, models.ShopItem{
		Name:         "Swift Boots",
		Price:        100,
		StatType:     &stat,
		StatIncrease: 3,
	})

	if result, err := svc.PurchaseItem(profile.UserID, item.ID); err != nil || !result.Ok {
		t.Fatalf("purchase = (%+v, %v)", result, err)
	}

	// Rename and re-price the catalog entry after the sale.
	if err := svc.db.Model(item).Updates(map[string]interface{}{
		"name":          "Nerfed Boots",
		"stat_increase": 1,
	}).Error; err != nil {
		t.Fatalf("edit catalog: %v", err)
	}

	items, err := svc.Inventory(profile.UserID)
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("inventory size = %d, want 1", len(items))
	}
	if items[0].Name != "Swift Boots" || items[0].StatIncrease != 3 {
		t.Errorf("snapshot mutated by catalog edit: %+v", items[0])
	}
}

func TestEquipItem(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	setCoins(t, svc, profile.UserID, 100)

	item := seedShopItem(t, svc, models.ShopItem{Name: "Helm", Price: 50, ItemType: "EQUIPMENT"})
	result, err := svc.PurchaseItem(profile.UserID, item.ID)
	if err != nil || !result.Ok {
		t.Fatalf("purchase = (%+v, %v)", result, err)
	}

	if err := svc.EquipItem(profile.UserID, result.Item.ID, true); err != nil {
		t.Fatalf("equip: %v", err)
	}

	reloaded := reloadProfile(t, svc, profile.UserID)
	equipped := EquippedItems(reloaded)
	if len(equipped) != 1 || equipped[0].Name != "Helm" {
		t.Fatalf("equipped = %+v, want the helm", equipped)
	}

	if err := svc.EquipItem(profile.UserID, result.Item.ID, false); err != nil {
		t.Fatalf("unequip: %v", err)
	}
	if got := EquippedItems(reloadProfile(t, svc, profile.UserID)); len(got) != 0 {
		t.Errorf("equipped after unequip = %+v, want none", got)
	}

	if err := svc.EquipItem(profile.UserID, 9999, true); !errors.Is(err, ErrInventoryNotFound) {
		t.Errorf("equip unknown = %v, want ErrInventoryNotFound", err)
	}
}

func TestTotalStats(t *testing.T) {
	strength := models.StatStrength
	sense := models.StatSense

	profile := &models.UserProfile{
		Strength: 10, Agility: 12, Vitality: 10, Sense: 10, Intelligence: 10,
		Inventory: []models.InventoryItem{
			{Name: "Gauntlets", StatType: &strength, StatIncrease: 5},
			{Name: "Ring", StatType: &strength, StatIncrease: 2},
			{Name: "Goggles", StatType: &sense, StatIncrease: 1},
			{Name: "Trinket"}, // no stat bonus
		},
	}

	totals := TotalStats(profile)

	if totals[models.StatStrength] != 17 {
		t.Errorf("strength = %d, want 17", totals[models.StatStrength])
	}
	if totals[models.StatSense] != 11 {
		t.Errorf("sense = %d, want 11", totals[models.StatSense])
	}
	if totals[models.StatAgility] != 12 {
		t.Errorf("agility = %d, want base 12", totals[models.StatAgility])
	}
	if len(totals) != len(models.AllStats) {
		t.Errorf("totals has %d entries, want %d", len(totals), len(models.AllStats))
	}
}

func TestListShopItemsOrder(t *testing.T) {
	svc := newTestService(t)
	seedShopItem(t, svc, models.ShopItem{Name: "Expensive", Price: 300})
	seedShopItem(t, svc, models.ShopItem{Name: "Cheap", Price: 10})
	seedShopItem(t, svc, models.ShopItem{Name: "Middle", Price: 100})

	items, err := svc.ListShopItems()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 || items[0].Name != "Cheap" || items[2].Name != "Expensive" {
		t.Errorf("items not ordered by price: %+v", items)
	}
}
