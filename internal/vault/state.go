package vault

import (
	"maps"

	"github.com/MKhiriev/go-opvault/models"
)

// ItemsState is the items lifecycle of a [Vault]: either [NotLoaded] or
// [Loaded]. The set of implementations is closed.
type ItemsState interface {
	isItemsState()
}

// NotLoaded is the state after [Open] and before the first successful
// [Vault.ReadItems].
type NotLoaded struct{}

func (NotLoaded) isItemsState() {}

// Loaded holds the item snapshot of the last successful [Vault.ReadItems].
type Loaded struct {
	items map[models.UUID]models.Item
}

func (Loaded) isItemsState() {}

// Items returns a copy of the snapshot. Each item carries its own copy of
// its attachment map, so callers cannot change what the vault holds.
func (l Loaded) Items() map[models.UUID]models.Item {
	items := make(map[models.UUID]models.Item, len(l.items))
	for id, item := range l.items {
		items[id] = cloneItem(item)
	}
	return items
}

func cloneItem(item models.Item) models.Item {
	item.Attachments = maps.Clone(item.Attachments)
	if item.Attachments == nil {
		item.Attachments = make(map[models.UUID]models.Attachment)
	}
	return item
}

// Len is the number of loaded items.
func (l Loaded) Len() int {
	return len(l.items)
}
