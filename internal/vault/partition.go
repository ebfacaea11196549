package vault

import "github.com/MKhiriev/go-opvault/models"

// partitionAttachments consumes pool: every attachment whose ItemUUID names
// an entry of items is moved into that item's attachment set, the rest are
// returned as orphans. Every item ends up with a non-nil set, possibly empty.
//
// pool must not be used by the caller afterwards; its entries are deleted as
// they are moved so that each attachment has exactly one owner.
func partitionAttachments(pool map[models.UUID]models.Attachment, items map[models.UUID]models.Item) map[models.UUID]models.Attachment {
	for id, item := range items {
		item.Attachments = make(map[models.UUID]models.Attachment)
		items[id] = item
	}

	for id, attachment := range pool {
		item, ok := items[attachment.ItemUUID]
		if !ok {
			continue
		}
		item.Attachments[id] = attachment
		delete(pool, id)
	}

	return pool
}
