// Package vault is the in-memory aggregate of one OPVault container.
//
// A vault is loaded in two phases:
//  1. [Open] reads everything that needs no key: the profile, the folder
//     index and the attachment files. The vault is then in the
//     metadata-only state and [Vault.State] reports [NotLoaded].
//  2. [Vault.ReadItems] reads the band files with the item tag key. Every
//     record is verified before any item becomes visible; attachments are
//     then moved into the items that own them and [Vault.State] reports
//     [Loaded].
//
// A failed ReadItems leaves the vault exactly as it was. Attachments whose
// item is missing are kept as orphans and reported by [Vault.Orphans].
//
// A Vault does no internal locking. Callers that share one across goroutines
// must serialize access to it.
package vault
