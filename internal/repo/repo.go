// Package repo is the document store: named collections of schemaless
// documents keyed by a caller-supplied ID.
package repo

// Collections the admin backend reads and writes.
const (
	CollectionOrders   = "orders"
	CollectionProducts = "products"
	CollectionSales    = "sales"
	CollectionAdmins   = "admins"
	CollectionPickups  = "pickups"
)

// BackupCollections are dumped by a backup, in tab order.
var BackupCollections = []string{
	"admins", "colors", "contact", "emails", "orders", "pickups", "products", "sales",
}
