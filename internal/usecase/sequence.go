package usecase

import "fmt"

// Sequence names in the counters table. One counter per record family.
const (
	seqServiceRequest = "service_request"
	seqAsset          = "asset"
	seqChangeRequest  = "change_request"
	seqConfigItem     = "configuration_item"
	seqCatalogItem    = "catalog_item"
	seqPurchaseOrder  = "purchase_order"
	seqMemo           = "internal_office_memo"
)

// formatRecordNumber renders "SR-001", "CHG-042", "PO-1234". Width grows
// past three digits rather than wrapping; numbers are never reused.
func formatRecordNumber(prefix string, n int64) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}
