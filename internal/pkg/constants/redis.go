package constants

// Redis key formats
const (
	// Attribution lookups
	KeyPaymentLinkBusiness = "payment_link:business:%s" // Format: payment_link:business:{payment_link_id}
	KeyStorefrontBusiness  = "storefront:business:%s"   // Format: storefront:business:{storefront_id}
)
