package constants

const (
	AppStorefrontService = "storefront-service"
	AppCatalogSeeder     = "catalog-seeder"
	AudienceUser         = "audience-user"
)
