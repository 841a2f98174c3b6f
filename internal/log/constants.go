package log

const (
	KeyAppName       = "app"
	KeyTag           = "tag"
	KeyProcess       = "process"
	KeyRequestID     = "requestId"
	KeyConfig        = "config"
	KeyEmail         = "email"
	KeyUserID        = "userId"
	KeyOrderID       = "orderId"
	KeyOrderNumber   = "orderNumber"
	KeyOrderItems    = "orderItems"
	KeyOrderTotal    = "orderTotal"
	KeyProductID     = "productId"
	KeyProductName   = "productName"
	KeyProductSlug   = "productSlug"
	KeyProductStock  = "productStock"
	KeyColorVariant  = "colorVariant"
	KeyCartItems     = "cartItems"
	KeyCartItemCount = "cartItemCount"
	KeyCartTotal     = "cartTotal"
	KeyQuantity      = "quantity"
	KeyCacheKey      = "cacheKey"
	KeyDbURL         = "dbUrl"
	KeyToken         = "token"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyTraceID       = "traceId"
	KeySpanID        = "spanId"
)
