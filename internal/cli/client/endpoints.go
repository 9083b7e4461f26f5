package client

const (
	// API version prefix
	apiV1Prefix = "/api/v1"

	// Session endpoints
	endpointSessions           = apiV1Prefix + "/sessions"                    // POST
	endpointSessionByID        = apiV1Prefix + "/sessions/%s"                 // GET, PATCH, DELETE
	endpointSessionIngredients = apiV1Prefix + "/sessions/%s/ingredients"     // POST
	endpointSessionIngredient  = apiV1Prefix + "/sessions/%s/ingredients/%d"  // DELETE
	endpointSessionDescriptors = apiV1Prefix + "/sessions/%s/descriptors"     // PUT
	endpointSessionAdvance     = apiV1Prefix + "/sessions/%s/advance"         // POST
	endpointSessionBack        = apiV1Prefix + "/sessions/%s/back"            // POST
	endpointSessionReset       = apiV1Prefix + "/sessions/%s/reset"           // POST

	// AI composition endpoints
	endpointWeave      = apiV1Prefix + "/ai/weave"      // POST, credit-gated
	endpointStitch     = apiV1Prefix + "/ai/stitch"     // POST, credit-gated
	endpointRegenerate = apiV1Prefix + "/ai/regenerate" // POST, credit-gated
	endpointPrompts    = apiV1Prefix + "/ai/prompts"    // POST, free

	// Credit ledger endpoints
	endpointCredits = apiV1Prefix + "/credits" // GET, POST
)
