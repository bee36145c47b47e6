package common

// ServiceTokenHeaderName is the gRPC metadata key the gateway uses to carry
// its signed service token on outbound requests.
const ServiceTokenHeaderName = "service_token"
