package cache

import (
	"fmt"
)

// New builds a Store from configuration. backend is "memory" or "redis";
// the Redis parameters are ignored for the memory backend.
func New(backend, redisAddr, redisPassword string, redisDB int) (Store, error) {
	switch backend {
	case "memory", "":
		return NewMemory(), nil
	case "redis":
		return NewRedis(redisAddr, redisPassword, redisDB)
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s (supported: memory, redis)", backend)
	}
}

// Cache keys for the public content readers
const (
	KeyPortfolio    = "public:portfolio"
	KeyPricing      = "public:pricing"
	KeyTestimonials = "public:testimonials"
	KeySocialLinks  = "public:social_links"
	KeyServices     = "public:services"
	KeySubsidiaries = "public:subsidiaries"
	KeySiteContent  = "public:site_content"
)
