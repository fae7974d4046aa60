// Package ratelimit throttles calls to the GIPHY API.
//
// GIPHY keys are issued with an hourly call budget; the search client takes a
// token before every network request so that repeated CLI invocations in a
// script do not burn through it. Cache hits never take a token.
//
// Usage:
//
//	limiter := ratelimit.PerMinute(cfg.RateLimit.RequestsPerMinute)
//	if err := limiter.Wait(ctx); err != nil {
//	    return err
//	}
package ratelimit
