// Package giphy provides a client for the GIPHY search API.
//
// The client owns a cache.QueryCache: a repeated query is answered from memory
// without touching the network or the rate limiter. Results are sorted
// ascending by plain string comparison of their rating before being cached.
//
// Example usage:
//
//	client := giphy.NewClient(cfg, cache.New(), nil, nil)
//
//	gifs, err := client.Search(ctx, "cat")
//	if err != nil {
//	    if errors.IsType(err, errors.ErrorTypeAuth) {
//	        // check GIPHY_API
//	    }
//	}
//	for _, g := range gifs {
//	    fmt.Println(g.Rating, g.Title, g.OriginalURL())
//	}
//
// Nothing is retried. Transport failures are network errors, undecodable
// bodies are parsing errors, and 401/403 responses are auth errors.
package giphy
