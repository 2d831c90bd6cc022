package ai

import (
	"context"

	"go.uber.org/zap"
)

// preferredModels is the bind order, newest and cheapest first. It doubles
// as the candidate list when model discovery fails.
var preferredModels = []string{
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

// excludedModels are advertised by the listing endpoint but rejected for
// generateContent on the stable surface.
var excludedModels = map[string]bool{
	"gemini-2.0-flash-exp": true,
}

// candidateModels asks the service which models it currently supports,
// substituting the hardcoded preference list when discovery fails, and
// returns the preferred models that survive the intersection.
func candidateModels(ctx context.Context, gen Generator, log *zap.Logger) []string {
	listed, err := gen.ListModels(ctx)
	if err != nil || len(listed) == 0 {
		if err != nil {
			log.Warn("model discovery failed, using fallback model list", zap.Error(err))
		}
		listed = preferredModels
	}

	available := make(map[string]bool, len(listed))
	for _, name := range listed {
		available[name] = true
	}

	var candidates []string
	for _, name := range preferredModels {
		if available[name] && !excludedModels[name] {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		// Listing returned something, but nothing we know how to drive.
		candidates = preferredModels
	}
	return candidates
}
