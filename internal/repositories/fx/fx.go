package fx

import (
	"github.com/orgball2608/event-poster-api/internal/repositories/poster"
	"github.com/orgball2608/event-poster-api/internal/repositories/stats"
	"github.com/orgball2608/event-poster-api/internal/repositories/story"
	"go.uber.org/fx"
)

var Module = fx.Options(
	poster.Module,
	story.Module,
	stats.Module,
)
