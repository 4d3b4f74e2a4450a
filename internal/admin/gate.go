package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orgball2608/event-poster-api/pkg/config"
	"github.com/orgball2608/event-poster-api/pkg/logger"
	"go.uber.org/fx"
)

// Gate answers whether a caller-supplied numeric identity belongs to
// the fixed admin allow-list loaded once at startup.
type Gate struct {
	ids map[int64]struct{}
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) (*Gate, error) {
	ids, err := ParseIDs(opts.Config.Admin.IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin ids: %w", err)
	}

	opts.Logger.Info("Admin gate initialized", "admins", len(ids))
	return NewGate(ids), nil
}

func NewGate(ids []int64) *Gate {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &Gate{ids: set}
}

func (g *Gate) IsAdmin(id int64) bool {
	_, ok := g.ids[id]
	return ok
}

// ParseIDs parses a comma-separated identity list. Blank entries are
// skipped so trailing commas in the environment do not fail startup.
func ParseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
