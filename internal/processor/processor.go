package processor

import (
	"github.com/samber/lo"

	"github.com/nao1215/itemreport/internal/config"
	"github.com/nao1215/itemreport/internal/model"
)

// Processor applies the role rule to a user's items.
// The business thresholds are injected at construction so that
// the rule itself carries no magic values.
type Processor struct {
	// userValueLimit is the value ceiling for the USER role.
	userValueLimit float64

	// adminPriorityThreshold is the priority cutoff for the ADMIN role.
	adminPriorityThreshold float64
}

// Option configures a Processor.
type Option func(*Processor)

// WithUserValueLimit overrides the USER role value ceiling.
func WithUserValueLimit(limit float64) Option {
	return func(p *Processor) {
		p.userValueLimit = limit
	}
}

// WithAdminPriorityThreshold overrides the ADMIN priority cutoff.
func WithAdminPriorityThreshold(threshold float64) Option {
	return func(p *Processor) {
		p.adminPriorityThreshold = threshold
	}
}

// New creates a Processor with the default business thresholds,
// optionally overridden by options.
func New(opts ...Option) *Processor {
	p := &Processor{
		userValueLimit:         config.DefaultUserValueLimit,
		adminPriorityThreshold: config.DefaultAdminPriorityThreshold,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process applies the role rule and returns the items visible to the
// user, in the input order:
//
//   - ADMIN: every item, with Priority set when the value strictly
//     exceeds the admin priority threshold.
//   - USER: only items with value at or below the user value limit,
//     never annotated.
//   - any other role: an empty slice. This is defined behavior, not an
//     error; product owns the decision that unknown roles see an empty
//     report.
//
// The input slice and its items are never modified.
func (p *Processor) Process(user model.User, items []model.Item) []model.ProcessedItem {
	switch user.Role {
	case model.RoleAdmin:
		return lo.Map(items, func(item model.Item, _ int) model.ProcessedItem {
			return model.ProcessedItem{
				Item:     item,
				Priority: item.Value > p.adminPriorityThreshold,
			}
		})
	case model.RoleUser:
		return lo.FilterMap(items, func(item model.Item, _ int) (model.ProcessedItem, bool) {
			return model.ProcessedItem{Item: item}, item.Value <= p.userValueLimit
		})
	default:
		return []model.ProcessedItem{}
	}
}

// Total sums the values of processed items. The sum is taken over the
// already filtered set, not the original input, so a USER report's
// total only counts the items the user can see.
func Total(items []model.ProcessedItem) float64 {
	return lo.SumBy(items, func(item model.ProcessedItem) float64 {
		return item.Value
	})
}
