package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/niksmo/sportshop/internal/core/domain"
	"github.com/niksmo/sportshop/internal/core/port"
)

var _ port.SectionsViewer = (*SectionController)(nil)
var _ port.CategoryOpener = (*SectionController)(nil)

// A SectionController runs the per-section pipelines and owns the
// section state machines: Idle -> Loading -> Ready|Empty. A section
// re-enters Loading only on a new activation.
//
// Every activation bumps the section generation; a pipeline result is
// discarded unless its generation is still current, so a late
// completion never overwrites a newer selector's state.
type SectionController struct {
	catalog  port.CatalogSnapshot
	enricher Enricher
	emitter  port.PageViewEmitter
	delay    time.Duration

	mu     sync.Mutex
	slots  map[domain.Section]*sectionSlot
	header domain.SectionHeader
}

type sectionSlot struct {
	gen   uint64
	state domain.SectionState
}

// NewSectionController wires the controller. The emitter may be nil.
// Delay is the minimum visible duration of the Loading state, a
// presentation pacing effect; 0 disables it.
func NewSectionController(
	catalog port.CatalogSnapshot,
	enricher Enricher,
	emitter port.PageViewEmitter,
	delay time.Duration,
) *SectionController {
	return &SectionController{
		catalog:  catalog,
		enricher: enricher,
		emitter:  emitter,
		delay:    delay,
		slots: map[domain.Section]*sectionSlot{
			domain.SectionNewArrivals:  {},
			domain.SectionPopular:      {},
			domain.SectionCategoryPage: {},
		},
	}
}

func (c *SectionController) CatalogAvailable() bool {
	return c.catalog.Loaded()
}

func (c *SectionController) NewArrivals() domain.SectionState {
	return c.state(domain.SectionNewArrivals)
}

func (c *SectionController) Popular() domain.SectionState {
	return c.state(domain.SectionPopular)
}

func (c *SectionController) Header() domain.SectionHeader {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.header
}

// ActivateHome starts the default pipelines for the sections present
// on the page. The two sections are independent and reach Ready in
// either order.
func (c *SectionController) ActivateHome(
	ctx context.Context, newArrivals, popular bool,
) {
	if newArrivals {
		c.activate(ctx, domain.SectionNewArrivals, "")
	}
	if popular {
		c.activate(ctx, domain.SectionPopular, "")
	}
}

// OpenCategory runs the category pipeline for the selector and waits
// for its completion or ctx. The returned state is the section's
// current one, which may belong to a newer selection.
func (c *SectionController) OpenCategory(
	ctx context.Context, selector string,
) (domain.SectionState, domain.SectionHeader) {
	done := c.activate(ctx, domain.SectionCategoryPage, selector)
	select {
	case <-ctx.Done():
	case <-done:
	}
	return c.state(domain.SectionCategoryPage), c.Header()
}

func (c *SectionController) state(section domain.Section) domain.SectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slots[section].state
}

func (c *SectionController) activate(
	ctx context.Context, section domain.Section, selector string,
) <-chan struct{} {
	c.mu.Lock()
	slot := c.slots[section]
	slot.gen++
	gen := slot.gen
	slot.state = domain.SectionState{Status: domain.StatusLoading}
	c.mu.Unlock()

	done := make(chan struct{})
	go c.run(ctx, section, selector, gen, done)
	return done
}

func (c *SectionController) run(
	ctx context.Context,
	section domain.Section,
	selector string,
	gen uint64,
	done chan<- struct{},
) {
	defer close(done)

	state := c.compute(section, selector)
	if !c.pace(ctx) {
		return
	}
	c.publish(ctx, section, selector, gen, state)
}

func (c *SectionController) compute(
	section domain.Section, selector string,
) domain.SectionState {
	ps := c.catalog.Products()

	if section == domain.SectionCategoryPage {
		subset := FilterByCategory(ps, selector)
		if len(subset) == 0 {
			return domain.SectionState{
				Status: domain.StatusEmpty, Category: selector,
			}
		}
		return domain.SectionState{
			Status: domain.StatusReady,
			Items:  c.enricher.PlainViews(subset),
		}
	}

	if len(ps) == 0 {
		return domain.SectionState{Status: domain.StatusEmpty}
	}

	var vms []domain.ProductViewModel
	if section == domain.SectionNewArrivals {
		vms = c.enricher.EnrichNew(ps)
	} else {
		vms = c.enricher.EnrichPopular(ps)
	}
	return domain.SectionState{Status: domain.StatusReady, Items: vms}
}

func (c *SectionController) pace(ctx context.Context) bool {
	if c.delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (c *SectionController) publish(
	ctx context.Context,
	section domain.Section,
	selector string,
	gen uint64,
	state domain.SectionState,
) {
	const op = "SectionController.publish"
	log := slog.With("op", op, "section", string(section))

	c.mu.Lock()
	slot := c.slots[section]
	if slot.gen != gen {
		c.mu.Unlock()
		log.Debug("stale result discarded", "selector", selector)
		return
	}
	slot.state = state
	if section == domain.SectionCategoryPage {
		if h, ok := domain.SectionHeaderFor(selector); ok {
			c.header = h
		}
	}
	c.mu.Unlock()

	log.Info("section published",
		"status", state.Status.String(), "nItems", len(state.Items))

	c.emit(ctx, section, selector, state)
}

func (c *SectionController) emit(
	ctx context.Context,
	section domain.Section,
	selector string,
	state domain.SectionState,
) {
	const op = "SectionController.emit"

	if c.emitter == nil || ctx.Err() != nil {
		return
	}

	pv := domain.PageView{
		Section:  string(section),
		Category: selector,
		Items:    len(state.Items),
		ViewedAt: time.Now().UnixMilli(),
	}
	if err := c.emitter.EmitPageView(ctx, pv); err != nil {
		slog.Error("failed to emit page view", "op", op, "err", err)
	}
}
