package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	providerRepo "github.com/Philip2024394/website-massage--sub024/database/repository/provider"
	"github.com/Philip2024394/website-massage--sub024/metrics"
	"github.com/Philip2024394/website-massage--sub024/models"
	"github.com/Philip2024394/website-massage--sub024/services/availability"
	"github.com/Philip2024394/website-massage--sub024/services/booking"
	"github.com/Philip2024394/website-massage--sub024/services/tasks"
	"github.com/Philip2024394/website-massage--sub024/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskEnqueuer is the part of *asynq.Client the service uses.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// OpenViewRequest describes the surface a provider view is opened from.
type OpenViewRequest struct {
	ProviderID                string `json:"providerId" binding:"required"`
	FromSharedProfile         bool   `json:"fromSharedProfile"`
	HasActiveScheduledBooking bool   `json:"hasActiveScheduledBooking"`
}

// ActionResult is the guard outcome of one action, plus the booking payload for
// allowed book actions.
type ActionResult struct {
	Decision booking.Decision      `json:"decision"`
	Intent   *models.BookingIntent `json:"intent,omitempty"`
}

type ProviderService interface {
	// Stored providers
	GetProviderPricing(ctx context.Context, id string) (models.PricingView, error)
	GetProviderStatus(ctx context.Context, id string) (models.StatusView, error)
	RefreshProviderView(ctx context.Context, id string) (models.ProviderView, error)
	EnqueueRefresh(ctx context.Context, id string) (string, error)
	WarmAll(ctx context.Context) (int, error)

	// Records that do not live in storage
	ResolveRaw(raw map[string]any) models.ProviderView

	// View sessions
	OpenView(ctx context.Context, req OpenViewRequest) (string, ViewSnapshot, error)
	GetView(viewID string) (ViewSnapshot, error)
	Session(viewID string) (*ViewSession, error)
	ReloadView(ctx context.Context, viewID string) (ViewSnapshot, error)
	SetActiveScheduledBooking(viewID string, active bool) (ViewSnapshot, error)
	AttemptAction(viewID string, kind booking.ActionKind, durationMinutes int) (ActionResult, error)
	CloseView(viewID string) error
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo           providerRepo.ProviderRepository
	Cache          PricingCache
	Views          *ViewStore
	Tasks          TaskEnqueuer
	DebounceWindow time.Duration
	Now            func() time.Time
	Metrics        *metrics.Registry
}

func NewDefaultProviderService(
	repo providerRepo.ProviderRepository,
	cache PricingCache,
	views *ViewStore,
	taskClient TaskEnqueuer,
	debounce time.Duration,
) (*DefaultProviderService, error) {
	if repo == nil || views == nil {
		return nil, fmt.Errorf("provider service initialization error: one or more dependencies are nil")
	}
	return &DefaultProviderService{
		Repo:           repo,
		Cache:          cache,
		Views:          views,
		Tasks:          taskClient,
		DebounceWindow: debounce,
		Now:            time.Now,
	}, nil
}

func (s *DefaultProviderService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// loadRecord reads and normalises a stored record. A provider that no longer exists
// also loses its cached pricing.
func (s *DefaultProviderService) loadRecord(ctx context.Context, id string) (models.ProviderRecord, error) {
	raw, err := s.Repo.GetRawByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.evict(ctx, id)
		}
		return models.ProviderRecord{}, err
	}
	record := NormalizeRecord(raw)
	if record.ID == "" {
		record.ID = id
	}
	return record, nil
}

func (s *DefaultProviderService) evict(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.DeletePricing(ctx, id); err != nil {
		utils.GetLogger().Warn("Provider pricing cache evict failed", zap.String("providerID", id), zap.Error(err))
	}
}

// GetProviderPricing returns the resolved pricing and catalog of a stored provider,
// from cache when possible. Cache failures only cost a recompute.
func (s *DefaultProviderService) GetProviderPricing(ctx context.Context, id string) (models.PricingView, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		view, err := s.Cache.GetPricing(ctx, id)
		switch {
		case err == nil:
			s.Metrics.ObserveCacheLookup("hit")
			return *view, nil
		case errors.Is(err, ErrCacheMiss):
			s.Metrics.ObserveCacheLookup("miss")
		default:
			s.Metrics.ObserveCacheLookup("error")
			logger.Warn("Provider pricing cache read failed", zap.String("providerID", id), zap.Error(err))
		}
	}
	view, err := s.RefreshProviderView(ctx, id)
	if err != nil {
		return models.PricingView{}, err
	}
	return view.Pricing(), nil
}

// GetProviderStatus reads the record on every call so availability matches what an
// opened view shows.
func (s *DefaultProviderService) GetProviderStatus(ctx context.Context, id string) (models.StatusView, error) {
	record, err := s.loadRecord(ctx, id)
	if err != nil {
		return models.StatusView{}, fmt.Errorf("failed to load provider %s: %w", id, err)
	}
	return models.StatusView{
		ProviderID:  record.ID,
		Status:      availability.ResolveStatus(record),
		BookedUntil: record.BookedUntil,
	}, nil
}

// RefreshProviderView recomputes a stored provider's view and overwrites its cached
// pricing under id.
func (s *DefaultProviderService) RefreshProviderView(ctx context.Context, id string) (models.ProviderView, error) {
	record, err := s.loadRecord(ctx, id)
	if err != nil {
		return models.ProviderView{}, fmt.Errorf("failed to load provider %s: %w", id, err)
	}

	view := ResolveView(record, s.now())
	s.Metrics.ObserveResolution(string(view.PricingSource))
	if s.Cache != nil {
		if err := s.Cache.SetPricing(ctx, id, view.Pricing()); err != nil {
			utils.GetLogger().Warn("Provider pricing cache write failed", zap.String("providerID", id), zap.Error(err))
		}
	}
	return view, nil
}

// EnqueueRefresh schedules a background recompute and returns the task id.
func (s *DefaultProviderService) EnqueueRefresh(ctx context.Context, id string) (string, error) {
	if s.Tasks == nil {
		return "", errors.New("task queue is not configured")
	}
	task, opts, err := tasks.NewPricingRefreshTask(id, s.now())
	if err != nil {
		return "", err
	}
	info, err := s.Tasks.EnqueueContext(ctx, task, opts...)
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			utils.GetLogger().Debug("Pricing refresh already queued", zap.String("providerID", id))
			return "", nil
		}
		return "", fmt.Errorf("failed to enqueue pricing refresh: %w", err)
	}
	return info.ID, nil
}

// WarmAll recomputes every stored provider. Individual failures are logged and skipped.
func (s *DefaultProviderService) WarmAll(ctx context.Context) (int, error) {
	ids, err := s.Repo.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list providers: %w", err)
	}

	warmed := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return warmed, ctx.Err()
		}
		if _, err := s.RefreshProviderView(ctx, id); err != nil {
			utils.GetLogger().Warn("Pricing warm-up skipped provider", zap.String("providerID", id), zap.Error(err))
			continue
		}
		warmed++
	}
	return warmed, nil
}

// ResolveRaw resolves a record handed in directly, e.g. from a shared profile link.
func (s *DefaultProviderService) ResolveRaw(raw map[string]any) models.ProviderView {
	view := ResolveView(NormalizeRecord(raw), s.now())
	s.Metrics.ObserveResolution(string(view.PricingSource))
	return view
}

// OpenView starts a view session for a stored provider.
func (s *DefaultProviderService) OpenView(ctx context.Context, req OpenViewRequest) (string, ViewSnapshot, error) {
	record, err := s.loadRecord(ctx, req.ProviderID)
	if err != nil {
		return "", ViewSnapshot{}, fmt.Errorf("failed to open view: %w", err)
	}

	now := s.now()
	state := NewViewState(record, req.FromSharedProfile, s.DebounceWindow)
	state.SetActiveScheduledBooking(req.HasActiveScheduledBooking)
	session := s.Views.Open(state, now)
	s.Metrics.SetOpenViews(s.Views.Len())

	utils.GetLogger().Debug("View session opened",
		zap.String("viewID", session.ID),
		zap.String("providerID", record.ID),
		zap.Bool("fromSharedProfile", req.FromSharedProfile))

	var snap ViewSnapshot
	session.With(func(v *ViewState) { snap = v.Snapshot(now) })
	return session.ID, snap, nil
}

func (s *DefaultProviderService) Session(viewID string) (*ViewSession, error) {
	return s.Views.Get(viewID, s.now())
}

func (s *DefaultProviderService) GetView(viewID string) (ViewSnapshot, error) {
	now := s.now()
	session, err := s.Views.Get(viewID, now)
	if err != nil {
		return ViewSnapshot{}, err
	}
	var snap ViewSnapshot
	session.With(func(v *ViewState) { snap = v.Snapshot(now) })
	return snap, nil
}

// ReloadView re-reads the provider record and recomputes the session's derived state.
// Debounce history is kept.
func (s *DefaultProviderService) ReloadView(ctx context.Context, viewID string) (ViewSnapshot, error) {
	session, err := s.Views.Get(viewID, s.now())
	if err != nil {
		return ViewSnapshot{}, err
	}
	record, err := s.loadRecord(ctx, session.ProviderID)
	if err != nil {
		return ViewSnapshot{}, fmt.Errorf("failed to reload view: %w", err)
	}

	now := s.now()
	var snap ViewSnapshot
	session.With(func(v *ViewState) {
		v.Refresh(record)
		snap = v.Snapshot(now)
	})
	return snap, nil
}

func (s *DefaultProviderService) SetActiveScheduledBooking(viewID string, active bool) (ViewSnapshot, error) {
	now := s.now()
	session, err := s.Views.Get(viewID, now)
	if err != nil {
		return ViewSnapshot{}, err
	}
	var snap ViewSnapshot
	session.With(func(v *ViewState) {
		v.SetActiveScheduledBooking(active)
		snap = v.Snapshot(now)
	})
	return snap, nil
}

// AttemptAction runs the guard for one action. A rejected action is not an error; the
// decision carries the reason. Allowed book actions also carry the booking intent. A
// book on a tier without a price fails before the guard so it never starts a
// debounce window.
func (s *DefaultProviderService) AttemptAction(viewID string, kind booking.ActionKind, durationMinutes int) (ActionResult, error) {
	if kind == booking.ActionBook {
		if _, err := (models.PriceMap{}).For(durationMinutes); err != nil {
			return ActionResult{}, err
		}
	}

	now := s.now()
	session, err := s.Views.Get(viewID, now)
	if err != nil {
		return ActionResult{}, err
	}

	var (
		result    ActionResult
		intentErr error
	)
	session.With(func(v *ViewState) {
		var intent models.BookingIntent
		if kind == booking.ActionBook {
			if intent, intentErr = v.Intent(durationMinutes); intentErr != nil {
				return
			}
		}
		result.Decision = v.Attempt(kind, now)
		if result.Decision.Allowed && kind == booking.ActionBook {
			result.Intent = &intent
		}
	})
	if intentErr != nil {
		return ActionResult{}, intentErr
	}
	s.Metrics.ObserveGuardDecision(string(kind), string(result.Decision.Reason))
	return result, nil
}

func (s *DefaultProviderService) CloseView(viewID string) error {
	if err := s.Views.Close(viewID); err != nil {
		return err
	}
	s.Metrics.SetOpenViews(s.Views.Len())
	return nil
}
