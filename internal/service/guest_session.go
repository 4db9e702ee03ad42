package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"event-org-console/internal/importer"
	"event-org-console/internal/model"
	"event-org-console/internal/notify"
	"event-org-console/internal/reconcile"
	"event-org-console/internal/store"
	apperrors "event-org-console/pkg/app_errors"
	"event-org-console/pkg/logger"

	"go.uber.org/zap"
)

// GuestAPI 賓客工作流程需要的遠端操作
type GuestAPI interface {
	GetEvent(ctx context.Context, eventID string) (*model.Event, error)
	SaveGuests(ctx context.Context, eventID string, delta model.GuestDelta) ([]model.Guest, error)
}

type SessionState string

const (
	StateIdle    SessionState = "idle"
	StateEditing SessionState = "editing"
	StateSaving  SessionState = "saving"
)

const DefaultSaveTimeout = 30 * time.Second

// GuestSession 單一使用者、單一活動的賓客管理工作階段
//
//	Idle --Load--> Editing --Add/Update/Remove--> Editing
//	Editing --Save--> Saving --成功--> Idle（新基準）
//	                         --失敗--> Editing（工作副本不變）
//
// 同時最多一個儲存請求；儲存中允許繼續編輯，成功後由後端名單取代。
type GuestSession struct {
	eventID    string
	api        GuestAPI
	notifier   notify.Notifier
	store      *store.GuestStore
	reconciler *reconcile.Reconciler
	parser     *importer.Parser
	timeout    time.Duration
	log        *zap.Logger

	mu         sync.Mutex
	baseline   []model.Guest
	event      *model.Event
	state      SessionState
	loaded     bool
	saving     bool
	closed     bool
	cancelSave context.CancelFunc
}

func NewGuestSession(eventID string, api GuestAPI, notifier notify.Notifier, timeout time.Duration) *GuestSession {
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &GuestSession{
		eventID:    eventID,
		api:        api,
		notifier:   notifier,
		store:      store.NewGuestStore(),
		reconciler: reconcile.NewReconciler(),
		parser:     importer.NewParser(),
		timeout:    timeout,
		log:        logger.WithComponent("session").With(zap.String("event_id", eventID)),
		state:      StateIdle,
	}
}

func (s *GuestSession) EventID() string {
	return s.eventID
}

func (s *GuestSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Event 最近一次載入的活動文件
func (s *GuestSession) Event() *model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.event
}

// Load 取得活動並以其賓客名單作為基準
func (s *GuestSession) Load(ctx context.Context) (*model.Event, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	event, err := s.api.GetEvent(ctx, s.eventID)
	if err != nil {
		s.log.Error("load event failed", zap.Error(err))
		s.notifier.Notify(ctx, s.eventID, model.NotificationError, "Failed to load guest list")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, apperrors.ErrSessionClosed
	}
	if s.saving {
		return nil, apperrors.ErrSaveInFlight
	}
	s.setBaseline(event.GuestList)
	s.event = event
	s.loaded = true
	s.state = StateEditing
	return event, nil
}

func (s *GuestSession) List(filter string) []model.Guest {
	return s.store.List(filter)
}

func (s *GuestSession) Get(id string) (model.Guest, error) {
	return s.store.Get(id)
}

func (s *GuestSession) Add(in model.GuestInput) (model.Guest, error) {
	if err := s.beginEdit(); err != nil {
		return model.Guest{}, err
	}
	return s.store.Add(in)
}

func (s *GuestSession) Update(id string, field model.GuestField, value string) error {
	if err := s.beginEdit(); err != nil {
		return err
	}
	return s.store.Update(id, field, value)
}

func (s *GuestSession) SetEditing(id string, editing bool) error {
	if err := s.beginEdit(); err != nil {
		return err
	}
	return s.store.SetEditing(id, editing)
}

func (s *GuestSession) Remove(id string) error {
	if err := s.beginEdit(); err != nil {
		return err
	}
	return s.store.Remove(id)
}

func (s *GuestSession) BulkAppend(inputs []model.GuestInput) ([]model.Guest, error) {
	if err := s.beginEdit(); err != nil {
		return nil, err
	}
	return s.store.BulkAppend(inputs), nil
}

// Import 解析 CSV 後整批加入；解析失敗時不加入任何一筆
func (s *GuestSession) Import(ctx context.Context, content string) (importer.Result, error) {
	if err := s.beginEdit(); err != nil {
		return importer.Result{}, err
	}

	result, err := s.parser.Parse(content)
	if err != nil {
		s.notifier.Notify(ctx, s.eventID, model.NotificationError, "Import failed: "+result.Message)
		return result, err
	}

	added := s.store.BulkAppend(result.Inputs())
	result.Guests = added
	level := model.NotificationSuccess
	if result.Skipped > 0 {
		level = model.NotificationWarning
	}
	s.notifier.Notify(ctx, s.eventID, level, result.Message)
	return result, nil
}

// Preview 目前的差異，不送出
func (s *GuestSession) Preview() (model.Reconciliation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return model.Reconciliation{}, apperrors.ErrSessionNotOpen
	}
	return s.reconciler.Reconcile(s.baseline, s.store.Snapshot()), nil
}

// Save 送出差異。失敗時工作副本不變；成功時以後端名單作為新基準
func (s *GuestSession) Save(ctx context.Context) (model.Reconciliation, error) {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return model.Reconciliation{}, apperrors.ErrSessionClosed
	case !s.loaded:
		s.mu.Unlock()
		return model.Reconciliation{}, apperrors.ErrSessionNotOpen
	case s.saving:
		s.mu.Unlock()
		s.log.Warn("save rejected, another save is in flight")
		return model.Reconciliation{}, apperrors.ErrSaveInFlight
	}

	recon := s.reconciler.Reconcile(s.baseline, s.store.Snapshot())
	if recon.Delta.IsEmpty() {
		if len(recon.Skipped) == 0 {
			s.state = StateIdle
		}
		s.mu.Unlock()
		s.notifier.Notify(ctx, s.eventID, model.NotificationInfo, "No changes to save")
		s.notifySkipped(ctx, recon.Skipped)
		return recon, nil
	}

	saveCtx, cancel := context.WithTimeout(ctx, s.timeout)
	s.saving = true
	s.state = StateSaving
	s.cancelSave = cancel
	s.mu.Unlock()

	guests, err := s.api.SaveGuests(saveCtx, s.eventID, recon.Delta)
	timedOut := errors.Is(saveCtx.Err(), context.DeadlineExceeded)
	cancel()

	s.mu.Lock()
	s.saving = false
	s.cancelSave = nil

	if s.closed {
		s.mu.Unlock()
		s.log.Info("session closed during save, discarding result")
		return recon, apperrors.ErrSessionClosed
	}

	if err != nil {
		s.state = StateEditing
		s.mu.Unlock()
		err = asSyncError(err, timedOut)
		s.log.Error("save guests failed", zap.Error(err))
		s.notifier.Notify(ctx, s.eventID, model.NotificationError, "Failed to save guest list: "+err.Error())
		return recon, err
	}

	s.setBaseline(guests)
	s.state = StateIdle
	s.mu.Unlock()

	s.log.Info("guest list saved",
		zap.Int("new", len(recon.Delta.NewGuests)),
		zap.Int("updated", len(recon.Delta.UpdatedGuests)),
		zap.Int("removed", len(recon.Delta.RemovedGuestIDs)),
	)
	s.notifier.Notify(ctx, s.eventID, model.NotificationSuccess, fmt.Sprintf(
		"Guest list saved: %d added, %d updated, %d removed",
		len(recon.Delta.NewGuests), len(recon.Delta.UpdatedGuests), len(recon.Delta.RemovedGuestIDs),
	))
	s.notifySkipped(ctx, recon.Skipped)
	return recon, nil
}

// Close 放棄工作副本；進行中的儲存會被取消，結果不會再寫回
func (s *GuestSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.cancelSave != nil {
		s.cancelSave()
	}
}

func (s *GuestSession) checkOpen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return apperrors.ErrSessionClosed
	}
	return nil
}

func (s *GuestSession) beginEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return apperrors.ErrSessionClosed
	}
	if !s.loaded {
		return apperrors.ErrSessionNotOpen
	}
	if s.state != StateSaving {
		s.state = StateEditing
	}
	return nil
}

// setBaseline 呼叫端需持有 mu
func (s *GuestSession) setBaseline(guests []model.Guest) {
	baseline := make([]model.Guest, len(guests))
	for i, g := range guests {
		baseline[i] = g.Clean()
	}
	s.baseline = baseline
	s.store.Seed(baseline)
}

func (s *GuestSession) notifySkipped(ctx context.Context, skipped []model.SkippedGuest) {
	if len(skipped) == 0 {
		return
	}
	s.notifier.Notify(ctx, s.eventID, model.NotificationWarning, fmt.Sprintf(
		"%d guests were not saved because name or email is missing", len(skipped),
	))
}

func asSyncError(err error, timedOut bool) error {
	var syncErr *apperrors.SyncError
	if errors.As(err, &syncErr) {
		if timedOut {
			syncErr.Timeout = true
		}
		return syncErr
	}
	return &apperrors.SyncError{Timeout: timedOut, Err: err}
}
