package reconcile

import (
	"event-org-console/internal/model"
	"event-org-console/pkg/logger"

	"go.uber.org/zap"
)

type Reconciler struct {
	log *zap.Logger
}

func NewReconciler() *Reconciler {
	return &Reconciler{log: logger.WithComponent("reconcile")}
}

/*
Reconcile 計算工作副本相對於基準的差異

 1. 工作集中 IsNew 或沒有後端 id 的賓客歸為新增
 2. 其餘依 id 對照基準，可比較欄位不同者歸為更新；基準內找不到的視為新增並記錄
 3. 基準內有、工作集內沒有的 id 歸為刪除
 4. 新增與更新只保留 name / email 皆非空的賓客，其餘列入 Skipped
 5. 送出的賓客不帶暫時旗標，新增者不帶暫時 id

新增與更新維持工作集順序，刪除維持基準順序。
*/
func (r *Reconciler) Reconcile(baseline, working []model.Guest) model.Reconciliation {
	byID := make(map[string]model.Guest, len(baseline))
	for _, g := range baseline {
		if g.ID != "" {
			byID[g.ID] = g
		}
	}

	result := model.Reconciliation{
		Delta: model.GuestDelta{
			NewGuests:       []model.Guest{},
			UpdatedGuests:   []model.Guest{},
			RemovedGuestIDs: []string{},
		},
		Skipped: []model.SkippedGuest{},
	}

	present := make(map[string]struct{}, len(working))
	for _, g := range working {
		if g.ID != "" {
			present[g.ID] = struct{}{}
		}

		var isNew bool
		switch {
		case g.IsNew || !g.HasServerID():
			isNew = true
		default:
			base, ok := byID[g.ID]
			if !ok {
				r.log.Warn("guest id not in baseline, treating as new", zap.String("guest_id", g.ID))
				isNew = true
			} else if base.SameFields(g) {
				continue
			}
		}

		if missing := g.MissingField(); missing != "" {
			result.Skipped = append(result.Skipped, model.SkippedGuest{
				Guest:  g,
				Reason: "missing " + string(missing),
			})
			continue
		}

		out := g.Clean()
		if isNew {
			if model.IsTemporaryID(out.ID) {
				out.ID = ""
			}
			result.Delta.NewGuests = append(result.Delta.NewGuests, out)
		} else {
			result.Delta.UpdatedGuests = append(result.Delta.UpdatedGuests, out)
		}
	}

	for _, g := range baseline {
		if g.ID == "" {
			continue
		}
		if _, ok := present[g.ID]; !ok {
			result.Delta.RemovedGuestIDs = append(result.Delta.RemovedGuestIDs, g.ID)
		}
	}

	if len(result.Skipped) > 0 {
		r.log.Info("skipped ineligible guests", zap.Int("count", len(result.Skipped)))
	}
	return result
}
