package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prestigedrive/prestigedrive/internal/notify"
)

// toggleDateRequest 管理端翻转可租日期的请求体。
type toggleDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// handleListAvailableDates 返回快照中该车辆的可租日期（升序）。
// 无数据返回空数组，不区分“未加载”和“确无”。
func (a *API) handleListAvailableDates(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"car_id": carID,
		"dates":  a.avail.DatesForCar(carID),
	})
}

// handleToggleAvailableDate 有则删、无则增，返回翻转后的状态。
func (a *API) handleToggleAvailableDate(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]

	var req toggleDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeDomainError(w, err)
		return
	}
	// 车辆必须存在才允许维护日期
	if _, err := a.cars.GetCar(r.Context(), carID); err != nil {
		writeDomainError(w, err)
		return
	}

	available, err := a.avail.Toggle(r.Context(), carID, req.Date)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	action := notify.ActionDeleted
	if available {
		action = notify.ActionCreated
	}
	a.events.CollectionChanged(notify.CollectionAvailableDates, action, carID, map[string]interface{}{
		"car_id":    carID,
		"date":      req.Date,
		"available": available,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"car_id":    carID,
		"date":      req.Date,
		"available": available,
	})
}
