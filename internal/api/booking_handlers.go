package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prestigedrive/prestigedrive/internal/booking"
	"github.com/prestigedrive/prestigedrive/internal/notify"
)

// createBookingRequest 预订提交的请求体。
// 刻意没有 status 字段：新建一律 pending。
type createBookingRequest struct {
	CarID         string `json:"car_id" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// setStatusRequest 管理端审核流转的请求体。
type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

func (a *API) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeDomainError(w, err)
		return
	}

	// 车辆必须存在；car_name 在此刻冗余快照
	car, err := a.cars.GetCar(r.Context(), req.CarID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	b, err := a.bookings.CreateBooking(r.Context(), booking.CreateBookingInput{
		CarID:         car.ID,
		CarName:       car.Name,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	a.events.CollectionChanged(notify.CollectionBookings, notify.ActionCreated, b.ID, b)
	writeJSON(w, http.StatusCreated, b)
}

func (a *API) handleListBookings(w http.ResponseWriter, r *http.Request) {
	offset, limit := pageParams(r)
	bookings, total, err := a.bookings.ListBookings(r.Context(), booking.ListBookingsFilter{
		CarID:  r.URL.Query().Get("car_id"),
		Status: booking.Status(r.URL.Query().Get("status")),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: bookings, Total: total})
}

func (a *API) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	b, err := a.bookings.GetBooking(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (a *API) handleSetBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeDomainError(w, err)
		return
	}

	b, err := a.bookings.SetStatus(r.Context(), mux.Vars(r)["id"], booking.Status(req.Status))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	a.events.CollectionChanged(notify.CollectionBookings, notify.ActionUpdated, b.ID, b)
	writeJSON(w, http.StatusOK, b)
}

func (a *API) handleDeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := a.bookings.DeleteBooking(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	a.events.CollectionChanged(notify.CollectionBookings, notify.ActionDeleted, id, nil)
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
