package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prestigedrive/prestigedrive/internal/notify"
	"github.com/prestigedrive/prestigedrive/internal/renter"
)

// createRenterRequest 合作商家录入的请求体。
type createRenterRequest struct {
	Name         string   `json:"name" validate:"required"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	Description  string   `json:"description"`
	Image        string   `json:"image" validate:"omitempty,url"`
	Rating       float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount  int      `json:"review_count" validate:"gte=0"`
	Verification string   `json:"verification"`
	MemberSince  string   `json:"member_since" validate:"omitempty,datetime=2006-01-02"`
	Specialties  []string `json:"specialties"`
	FeaturedCars []string `json:"featured_cars"`
}

// patchRenterRequest 部分更新：指针字段缺省表示“保持现值”。
type patchRenterRequest struct {
	Name         *string   `json:"name"`
	Email        *string   `json:"email" validate:"omitempty,email"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image" validate:"omitempty,url"`
	Rating       *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount  *int      `json:"review_count" validate:"omitempty,gte=0"`
	Verification *string   `json:"verification"`
	MemberSince  *string   `json:"member_since" validate:"omitempty,datetime=2006-01-02"`
	Specialties  *[]string `json:"specialties"`
	FeaturedCars *[]string `json:"featured_cars"`
}

func (r patchRenterRequest) toPatch() renter.Patch {
	return renter.Patch{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Address:      r.Address,
		Description:  r.Description,
		Image:        r.Image,
		Rating:       r.Rating,
		ReviewCount:  r.ReviewCount,
		Verification: r.Verification,
		MemberSince:  r.MemberSince,
		Specialties:  r.Specialties,
		FeaturedCars: r.FeaturedCars,
	}
}

func (a *API) handleListRenters(w http.ResponseWriter, r *http.Request) {
	offset, limit := pageParams(r)
	renters, total, err := a.renters.ListRenters(r.Context(), offset, limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: renters, Total: total})
}

func (a *API) handleGetRenter(w http.ResponseWriter, r *http.Request) {
	cr, err := a.renters.GetRenter(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cr)
}

func (a *API) handleCreateRenter(w http.ResponseWriter, r *http.Request) {
	var req createRenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeDomainError(w, err)
		return
	}

	cr, err := a.renters.CreateRenter(r.Context(), renter.CreateRenterInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Description:  req.Description,
		Image:        req.Image,
		Rating:       req.Rating,
		ReviewCount:  req.ReviewCount,
		Verification: req.Verification,
		MemberSince:  req.MemberSince,
		Specialties:  req.Specialties,
		FeaturedCars: req.FeaturedCars,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	a.events.CollectionChanged(notify.CollectionRenters, notify.ActionCreated, cr.ID, cr)
	writeJSON(w, http.StatusCreated, cr)
}

func (a *API) handleUpdateRenter(w http.ResponseWriter, r *http.Request) {
	var req patchRenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeDomainError(w, err)
		return
	}

	cr, err := a.renters.UpdateRenter(r.Context(), mux.Vars(r)["id"], req.toPatch())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	a.events.CollectionChanged(notify.CollectionRenters, notify.ActionUpdated, cr.ID, cr)
	writeJSON(w, http.StatusOK, cr)
}

func (a *API) handleDeleteRenter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := a.renters.GetRenter(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := a.renters.DeleteRenter(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	a.events.CollectionChanged(notify.CollectionRenters, notify.ActionDeleted, id, nil)
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
