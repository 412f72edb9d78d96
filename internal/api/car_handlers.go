package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prestigedrive/prestigedrive/internal/fleet"
	"github.com/prestigedrive/prestigedrive/internal/notify"
)

// carRequest 车辆录入/编辑的请求体（边界处强类型校验）。
type carRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category"`
	Price       int64    `json:"price" validate:"gte=0"`
	PerDay      bool     `json:"per_day"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Images      []string `json:"images" validate:"dive,url"`
	Specs       []string `json:"specs"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Locations   []string `json:"locations"`
}

func (r carRequest) toInput() fleet.CreateCarInput {
	return fleet.CreateCarInput{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		PerDay:      r.PerDay,
		Image:       r.Image,
		Images:      r.Images,
		Specs:       r.Specs,
		Description: r.Description,
		Features:    r.Features,
		Locations:   r.Locations,
	}
}

func (a *API) handleListCars(w http.ResponseWriter, r *http.Request) {
	offset, limit := pageParams(r)
	cars, total, err := a.cars.ListCars(r.Context(), fleet.ListCarsFilter{
		Category: r.URL.Query().Get("category"),
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: cars, Total: total})
}

func (a *API) handleGetCar(w http.ResponseWriter, r *http.Request) {
	c, err := a.cars.GetCar(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (a *API) handleCreateCar(w http.ResponseWriter, r *http.Request) {
	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeDomainError(w, err)
		return
	}

	c, err := a.cars.CreateCar(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	a.events.CollectionChanged(notify.CollectionCars, notify.ActionCreated, c.ID, c)
	writeJSON(w, http.StatusCreated, c)
}

func (a *API) handleUpdateCar(w http.ResponseWriter, r *http.Request) {
	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeDomainError(w, err)
		return
	}

	c, err := a.cars.UpdateCar(r.Context(), mux.Vars(r)["id"], req.toInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	a.events.CollectionChanged(notify.CollectionCars, notify.ActionUpdated, c.ID, c)
	writeJSON(w, http.StatusOK, c)
}

func (a *API) handleDeleteCar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	// 先确认存在，删不存在的车辆返回 404
	if _, err := a.cars.GetCar(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := a.cars.DeleteCar(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	a.events.CollectionChanged(notify.CollectionCars, notify.ActionDeleted, id, nil)
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// pageParams 解析 page/page_size 查询参数并换算 offset/limit。
func pageParams(r *http.Request) (offset, limit int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 200 {
		size = 20
	}
	return (page - 1) * size, size
}
