package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
)

// ===========================
// PropertyHandler
// ===========================

// PropertyHandler 房源 HTTP 接口
//
// 薄轉接層：解析請求 → 調用 Use Case → 寫出結果。
// 業務規則全部在 Domain / Application Layer。
type PropertyHandler struct {
	create    *applisting.CreatePropertyUseCase
	update    *applisting.UpdatePropertyUseCase
	get       *applisting.GetPropertyUseCase
	list      *applisting.ListPropertiesUseCase
	publish   *applisting.PublishPropertyUseCase
	pause     *applisting.PausePropertyUseCase
	markSold  *applisting.MarkPropertySoldUseCase
	softDel   *applisting.SoftDeletePropertyUseCase
	restore   *applisting.RestorePropertyUseCase
	duplicate *applisting.DuplicatePropertyUseCase
	readiness *applisting.ComputeReadinessUseCase
}

// NewPropertyHandler 創建 handler 實例
func NewPropertyHandler(
	create *applisting.CreatePropertyUseCase,
	update *applisting.UpdatePropertyUseCase,
	get *applisting.GetPropertyUseCase,
	list *applisting.ListPropertiesUseCase,
	publish *applisting.PublishPropertyUseCase,
	pause *applisting.PausePropertyUseCase,
	markSold *applisting.MarkPropertySoldUseCase,
	softDel *applisting.SoftDeletePropertyUseCase,
	restore *applisting.RestorePropertyUseCase,
	duplicate *applisting.DuplicatePropertyUseCase,
	readiness *applisting.ComputeReadinessUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		create:    create,
		update:    update,
		get:       get,
		list:      list,
		publish:   publish,
		pause:     pause,
		markSold:  markSold,
		softDel:   softDel,
		restore:   restore,
		duplicate: duplicate,
		readiness: readiness,
	}
}

// createPropertyRequest POST /properties 請求體
type createPropertyRequest struct {
	Title          string                     `json:"title"`
	OperationType  string                     `json:"operation_type"`
	PropertyType   string                     `json:"property_type"`
	PriceAmount    string                     `json:"price_amount"`
	PriceCurrency  string                     `json:"price_currency"`
	Description    string                     `json:"description"`
	Features       *applisting.FeaturesInput  `json:"features"`
	Address        *addressRequest            `json:"address"`
	Geo            *geoRequest                `json:"geo"`
	Amenities      []string                   `json:"amenities"`
	AmenitiesExtra string                     `json:"amenities_extra"`
	Tags           []string                   `json:"tags"`
}

type addressRequest struct {
	Street         string `json:"street"`
	ExtNumber      string `json:"ext_number"`
	IntNumber      string `json:"int_number"`
	Neighborhood   string `json:"neighborhood"`
	PostalCode     string `json:"postal_code"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	DisplayAddress bool   `json:"display_address"`
}

type geoRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (a *addressRequest) toInput() *applisting.AddressInput {
	if a == nil {
		return nil
	}
	return &applisting.AddressInput{
		Street:         a.Street,
		ExtNumber:      a.ExtNumber,
		IntNumber:      a.IntNumber,
		Neighborhood:   a.Neighborhood,
		PostalCode:     a.PostalCode,
		City:           a.City,
		State:          a.State,
		Country:        a.Country,
		DisplayAddress: a.DisplayAddress,
	}
}

func (g *geoRequest) toInput() *applisting.GeoInput {
	if g == nil {
		return nil
	}
	return &applisting.GeoInput{Lat: g.Lat, Lng: g.Lng}
}

// Create POST /properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.create.Execute(r.Context(), applisting.CreatePropertyCommand{
		Title:          req.Title,
		OperationType:  req.OperationType,
		PropertyType:   req.PropertyType,
		PriceAmount:    req.PriceAmount,
		PriceCurrency:  req.PriceCurrency,
		Description:    req.Description,
		Features:       req.Features,
		Address:        req.Address.toInput(),
		Geo:            req.Geo.toInput(),
		Amenities:      req.Amenities,
		AmenitiesExtra: req.AmenitiesExtra,
		Tags:           req.Tags,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// updatePropertyRequest PATCH /properties/{id} 請求體（部分更新）
type updatePropertyRequest struct {
	Title          *string                   `json:"title"`
	Description    *string                   `json:"description"`
	PropertyType   *string                   `json:"property_type"`
	PriceAmount    *string                   `json:"price_amount"`
	PriceCurrency  *string                   `json:"price_currency"`
	Features       *applisting.FeaturesInput `json:"features"`
	Address        *addressRequest           `json:"address"`
	Geo            *geoRequest               `json:"geo"`
	ClearGeo       bool                      `json:"clear_geo"`
	Amenities      *[]string                 `json:"amenities"`
	AmenitiesExtra *string                   `json:"amenities_extra"`
	Tags           *[]string                 `json:"tags"`
	InternalID     *string                   `json:"internal_id"`
}

// Update PATCH /properties/{id}
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePropertyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.update.Execute(r.Context(), applisting.UpdatePropertyCommand{
		PropertyID:     mux.Vars(r)["id"],
		Title:          req.Title,
		Description:    req.Description,
		PropertyType:   req.PropertyType,
		PriceAmount:    req.PriceAmount,
		PriceCurrency:  req.PriceCurrency,
		Features:       req.Features,
		Address:        req.Address.toInput(),
		Geo:            req.Geo.toInput(),
		ClearGeo:       req.ClearGeo,
		Amenities:      req.Amenities,
		AmenitiesExtra: req.AmenitiesExtra,
		Tags:           req.Tags,
		InternalID:     req.InternalID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get GET /properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.get.Execute(r.Context(), applisting.GetPropertyQuery{
		PropertyID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// List GET /properties
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	result, err := h.list.Execute(r.Context(), applisting.ListPropertiesQuery{
		Query:        q.Get("q"),
		Status:       q.Get("status"),
		PropertyType: q.Get("property_type"),
		City:         q.Get("city"),
		State:        q.Get("state"),
		PriceMin:     q.Get("price_min"),
		PriceMax:     q.Get("price_max"),
		Sort:         q.Get("sort"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// publishRequest POST /properties/{id}/publish 請求體
type publishRequest struct {
	// ScheduleAt 提供時只預約發佈時間（RFC 3339）
	ScheduleAt *time.Time `json:"schedule_at"`
}

// Publish POST /properties/{id}/publish
func (h *PropertyHandler) Publish(w http.ResponseWriter, r *http.Request) {
	cmd := applisting.PublishPropertyCommand{PropertyID: mux.Vars(r)["id"]}

	if r.ContentLength > 0 {
		var req publishRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.ScheduleAt != nil {
			cmd.ScheduleAt = *req.ScheduleAt
		}
	}

	result, err := h.publish.Execute(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Pause POST /properties/{id}/pause
func (h *PropertyHandler) Pause(w http.ResponseWriter, r *http.Request) {
	result, err := h.pause.Execute(r.Context(), applisting.PausePropertyCommand{
		PropertyID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// markSoldRequest POST /properties/{id}/sold 請求體
type markSoldRequest struct {
	SoldAt *time.Time `json:"sold_at"`
}

// MarkSold POST /properties/{id}/sold
func (h *PropertyHandler) MarkSold(w http.ResponseWriter, r *http.Request) {
	cmd := applisting.MarkPropertySoldCommand{PropertyID: mux.Vars(r)["id"]}

	if r.ContentLength > 0 {
		var req markSoldRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.SoldAt != nil {
			cmd.SoldAt = *req.SoldAt
		}
	}

	result, err := h.markSold.Execute(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Delete DELETE /properties/{id}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.softDel.Execute(r.Context(), applisting.SoftDeletePropertyCommand{
		PropertyID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Restore POST /properties/{id}/restore
func (h *PropertyHandler) Restore(w http.ResponseWriter, r *http.Request) {
	err := h.restore.Execute(r.Context(), applisting.RestorePropertyCommand{
		PropertyID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// duplicateRequest POST /properties/{id}/duplicate 請求體
type duplicateRequest struct {
	CopyMedia     bool `json:"copy_media"`
	CopyDocuments bool `json:"copy_documents"`
}

// Duplicate POST /properties/{id}/duplicate
func (h *PropertyHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	cmd := applisting.DuplicatePropertyCommand{PropertyID: mux.Vars(r)["id"]}

	if r.ContentLength > 0 {
		var req duplicateRequest
		if !decodeBody(w, r, &req) {
			return
		}
		cmd.CopyMedia = req.CopyMedia
		cmd.CopyDocuments = req.CopyDocuments
	}

	result, err := h.duplicate.Execute(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Readiness GET /properties/{id}/readiness
func (h *PropertyHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	result, err := h.readiness.Execute(r.Context(), applisting.ComputeReadinessQuery{
		PropertyID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
