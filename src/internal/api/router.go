package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/inmolista/listing_crm/src/internal/infrastructure/auth"
	"github.com/inmolista/listing_crm/src/internal/infrastructure/config"
)

// ===========================
// 路由
// ===========================

// NewRouter 組裝 HTTP 路由
//
// /health 不需認證；其餘端點全部經過 AuthMiddleware，
// 外層再包一層 CORS。
func NewRouter(
	cfg *config.Config,
	tokens *auth.TokenManager,
	properties *PropertyHandler,
	documents *DocumentHandler,
	media *MediaHandler,
) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	authed := router.PathPrefix("/").Subrouter()
	authed.Use(AuthMiddleware(tokens))

	// 房源
	authed.HandleFunc("/properties", properties.Create).Methods("POST")
	authed.HandleFunc("/properties", properties.List).Methods("GET")
	authed.HandleFunc("/properties/{id}", properties.Get).Methods("GET")
	authed.HandleFunc("/properties/{id}", properties.Update).Methods("PATCH")
	authed.HandleFunc("/properties/{id}", properties.Delete).Methods("DELETE")
	authed.HandleFunc("/properties/{id}/publish", properties.Publish).Methods("POST")
	authed.HandleFunc("/properties/{id}/pause", properties.Pause).Methods("POST")
	authed.HandleFunc("/properties/{id}/sold", properties.MarkSold).Methods("POST")
	authed.HandleFunc("/properties/{id}/restore", properties.Restore).Methods("POST")
	authed.HandleFunc("/properties/{id}/duplicate", properties.Duplicate).Methods("POST")
	authed.HandleFunc("/properties/{id}/readiness", properties.Readiness).Methods("GET")

	// 文件
	authed.HandleFunc("/properties/{id}/documents", documents.Attach).Methods("POST")
	authed.HandleFunc("/properties/{id}/documents", documents.List).Methods("GET")
	authed.HandleFunc("/documents/{id}/verify", documents.Verify).Methods("POST")
	authed.HandleFunc("/documents/{id}", documents.Delete).Methods("DELETE")

	// 媒體
	authed.HandleFunc("/properties/{id}/media/uploads", media.RequestUpload).Methods("POST")
	authed.HandleFunc("/properties/{id}/media", media.Attach).Methods("POST")
	authed.HandleFunc("/properties/{id}/media/order", media.Reorder).Methods("PUT")
	authed.HandleFunc("/properties/{id}/media/cover", media.SetCover).Methods("POST")
	authed.HandleFunc("/media/{id}", media.Remove).Methods("DELETE")

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	return corsOptions.Handler(router)
}
